package portfolioclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContact(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"Message sent successfully via Telegram!"}`))
	}))
	defer srv.Close()

	msg, err := New(srv.URL+"/", nil).SendContact(context.Background(), "Ann", "a@b.com", "hi")
	require.NoError(t, err)

	assert.Equal(t, "Message sent successfully via Telegram!", msg)
	assert.Equal(t, map[string]string{"name": "Ann", "email": "a@b.com", "message": "hi"}, got)
}

func TestSendContactFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Failed to send message. Telegram API error: chat not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).SendContact(context.Background(), "Ann", "a@b.com", "hi")

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to send message. Telegram API error: chat not found", apiErr.Message)
}

func TestPostsAndPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"slug":"a","title":"A"},{"slug":"b","title":"B"}]`))
		case "/api/posts/a":
			_, _ = w.Write([]byte(`{"slug":"a","title":"A","content":"<p>x</p>"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`not here`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)

	posts, err := c.Posts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "B", posts[1].Title)

	p, err := c.Post(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", p.Content)

	_, err = c.Post(context.Background(), "zzz")
	assert.EqualError(t, err, "server returned 404: not here")
}

func TestProjectIdea(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/project-idea", r.URL.Path)
		_, _ = w.Write([]byte(`{"idea":"<strong>X</strong>"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, nil).ProjectIdea(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<strong>X</strong>", res)
}
