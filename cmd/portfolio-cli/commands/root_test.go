package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRoot()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--server", srv.URL}, args...))

	err := root.Execute()

	return out.String(), err
}

func TestContact(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"Message sent successfully via Telegram!"}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "contact", "-n", "Ann", "-e", "a@b.com", "-m", "hi")
	require.NoError(t, err)

	assert.Equal(t, "Message sent successfully via Telegram!\n", out)
	assert.Equal(t, map[string]string{"name": "Ann", "email": "a@b.com", "message": "hi"}, got)
}

func TestContactServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Failed to send message. chat not found"}`))
	}))
	defer srv.Close()

	_, err := run(t, srv, "contact", "-n", "Ann", "-e", "a@b.com", "-m", "hi")
	assert.ErrorContains(t, err, "chat not found")
}

func TestIdeaPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"idea":"<strong>Board</strong><br/>Tom &amp; Jerry"}`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "idea")
	require.NoError(t, err)
	assert.Equal(t, "Board\nTom & Jerry\n", out)
}

func TestPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"slug":"a","title":"A","date":"2024-02-01"},{"slug":"b","title":"B","date":"2024-01-01"}]`))
	}))
	defer srv.Close()

	out, err := run(t, srv, "posts", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-02-01  a")
	assert.Contains(t, out, "B\n")
}
