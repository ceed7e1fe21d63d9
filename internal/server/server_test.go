package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
	"portfolio/internal/idea"
	"portfolio/internal/relay"
	"portfolio/pkg/telegram"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ideaFunc func(ctx context.Context) (string, error)

func (f ideaFunc) ProjectIdea(ctx context.Context) (string, error) { return f(ctx) }

type searchFunc func(ctx context.Context, q string, limit int) ([]content.Post, error)

func (f searchFunc) Search(ctx context.Context, q string, limit int) ([]content.Post, error) {
	return f(ctx, q, limit)
}

// newContactServer wires the real relay against a fake Telegram API.
func newContactServer(t *testing.T, cfg relay.Config, tgStatus int, tgBody string) (*Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	tg := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(tgStatus)
		_, _ = w.Write([]byte(tgBody))
	}))
	t.Cleanup(tg.Close)

	r := relay.New(discard(), cfg, telegram.New(cfg.BotToken, telegram.WithBaseURL(tg.URL)))

	return New(discard(), ":0", r, idea.New(discard(), nil, nil)), &calls
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)

	return rec, out
}

const validBody = `{"name":"Ann_Lee","email":"a@b.com","message":"Hi. Call me!"}`

var validConfig = relay.Config{BotToken: "123:abc", ChatID: "-100"}

func TestPostContact(t *testing.T) {
	tests := []struct {
		name       string
		cfg        relay.Config
		tgStatus   int
		tgBody     string
		body       string
		wantStatus int
		wantMsg    string
		wantCalls  int32
	}{
		{
			name: "delivered", cfg: validConfig, tgStatus: http.StatusOK, tgBody: `{"ok":true}`, body: validBody,
			wantStatus: http.StatusOK, wantMsg: "Message sent successfully via Telegram!", wantCalls: 1,
		},
		{
			name: "rejected", cfg: validConfig, tgStatus: http.StatusBadRequest, tgBody: `{"ok":false,"description":"chat not found"}`, body: validBody,
			wantStatus: http.StatusInternalServerError, wantMsg: "Failed to send message. Telegram API error: chat not found", wantCalls: 1,
		},
		{
			name: "config missing", cfg: relay.Config{}, tgStatus: http.StatusOK, tgBody: `{"ok":true}`, body: validBody,
			wantStatus: http.StatusInternalServerError, wantMsg: "Failed to send message. Missing Telegram bot token or chat ID in environment variables.",
		},
		{
			name: "invalid body", cfg: validConfig, tgStatus: http.StatusOK, tgBody: `{"ok":true}`, body: `{"name":"Ann"}`,
			wantStatus: http.StatusBadRequest, wantMsg: "Failed to send message. missing required fields: email, message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, calls := newContactServer(t, tt.cfg, tt.tgStatus, tt.tgBody)

			rec, out := do(t, s.Handler(), http.MethodPost, "/api/contact", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, out["message"])
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestPostContactBodyTooLarge(t *testing.T) {
	s, calls := newContactServer(t, validConfig, http.StatusOK, `{"ok":true}`)

	big := fmt.Sprintf(`{"name":"a","email":"b","message":"%s"}`, strings.Repeat("x", maxContactBody))
	rec, _ := do(t, s.Handler(), http.MethodPost, "/api/contact", big)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 0, calls.Load())
}

func TestPostProjectIdea(t *testing.T) {
	tests := []struct {
		name       string
		gen        ideaFunc
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{
			name:       "ok",
			gen:        func(context.Context) (string, error) { return "<strong>Idea</strong>", nil },
			wantStatus: http.StatusOK, wantKey: "idea", wantValue: "<strong>Idea</strong>",
		},
		{
			name:       "not configured",
			gen:        func(context.Context) (string, error) { return "", idea.ErrNotConfigured },
			wantStatus: http.StatusServiceUnavailable, wantKey: "message", wantValue: idea.NotConfiguredMessage,
		},
		{
			name:       "empty",
			gen:        func(context.Context) (string, error) { return "", idea.ErrEmptyResponse },
			wantStatus: http.StatusBadGateway, wantKey: "message", wantValue: idea.EmptyResponseMessage,
		},
		{
			name:       "backend",
			gen:        func(context.Context) (string, error) { return "", fmt.Errorf("%w: %w", idea.ErrBackend, errors.New("api key leaked here")) },
			wantStatus: http.StatusBadGateway, wantKey: "message", wantValue: idea.BackendMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(discard(), ":0", nil, tt.gen)

			rec, out := do(t, s.Handler(), http.MethodPost, "/api/project-idea", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantValue, out[tt.wantKey])
		})
	}
}

func TestGetPosts(t *testing.T) {
	s := New(discard(), ":0", nil, nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts?limit=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []content.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, "my-journey-into-web-development", posts[0].Slug)
	for _, p := range posts {
		assert.Empty(t, p.Content)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPost(t *testing.T) {
	s := New(discard(), ":0", nil, nil)

	rec, out := do(t, s.Handler(), http.MethodGet, "/api/posts/core-java-concepts", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Core Java Concepts I Use Daily", out["title"])
	assert.NotEmpty(t, out["content"])

	rec, out = do(t, s.Handler(), http.MethodGet, "/api/posts/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", out["message"])
}

func TestGetSearch(t *testing.T) {
	s := New(discard(), ":0", nil, nil)

	rec, _ := do(t, s.Handler(), http.MethodGet, "/api/search?q=java", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var gotQuery string
	var gotLimit int
	s.EnableSearch(searchFunc(func(_ context.Context, q string, limit int) ([]content.Post, error) {
		gotQuery, gotLimit = q, limit
		p, _ := content.BySlug("core-java-concepts")
		return []content.Post{p.Summary()}, nil
	}))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=java", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "java", gotQuery)
	assert.Equal(t, defaultSearchLimit, gotLimit)

	rec, _ = do(t, s.Handler(), http.MethodGet, "/api/search?q=+", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileAndHealth(t *testing.T) {
	s := New(discard(), ":0", nil, nil)

	rec, out := do(t, s.Handler(), http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shubham Gupta", out["name"])

	rec, out = do(t, s.Handler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
}
