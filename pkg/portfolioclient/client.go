// Package portfolioclient is a Go client of the portfolio HTTP API
package portfolioclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"portfolio/internal/content"
)

// Error is a non-2xx answer of the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Logic .
type Logic struct {
	baseURL    string
	httpClient *http.Client
}

// New .
func New(baseURL string, httpClient *http.Client) *Logic {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Logic{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SendContact submits the contact form and returns the server's acknowledgment.
func (l *Logic) SendContact(ctx context.Context, name, email, message string) (string, error) {
	var res struct {
		Message string `json:"message"`
	}
	err := l.do(ctx, http.MethodPost, "/api/contact", map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	}, &res)

	return res.Message, err
}

// ProjectIdea returns a generated project idea as HTML.
func (l *Logic) ProjectIdea(ctx context.Context) (string, error) {
	var res struct {
		Idea string `json:"idea"`
	}
	err := l.do(ctx, http.MethodPost, "/api/project-idea", nil, &res)

	return res.Idea, err
}

// Posts lists post summaries, newest first. limit <= 0 lists all.
func (l *Logic) Posts(ctx context.Context, limit int) ([]content.Post, error) {
	path := "/api/posts"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var res []content.Post
	err := l.do(ctx, http.MethodGet, path, nil, &res)

	return res, err
}

// Post fetches a single post with its body.
func (l *Logic) Post(ctx context.Context, slug string) (content.Post, error) {
	var res content.Post
	err := l.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug), nil, &res)

	return res, err
}

func (l *Logic) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, l.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(b, &msg) != nil || msg.Message == "" {
			msg.Message = string(bytes.TrimSpace(b))
		}

		return &Error{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if err = json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
