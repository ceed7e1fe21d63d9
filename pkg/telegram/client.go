// Package telegram is a minimal Telegram Bot API client for sending messages
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// SendMessageParams is the JSON body of a sendMessage call.
type SendMessageParams struct {
	ChatID    string           `json:"chat_id"`
	Text      string           `json:"text"`
	ParseMode models.ParseMode `json:"parse_mode,omitempty"`
}

// APIError is returned when the Bot API answers with ok=false.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Telegram API error: %s", e.Description)
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// Client .
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option .
type Option func(*Client)

// WithBaseURL overrides the Bot API host, mostly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient .
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// New .
func New(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// SendMessage posts a single message. A response with ok=false is reported as *APIError,
// everything else (connection, timeout, undecodable body) as a wrapped error.
func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL contains the token, keep it out of the error text
		return fmt.Errorf("failed to send request: %w", redact(err, c.token))
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var r apiResponse
	if err = json.Unmarshal(b, &r); err != nil {
		return fmt.Errorf("failed to decode response body (status %d): %w", resp.StatusCode, err)
	}

	if !r.OK {
		return &APIError{Code: r.ErrorCode, Description: r.Description}
	}

	return nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}

	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "<token>"), err: err}
}
