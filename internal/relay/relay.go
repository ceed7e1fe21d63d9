// Package relay forwards contact form submissions to a Telegram chat
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"

	"portfolio/internal/markdown"
	"portfolio/pkg/telegram"
)

// SuccessMessage is returned to the client once Telegram accepted the message.
const SuccessMessage = "Message sent successfully via Telegram!"

const failurePrefix = "Failed to send message. "

// ConfigMissingMessage is the client facing reason while the bot token or chat ID is unset.
const ConfigMissingMessage = "Missing Telegram bot token or chat ID in environment variables."

// ErrConfigMissing is returned by Config.Validate when the bot token or chat ID is unset.
var ErrConfigMissing = errors.New("telegram bot token or chat id is not configured")

// Config holds the Telegram destination secrets.
type Config struct {
	BotToken string
	ChatID   string
}

// Validate .
func (c Config) Validate() error {
	if c.BotToken == "" || c.ChatID == "" {
		return ErrConfigMissing
	}

	return nil
}

// Outcome is the terminal state of one submission.
type Outcome int

const (
	// Delivered means Telegram accepted the message.
	Delivered Outcome = iota
	// Invalid means the body could not be parsed or a field was missing.
	Invalid
	// ConfigMissing means the bot token or chat ID is not configured.
	ConfigMissing
	// Rejected means the Bot API answered ok=false.
	Rejected
	// NetworkFailed means the call itself failed.
	NetworkFailed
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Invalid:
		return "invalid"
	case ConfigMissing:
		return "config_missing"
	case Rejected:
		return "rejected"
	case NetworkFailed:
		return "network_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result .
type Result struct {
	Outcome Outcome
	// Reason is the underlying error text, empty when Delivered.
	Reason string
}

// OK .
func (r Result) OK() bool {
	return r.Outcome == Delivered
}

// Message is the client facing text of the result.
func (r Result) Message() string {
	if r.OK() {
		return SuccessMessage
	}

	return failurePrefix + r.Reason
}

type sender interface {
	SendMessage(ctx context.Context, params telegram.SendMessageParams) error
}

// Relay .
type Relay struct {
	logger *slog.Logger
	config Config
	sender sender
}

// New .
func New(logger *slog.Logger, config Config, sender sender) *Relay {
	return &Relay{
		logger: logger,
		config: config,
		sender: sender,
	}
}

// Handle parses a raw request body and submits it.
func (r *Relay) Handle(ctx context.Context, body io.Reader) Result {
	logger := r.submissionLogger()

	sub, err := ParseSubmission(body)
	if err != nil {
		logger.Error("invalid submission", slog.String("err", err.Error()))

		return Result{Outcome: Invalid, Reason: err.Error()}
	}

	return r.submit(ctx, logger, sub)
}

// Submit validates the submission and sends it as a single Telegram message.
// At most one outbound call is made, none when validation or the config check fails.
func (r *Relay) Submit(ctx context.Context, sub Submission) Result {
	return r.submit(ctx, r.submissionLogger(), sub)
}

func (r *Relay) submissionLogger() *slog.Logger {
	return r.logger.With(slog.String("submissionID", uuid.NewString()))
}

func (r *Relay) submit(ctx context.Context, logger *slog.Logger, sub Submission) Result {
	if err := sub.Validate(); err != nil {
		logger.Error("invalid submission", slog.String("err", err.Error()))

		return Result{Outcome: Invalid, Reason: err.Error()}
	}

	if err := r.config.Validate(); err != nil {
		logger.Error("relay is not configured", slog.String("err", err.Error()))

		return Result{Outcome: ConfigMissing, Reason: ConfigMissingMessage}
	}

	logger.Info("relaying submission", slog.Int("messageLength", len(sub.Message)))
	err := r.sender.SendMessage(ctx, telegram.SendMessageParams{
		ChatID:    r.config.ChatID,
		Text:      BuildText(sub),
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		outcome := NetworkFailed
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) {
			outcome = Rejected
		}
		logger.Error("failed to relay submission", slog.String("outcome", outcome.String()), slog.String("err", err.Error()))

		return Result{Outcome: outcome, Reason: err.Error()}
	}

	logger.Info("submission delivered")

	return Result{Outcome: Delivered}
}

// BuildText renders the MarkdownV2 message. Labels are markup, every field is escaped.
func BuildText(sub Submission) string {
	return fmt.Sprintf("*New Portfolio Message*\n\n*From:* %s\n*Email:* %s\n\n*Message:*\n%s",
		markdown.Escape(sub.Name),
		markdown.Escape(sub.Email),
		markdown.Escape(sub.Message),
	)
}
