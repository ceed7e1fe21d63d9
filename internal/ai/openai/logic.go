// Package openai contains the OpenAI implementation of the text generator
package openai

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Logic .
type Logic struct {
	logger *slog.Logger

	client openai.Client
	model  string
}

// New .
func New(logger *slog.Logger, apiKey string, model string, opts ...option.RequestOption) *Logic {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &Logic{
		logger: logger,
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Generate sends a single user message and returns the first choice.
func (l *Logic) Generate(ctx context.Context, prompt string) (string, error) {
	l.logger.Info("generating completion", slog.String("model", l.model), slog.Int("promptLength", len(prompt)))

	resp, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(l.model),
	})
	if err != nil {
		l.logger.Error("failed to generate completion", slog.String("err", err.Error()))

		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
