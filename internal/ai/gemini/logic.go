// Package gemini contains the Gemini implementation of the text generator
package gemini

import (
	"context"
	"log/slog"

	"google.golang.org/genai"
)

type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Logic .
type Logic struct {
	logger *slog.Logger

	models models
	model  string
}

// New .
func New(logger *slog.Logger, client *genai.Client, model string) *Logic {
	return newWithModels(logger, client.Models, model)
}

func newWithModels(logger *slog.Logger, m models, model string) *Logic {
	return &Logic{
		logger: logger,
		models: m,
		model:  model,
	}
}

// Generate sends a single prompt without history and returns the text of the first candidate.
func (l *Logic) Generate(ctx context.Context, prompt string) (string, error) {
	l.logger.Info("generating content", slog.String("model", l.model), slog.Int("promptLength", len(prompt)))

	resp, err := l.models.GenerateContent(ctx, l.model, genai.Text(prompt), nil)
	if err != nil {
		l.logger.Error("failed to generate content", slog.String("err", err.Error()))

		return "", err
	}

	return resp.Text(), nil
}
