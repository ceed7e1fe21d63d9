// Package idea generates project suggestions for the portfolio's projects section.
package idea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"portfolio/internal/markdown"
)

// Client facing texts of the failure modes.
const (
	NotConfiguredMessage = "Error: AI features are not configured. Please contact the site administrator."
	EmptyResponseMessage = "Sorry, I couldn't generate a response. Please try again."
	BackendMessage       = "An error occurred while contacting the AI. Please try again later."
)

var (
	// ErrNotConfigured is returned when no AI backend is set up.
	ErrNotConfigured = errors.New("ai backend is not configured")
	// ErrEmptyResponse is returned when the backend answered without text.
	ErrEmptyResponse = errors.New("ai backend returned an empty response")
	// ErrBackend wraps every backend failure.
	ErrBackend = errors.New("ai backend request failed")
)

// Message maps an error of ProjectIdea to the text shown to the visitor.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return NotConfiguredMessage
	case errors.Is(err, ErrEmptyResponse):
		return EmptyResponseMessage
	default:
		return BackendMessage
	}
}

const promptTemplate = "Generate a unique and interesting project idea for a student portfolio. The student's skills are: %s. The idea should be something that can be built and deployed. Provide a title, a short description, and a list of key features or technologies to use. Format the response with markdown."

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service .
type Service struct {
	logger *slog.Logger
	gen    Generator
	skills []string
}

// New creates the service, gen may be nil when no backend is configured.
func New(logger *slog.Logger, gen Generator, skills []string) *Service {
	return &Service{
		logger: logger,
		gen:    gen,
		skills: skills,
	}
}

// Prompt .
func (s *Service) Prompt() string {
	return fmt.Sprintf(promptTemplate, strings.Join(s.skills, ", "))
}

// ProjectIdea asks the backend for an idea and returns it as display HTML.
func (s *Service) ProjectIdea(ctx context.Context) (string, error) {
	if s.gen == nil {
		s.logger.Error("project idea requested without an AI backend")

		return "", ErrNotConfigured
	}

	text, err := s.gen.Generate(ctx, s.Prompt())
	if err != nil {
		s.logger.Error("failed to generate project idea", slog.String("err", err.Error()))

		return "", fmt.Errorf("%w: %w", ErrBackend, err)
	}

	if strings.TrimSpace(text) == "" {
		s.logger.Warn("empty project idea response")

		return "", ErrEmptyResponse
	}

	return markdown.ToHTML(text), nil
}
