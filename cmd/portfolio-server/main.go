package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	"portfolio/internal/ai/gemini"
	gemini_embedding "portfolio/internal/ai/gemini-embedding"
	"portfolio/internal/ai/openai"
	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/idea"
	"portfolio/internal/rag"
	"portfolio/internal/relay"
	"portfolio/internal/server"
	"portfolio/pkg/telegram"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	relayCfg := relay.Config{BotToken: cfg.Telegram.BotToken, ChatID: cfg.Telegram.ChatID}
	if err := relayCfg.Validate(); err != nil {
		logger.Warn("contact relay is not configured, every submission will fail", slog.String("err", err.Error()))
	}
	tg := telegram.New(cfg.Telegram.BotToken,
		telegram.WithBaseURL(cfg.Telegram.APIURL),
		telegram.WithTimeout(cfg.Telegram.Timeout),
	)
	contactRelay := relay.New(logger, relayCfg, tg)

	var aiClient *genai.Client
	if cfg.AI.GeminiKey != "" {
		var err error
		aiClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.AI.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			logger.Error("failed to create genai client", slog.String("err", err.Error()))

			return
		}
	}

	var gen idea.Generator
	switch cfg.AI.Backend {
	case "openai":
		if cfg.AI.OpenAIKey != "" {
			gen = openai.New(logger, cfg.AI.OpenAIKey, cfg.AI.OpenAIModel)
		}
	case "gemini":
		if aiClient != nil {
			gen = gemini.New(logger, aiClient, cfg.AI.GeminiModel)
		}
	default:
		logger.Error("unknown AI_BACKEND", slog.String("backend", cfg.AI.Backend))

		return
	}
	if gen == nil {
		logger.Warn("no AI backend configured, project ideas are disabled", slog.String("backend", cfg.AI.Backend))
	}

	srv := server.New(logger, cfg.Addr, contactRelay, idea.New(logger, gen, content.IdeaSkills))

	if cfg.BlogSearch {
		if aiClient == nil {
			logger.Error("BLOG_SEARCH_ENABLE needs GEMINI_API_KEY for embeddings")

			return
		}

		index := gemini_embedding.GeminiEmbeddingFunc(aiClient.Models, cfg.EmbeddingModel, gemini_embedding.TaskRetrievalDocument)
		query := gemini_embedding.GeminiEmbeddingFunc(aiClient.Models, cfg.EmbeddingModel, gemini_embedding.TaskRetrievalQuery)
		ragL, err := rag.New(context.Background(), logger, content.All(), index, query)
		if err != nil {
			logger.Error("failed to create blog search", slog.String("err", err.Error()))

			return
		}
		srv.EnableSearch(ragL)
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("failed to stop server", slog.String("err", err.Error()))
		}
	}()

	logger.Info("starting server", slog.String("addr", cfg.Addr))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.String("err", err.Error()))
	}
}
