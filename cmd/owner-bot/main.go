package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"

	"portfolio/internal/config"
	"portfolio/pkg/portfolioclient"
)

// The owner bot answers /posts and /idea in the chat that receives contact messages.

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		logger.Error("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	l := New(logger, portfolioclient.New(cfg.PortfolioURL, nil), cfg.Telegram.ChatID)

	opts := []bot.Option{
		bot.WithDefaultHandler(l.Help),
	}
	if cfg.Telegram.APIURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.Telegram.APIURL))
	}

	b, err := bot.New(cfg.Telegram.BotToken, opts...)
	if err != nil {
		logger.Error("failed to create bot", slog.String("err", err.Error()))
		os.Exit(1)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/posts", bot.MatchTypeExact, l.Posts)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/idea", bot.MatchTypeExact, l.Idea)

	logger.Info("owner bot started", slog.String("portfolio", cfg.PortfolioURL))
	b.Start(ctx)
}
