// Package config loads the runtime configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config .
type Config struct {
	Addr     string
	LogLevel slog.Level

	Telegram Telegram
	AI       AI

	BlogSearch     bool
	EmbeddingModel string

	MCPAddr      string
	PortfolioURL string
}

// Telegram holds the contact relay destination.
type Telegram struct {
	BotToken string
	ChatID   string
	APIURL   string
	Timeout  time.Duration
}

// AI selects and configures the text generation backend.
type AI struct {
	Backend     string // gemini or openai
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
}

// Load reads a .env file if present, then the environment.
func Load() *Config {
	_ = godotenv.Load() // no .env in production

	return &Config{
		Addr:     getEnv("ADDR", ":8080"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),
		Telegram: Telegram{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
			APIURL:   strings.TrimRight(getEnv("TELEGRAM_API_URL", "https://api.telegram.org"), "/"),
			Timeout:  getEnvDuration("TELEGRAM_TIMEOUT", 10*time.Second),
		},
		AI: AI{
			Backend:     strings.ToLower(getEnv("AI_BACKEND", "gemini")),
			GeminiKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		BlogSearch:     getEnvBool("BLOG_SEARCH_ENABLE", false),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		MCPAddr:        getEnv("MCP_ADDR", ":8081"),
		PortfolioURL:   strings.TrimRight(getEnv("PORTFOLIO_URL", "http://127.0.0.1:8080"), "/"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
