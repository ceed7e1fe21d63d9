package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"portfolio/internal/config"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	srv := newMCPServer(logger)

	streamableSrv := server.NewStreamableHTTPServer(srv)
	logger.Info("starting Streamable HTTP server", slog.String("addr", cfg.MCPAddr), slog.String("path", "/mcp"))
	if err := streamableSrv.Start(cfg.MCPAddr); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("mcp server stopped", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}
}
