package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"portfolio/internal/content"
)

func newMCPServer(logger *slog.Logger) *server.MCPServer {
	srv := server.NewMCPServer("Portfolio blog", "0.1.0")
	t := &tools{logger: logger}

	listPosts := mcp.NewTool("list_posts",
		mcp.WithDescription("Lists the blog posts of the portfolio, newest first, without their body"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of posts, 0 for all"),
		),
	)
	srv.AddTool(listPosts, t.listPosts)

	getPost := mcp.NewTool("get_post",
		mcp.WithDescription("Returns a single blog post with its HTML body"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Slug of the post, as returned by list_posts"),
		),
	)
	srv.AddTool(getPost, t.getPost)

	return srv
}

type tools struct {
	logger *slog.Logger
}

func (t *tools) listPosts(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	t.logger.Info("handling list_posts", slog.Int("limit", limit))

	posts := content.Recent(limit)
	summaries := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}

	return jsonResult(summaries)
}

func (t *tools) getPost(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := request.GetString("slug", "")
	t.logger.Info("handling get_post", slog.String("slug", slug))

	if slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	p, ok := content.BySlug(slug)
	if !ok {
		return mcp.NewToolResultError("Post not found"), nil
	}

	return jsonResult(p)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(string(b)), nil
}
