package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"portfolio/internal/content"
	"portfolio/internal/markdown"
)

const (
	recentPosts = 5
	helpText    = "Available commands:\n/posts - latest blog posts\n/idea - generate a project idea"
)

type portfolio interface {
	Posts(ctx context.Context, limit int) ([]content.Post, error)
	ProjectIdea(ctx context.Context) (string, error)
}

// Logic .
type Logic struct {
	logger    *slog.Logger
	portfolio portfolio
	chatID    string
}

// New .
func New(logger *slog.Logger, p portfolio, chatID string) *Logic {
	return &Logic{
		logger:    logger,
		portfolio: p,
		chatID:    chatID,
	}
}

// Help .
func (l *Logic) Help(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !l.allowed(update) {
		return
	}

	l.reply(ctx, b, update, markdown.Escape(helpText))
}

// Posts replies with the latest post titles.
func (l *Logic) Posts(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !l.allowed(update) {
		return
	}

	l.reply(ctx, b, update, l.postsText(ctx))
}

// Idea replies with a freshly generated project idea.
func (l *Logic) Idea(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !l.allowed(update) {
		return
	}

	l.reply(ctx, b, update, l.ideaText(ctx))
}

// allowed reports whether the update comes from the configured owner chat.
func (l *Logic) allowed(update *models.Update) bool {
	if update == nil || update.Message == nil {
		return false
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	if chatID != l.chatID {
		l.logger.Warn("ignoring message from unknown chat", slog.String("chatID", chatID))

		return false
	}

	return true
}

func (l *Logic) postsText(ctx context.Context) string {
	posts, err := l.portfolio.Posts(ctx, recentPosts)
	if err != nil {
		l.logger.Error("failed to list posts", slog.String("err", err.Error()))

		return markdown.Escape("Could not load posts: " + err.Error())
	}
	if len(posts) == 0 {
		return markdown.Escape("No posts yet.")
	}

	var sb strings.Builder
	sb.WriteString("*Latest posts*\n")
	for _, p := range posts {
		fmt.Fprintf(&sb, "\n*%s*\n%s \\| %s", markdown.Escape(p.Title), markdown.Escape(p.Date), markdown.Escape(p.Slug))
	}

	return sb.String()
}

func (l *Logic) ideaText(ctx context.Context) string {
	html, err := l.portfolio.ProjectIdea(ctx)
	if err != nil {
		l.logger.Error("failed to generate idea", slog.String("err", err.Error()))

		return markdown.Escape(err.Error())
	}

	return htmlToMarkdown(html)
}

var htmlEntities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&amp;", "&")

// htmlToMarkdown maps the display HTML of an idea back to MarkdownV2.
func htmlToMarkdown(s string) string {
	s = strings.ReplaceAll(s, "<br/>", "\n")

	var sb strings.Builder
	for s != "" {
		open := strings.Index(s, "<strong>")
		if open < 0 {
			break
		}
		end := strings.Index(s[open:], "</strong>")
		if end < 0 {
			break
		}
		end += open

		sb.WriteString(plain(s[:open]))
		sb.WriteString("*" + plain(s[open+len("<strong>"):end]) + "*")
		s = s[end+len("</strong>"):]
	}
	sb.WriteString(plain(s))

	return sb.String()
}

func plain(s string) string {
	s = strings.NewReplacer("<em>", "", "</em>", "").Replace(s)

	return markdown.Escape(htmlEntities.Replace(s))
}

func (l *Logic) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		l.logger.Error("failed to reply", slog.String("err", err.Error()))
	}
}
