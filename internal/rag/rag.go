// Package rag indexes the blog posts in an in-memory vector database for search
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/philippgille/chromem-go"

	"portfolio/internal/content"
)

const collectionKey = "blog-posts"

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Logic .
type Logic struct {
	logger *slog.Logger

	db           *chromem.DB
	index        chromem.EmbeddingFunc
	posts        map[string]content.Post
	embeddedDocs int
}

// New embeds every post with index, once per post. Search queries are embedded with query.
func New(ctx context.Context, logger *slog.Logger, posts []content.Post, index, query chromem.EmbeddingFunc) (*Logic, error) {
	db := chromem.NewDB()
	_, err := db.CreateCollection(collectionKey, nil, query)
	if err != nil {
		logger.Error("failed to create RAG collection", slog.String("collection", collectionKey), slog.String("err", err.Error()))

		return nil, err
	}

	l := &Logic{
		logger: logger,
		db:     db,
		index:  index,
		posts:  make(map[string]content.Post, len(posts)),
	}

	return l, l.loadPosts(ctx, posts)
}

func (l *Logic) loadPosts(ctx context.Context, posts []content.Post) error {
	l.logger.Info("started embedding blog posts", slog.Int("num", len(posts)))

	coll := l.db.GetCollection(collectionKey, nil) // query embeddingFunc was set during creation
	for _, p := range posts {
		doc := document(p)
		embedding, err := l.index(ctx, doc)
		if err != nil {
			l.logger.Error("failed to embed post", slog.String("slug", p.Slug), slog.String("err", err.Error()))

			return fmt.Errorf("failed to embed post %s: %w", p.Slug, err)
		}

		err = coll.AddDocument(ctx, chromem.Document{
			ID:        p.Slug,
			Content:   doc,
			Embedding: embedding,
			Metadata:  map[string]string{"category": p.Category},
		})
		if err != nil {
			l.logger.Error("failed to add post", slog.String("slug", p.Slug), slog.String("err", err.Error()))

			return fmt.Errorf("failed to add post %s: %w", p.Slug, err)
		}

		l.posts[p.Slug] = p
		l.embeddedDocs++
	}

	l.logger.Info("blog embedding done", slog.Int("num", l.embeddedDocs))

	return nil
}

func document(p content.Post) string {
	body := strings.Join(strings.Fields(tagRe.ReplaceAllString(p.Content, " ")), " ")

	return fmt.Sprintf("%s\n%s\nCategory: %s\n%s", p.Title, p.Excerpt, p.Category, body)
}

// Search returns the posts most similar to the query, best match first.
func (l *Logic) Search(ctx context.Context, query string, limit int) ([]content.Post, error) {
	l.logger.Info("blog search", slog.String("query", query), slog.Int("limit", limit))

	if l.embeddedDocs == 0 {
		l.logger.Warn("blog search called without any embedded posts")

		return make([]content.Post, 0), nil
	}

	// chromem rejects queries for more results than documents
	if limit <= 0 || limit > l.embeddedDocs {
		limit = l.embeddedDocs
	}

	coll := l.db.GetCollection(collectionKey, nil)
	res, err := coll.Query(ctx, query, limit, nil, nil)
	if err != nil {
		l.logger.Error("failed to query blog posts", slog.String("query", query), slog.String("err", err.Error()))

		return nil, err
	}

	found := make([]content.Post, 0, len(res))
	for _, r := range res {
		if p, ok := l.posts[r.ID]; ok {
			found = append(found, p.Summary())
		}
	}

	l.logger.Info("blog search done", slog.Int("num_results", len(found)))

	return found, nil
}
