// Package server is the HTTP API of the portfolio site
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"portfolio/internal/content"
	"portfolio/internal/relay"
)

const maxContactBody = 64 << 10

type contactRelay interface {
	Handle(ctx context.Context, body io.Reader) relay.Result
}

type ideaGenerator interface {
	ProjectIdea(ctx context.Context) (string, error)
}

type blogSearch interface {
	Search(ctx context.Context, query string, limit int) ([]content.Post, error)
}

// Server .
type Server struct {
	logger *slog.Logger
	h      *chi.Mux
	srv    *http.Server

	relay  contactRelay
	ideas  ideaGenerator
	search blogSearch
}

// New .
func New(logger *slog.Logger, addr string, relay contactRelay, ideas ideaGenerator) *Server {
	h := chi.NewMux()
	s := &Server{
		logger: logger,
		h:      h,
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
		relay: relay,
		ideas: ideas,
	}
	s.addRoutes()

	return s
}

func (s *Server) addRoutes() {
	s.h.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	s.h.Get("/health", s.getHealth)
	s.h.Route("/api", func(r chi.Router) {
		r.With(middleware.RequestSize(maxContactBody)).Post("/contact", s.postContact)
		r.Post("/project-idea", s.postProjectIdea)
		r.Get("/profile", s.getProfile)
		r.Get("/posts", s.getPosts)
		r.Get("/posts/{slug}", s.getPost)
		r.Get("/search", s.getSearch)
	})
}

// EnableSearch turns on /api/search. Without it the endpoint answers 503.
func (s *Server) EnableSearch(search blogSearch) {
	s.search = search
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.h
}

// Start .
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Stop .
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
