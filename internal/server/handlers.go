package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"portfolio/internal/content"
	"portfolio/internal/idea"
	"portfolio/internal/relay"
)

const defaultSearchLimit = 3

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", slog.String("requestID", middleware.GetReqID(r.Context())), slog.String("err", err.Error()))
	}
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) postContact(w http.ResponseWriter, r *http.Request) {
	res := s.relay.Handle(r.Context(), r.Body)

	s.writeJSON(w, r, contactStatus(res.Outcome), messageResponse{Message: res.Message()})
}

// contactStatus is the only place relay outcomes turn into HTTP statuses.
func contactStatus(o relay.Outcome) int {
	switch o {
	case relay.Delivered:
		return http.StatusOK
	case relay.Invalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) postProjectIdea(w http.ResponseWriter, r *http.Request) {
	text, err := s.ideas.ProjectIdea(r.Context())
	switch {
	case err == nil:
		s.writeJSON(w, r, http.StatusOK, struct {
			Idea string `json:"idea"`
		}{Idea: text})
	case errors.Is(err, idea.ErrNotConfigured):
		s.writeJSON(w, r, http.StatusServiceUnavailable, messageResponse{Message: idea.Message(err)})
	default:
		s.writeJSON(w, r, http.StatusBadGateway, messageResponse{Message: idea.Message(err)})
	}
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, content.Owner())
}

func (s *Server) getPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, 0)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	posts := content.Recent(limit)
	for i := range posts {
		posts[i] = posts[i].Summary()
	}

	s.writeJSON(w, r, http.StatusOK, posts)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	p, ok := content.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.writeJSON(w, r, http.StatusNotFound, messageResponse{Message: "Post not found"})
		return
	}

	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Server) getSearch(w http.ResponseWriter, r *http.Request) {
	if s.search == nil {
		s.writeJSON(w, r, http.StatusServiceUnavailable, messageResponse{Message: "Blog search is not enabled"})
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.writeJSON(w, r, http.StatusBadRequest, messageResponse{Message: "query parameter q is required"})
		return
	}

	limit, err := queryLimit(r, defaultSearchLimit)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}

	posts, err := s.search.Search(r.Context(), q, limit)
	if err != nil {
		s.logger.Error("blog search failed", slog.String("requestID", middleware.GetReqID(r.Context())), slog.String("err", err.Error()))
		s.writeJSON(w, r, http.StatusBadGateway, messageResponse{Message: "Search failed, please try again later"})
		return
	}

	s.writeJSON(w, r, http.StatusOK, posts)
}

func queryLimit(r *http.Request, fallback int) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}

	return n, nil
}
