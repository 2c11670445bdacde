// Package http exposes a campaign's corpus store and metrics over HTTP,
// for inspecting a long-running fuzzing campaign from the outside.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves corpus entries and campaign metrics.
type Server struct {
	store  ports.CorpusStore
	logger *slog.Logger
}

// NewHandler creates the HTTP handler. gatherer may be nil to disable the
// /metrics endpoint; store may be nil to disable the corpus endpoints.
func NewHandler(store ports.CorpusStore, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	if store != nil {
		r.Get("/corpus", s.ListCorpus)
		r.Get("/corpus/{key}", s.GetCorpusEntry)
		r.Delete("/corpus/{key}", s.DeleteCorpusEntry)
	}
	return r
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "graft-http",
		"version": graft.Version,
	})
}

// ListCorpus handles the GET /corpus request.
func (s *Server) ListCorpus(w http.ResponseWriter, r *http.Request) {
	keys, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list corpus entries", http.StatusInternalServerError)
		s.logger.Error("List failed", "err", err)
		return
	}
	sort.Strings(keys)
	writeJSON(w, s.logger, map[string]any{"entries": keys})
}

// GetCorpusEntry handles the GET /corpus/{key} request.
func (s *Server) GetCorpusEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	tree, err := s.store.Load(r.Context(), key)
	if err != nil {
		if errors.Is(err, ports.ErrEntryNotFound) {
			http.Error(w, "Corpus entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load corpus entry", http.StatusInternalServerError)
		s.logger.Error("Load failed", "key", key, "err", err)
		return
	}
	writeJSON(w, s.logger, tree)
}

// DeleteCorpusEntry handles the DELETE /corpus/{key} request.
func (s *Server) DeleteCorpusEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := s.store.Delete(r.Context(), key); err != nil {
		http.Error(w, "Failed to delete corpus entry", http.StatusInternalServerError)
		s.logger.Error("Delete failed", "key", key, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "err", err)
	}
}
