package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/doniyor117/AdvoAi/rag"
	"github.com/doniyor117/AdvoAi/scout"
	"github.com/doniyor117/AdvoAi/status"
	"github.com/doniyor117/AdvoAi/store"
)

const (
	appName = "AdvoAi"
	version = "1.0.0"

	genericErrorMessage  = "Xatolik yuz berdi. Iltimos, qaytadan urinib ko'ring."
	storeNotReadyMessage = "Vector database not initialized. Please seed the database first."

	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 0 // unlimited, SSE streams stay open
)

// Config holds server settings.
type Config struct {
	Addr string

	// Debug exposes raw error detail in responses.
	Debug bool

	// CORSOrigins lists allowed origins; empty allows the local frontend
	// defaults.
	CORSOrigins []string

	// EmbeddingModel and GenerationModel are reported by /health.
	EmbeddingModel  string
	GenerationModel string
}

// Server serves the HTTP API.
type Server struct {
	config  Config
	engine  *rag.Engine
	manager *scout.Manager
	bus     *status.Bus
	store   store.Store
	logger  *slog.Logger
	mux     *http.ServeMux
}

// New creates a server. engine may be nil when the store is not ready;
// chat requests then answer with service-unavailable.
func New(config Config, engine *rag.Engine, manager *scout.Manager, bus *status.Bus, st store.Store) *Server {
	if config.Addr == "" {
		config.Addr = ":8000"
	}
	if len(config.CORSOrigins) == 0 {
		config.CORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	s := &Server{
		config:  config,
		engine:  engine,
		manager: manager,
		bus:     bus,
		store:   st,
		logger:  slog.Default().With("component", "server"),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("POST /api/scout/trigger", s.handleTrigger)
	s.mux.HandleFunc("GET /api/scout/status", s.handleStatus)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handleRoot)

	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:        s.config.Addr,
		Handler:     s.Handler(),
		ReadTimeout: defaultReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// corsMiddleware applies the permissive CORS policy the frontend needs.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(s.config.CORSOrigins))
	for _, origin := range s.config.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok || allowAll {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "*")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSON(w, statusCode, errorEnvelope{
		Error:      message,
		StatusCode: statusCode,
	})
}

// writeInternalError hides error detail unless debug mode is on.
func (s *Server) writeInternalError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)

	if errors.Is(err, store.ErrStoreClosed) {
		s.writeError(w, http.StatusServiceUnavailable, storeNotReadyMessage)
		return
	}

	message := genericErrorMessage
	if s.config.Debug {
		message = err.Error()
	}
	s.writeError(w, http.StatusInternalServerError, message)
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	// Reject trailing garbage.
	if decoder.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func trimmedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// ParseCORSOrigins splits a comma-separated origin list from a flag.
func ParseCORSOrigins(raw string) []string {
	return trimmedOrigins(raw)
}
