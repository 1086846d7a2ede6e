// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/okian/pitchgen/internal/adapters/http/swagger"
	"github.com/okian/pitchgen/internal/domain/table"
	"github.com/okian/pitchgen/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	// Names lists the datasets that can be requested.
	Names() []string

	// DefaultSeed is used when a request has no seed parameter.
	DefaultSeed() int64

	// Dataset returns the named table generated with seed.
	Dataset(ctx context.Context, name string, seed int64) (table.Table, error)
}

// Server wires HTTP routes for the dataset API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	datasetsHandler *DatasetsHandler
	logger          logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		datasetsHandler: NewDatasetsHandler(deps),
		logger:          log,
	}
}

// Router builds the route table with middleware attached.
func (s *Server) Router(ctx context.Context) *mux.Router {
	router := mux.NewRouter()

	chain := []mux.MiddlewareFunc{
		RecoveryMiddleware(s.logger),
		RequestIDMiddleware,
		LoggingMiddleware(s.logger),
		MetricsMiddleware,
	}
	router.Use(chain...)

	router.HandleFunc("/healthz", s.healthHandler.HandleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", s.healthHandler.MetricsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/stats", s.statsHandler.HandleStats).Methods(http.MethodGet)
	router.HandleFunc("/datasets", s.datasetsHandler.HandleList).Methods(http.MethodGet)
	router.HandleFunc("/datasets/{name}", s.datasetsHandler.HandleGet).Methods(http.MethodGet)
	swagger.Register(ctx, router)

	// mux skips Use middleware for unmatched requests, so wrap these directly.
	router.NotFoundHandler = applyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", NewKind("api.route", ErrNotFound))
	}), chain)
	router.MethodNotAllowedHandler = applyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}), chain)
	return router
}

// applyMiddleware wraps h so that chain[0] runs first, matching router.Use.
func applyMiddleware(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
