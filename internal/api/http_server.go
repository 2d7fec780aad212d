package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lightbnb/internal/config"
	"lightbnb/internal/database"
	"lightbnb/internal/domain"
	"lightbnb/internal/logging"

	"github.com/rs/zerolog"
)

// Services are the use cases served over HTTP.
type Services struct {
	Users        domain.UserService
	Properties   domain.PropertyService
	Reservations domain.ReservationService
}

// HTTPServer exposes the JSON API.
type HTTPServer struct {
	cfg     config.APIConfig
	svc     Services
	limiter domain.RateLimiter
	logger  *zerolog.Logger
	server  *http.Server
}

// NewHTTPServer wires routes and middleware. limiter may be nil when rate
// limiting is disabled.
func NewHTTPServer(cfg config.APIConfig, svc Services, limiter domain.RateLimiter, logger *zerolog.Logger) *HTTPServer {
	srv := &HTTPServer{
		cfg:     cfg,
		svc:     svc,
		limiter: limiter,
		logger:  logging.Component(logger, "http"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", srv.handleHealth)

	mux.HandleFunc("POST /api/v1/users", srv.handleCreateUser)
	mux.HandleFunc("GET /api/v1/users", srv.handleUserByEmail)
	mux.HandleFunc("GET /api/v1/users/{id}", srv.handleUserByID)
	mux.HandleFunc("GET /api/v1/users/{id}/reservations", srv.handleGuestReservations)

	mux.HandleFunc("POST /api/v1/reservations", srv.handleCreateReservation)

	mux.HandleFunc("GET /api/v1/properties", srv.handleSearchProperties)
	mux.HandleFunc("POST /api/v1/properties", srv.handleCreateProperty)
	mux.HandleFunc("GET /api/v1/properties/export", srv.handleExportProperties)

	var handler http.Handler = mux
	if cfg.RateLimit.Enabled && limiter != nil {
		handler = srv.rateLimitMiddleware(handler)
	}
	handler = metricsMiddleware(mux, handler)
	handler = loggingMiddleware(srv.logger, handler)
	handler = requestIDMiddleware(srv.logger, handler)

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

// Handler returns the fully wrapped handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps query layer errors onto HTTP statuses. Store
// failures are logged with the request logger and hidden from the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, database.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, context.Canceled):
		// client went away
		w.WriteHeader(499)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
