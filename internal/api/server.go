package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rentdesk/rentdesk-core/internal/auth"
	"github.com/rentdesk/rentdesk-core/internal/complaint"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/config"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/logging"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/metrics"
)

// shutdownTimeout bounds graceful drain on Close.
const shutdownTimeout = 10 * time.Second

// Deps holds everything the HTTP server needs to run.
type Deps struct {
	Config     *config.Config
	Logger     *logging.Logger
	DB         *database.DB
	Auth       *auth.Service
	Complaints *complaint.Service
	Metrics    *metrics.Collector
}

// Server is the HTTP front door for the service.
type Server struct {
	deps   Deps
	logger *logging.Logger
	srv    *http.Server
}

// New builds a Server with its routes and middleware wired.
func New(deps Deps) (*Server, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if deps.Complaints == nil {
		return nil, fmt.Errorf("complaint service is required")
	}

	s := &Server{
		deps:   deps,
		logger: deps.Logger.With("component", "api"),
	}

	apiCfg := deps.Config.API
	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", apiCfg.Host, apiCfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  deps.Config.GetReadTimeout(),
		WriteTimeout: deps.Config.GetWriteTimeout(),
		IdleTimeout:  deps.Config.GetIdleTimeout(),
	}
	if apiCfg.TLS.Enabled {
		s.srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return s, nil
}

// Start runs the server until it fails or Close is called. It blocks.
func (s *Server) Start() error {
	apiCfg := s.deps.Config.API
	s.logger.Info("http server starting",
		"addr", s.srv.Addr,
		"tls", apiCfg.TLS.Enabled,
	)

	var err error
	if apiCfg.TLS.Enabled {
		err = s.srv.ListenAndServeTLS(apiCfg.TLS.CertFile, apiCfg.TLS.KeyFile)
	} else {
		err = s.srv.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close drains in-flight requests and shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http server stopping")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// handleHealth reports process and database health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if s.deps.DB != nil {
		if err := s.deps.DB.HealthCheck(r.Context()); err != nil {
			s.logger.Error("health check failed", "error", err)
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, map[string]string{
		"status":  status,
		"service": "rentdesk",
	})
}
