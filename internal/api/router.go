package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routes assembles the router and middleware chain.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(recoveryMiddleware(s.logger))
	r.Use(loggingMiddleware(s.logger, s.deps.Metrics))
	r.Use(corsMiddleware(s.deps.Config.API.CORS.AllowedOrigins))
	r.Use(bodyLimitMiddleware)

	r.Get("/health", s.handleHealth)
	if s.deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.deps.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints are open but rate limited.
		r.Group(func(r chi.Router) {
			rlCfg := s.deps.Config.Security.RateLimit
			if rlCfg.Enabled {
				rl := newRateLimiter(rlCfg.RequestsPerMinute, rlCfg.Burst)
				r.Use(rl.middleware)
			}
			r.Post("/auth/register", s.handleRegister)
			r.Post("/auth/login", s.handleLogin)
		})

		// Open so a not-yet-registered tenant can find their landlord.
		r.Get("/users", s.handleUserDirectory)

		// Everything else requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(identityMiddleware(s.deps.Auth, s.deps.Metrics))

			r.Get("/auth/me", s.handleMe)
			r.Patch("/auth/me", s.handleUpdateProfile)
			r.Delete("/auth/me", s.handleDeleteAccount)

			r.Get("/complaints", s.handleListComplaints)
			r.Post("/complaints", s.handleCreateComplaint)
			r.Patch("/complaints/{id}", s.handleUpdateComplaintStatus)
		})
	})

	return r
}

// routePattern returns the matched chi route pattern for metrics labels,
// falling back to the raw path when no route matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
