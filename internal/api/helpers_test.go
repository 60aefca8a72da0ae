package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rentdesk/rentdesk-core/internal/auth"
	"github.com/rentdesk/rentdesk-core/internal/complaint"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/config"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/logging"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/metrics"
	_ "github.com/rentdesk/rentdesk-core/migrations" // embedded schema
)

// newTestServer builds a Server over a fresh temp-file database and
// returns its handler. Rate limiting is off unless the caller flips it
// on in the returned config before building requests.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := newTestConfig(t)

	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	tokens := auth.NewTokens(cfg.Security.JWT.Secret, cfg.TokenTTL())
	authService := auth.NewService(auth.NewUserRepository(db.DB), tokens)
	complaintService := complaint.NewService(complaint.NewRepository(db.DB))

	srv, err := New(Deps{
		Config:     cfg,
		Logger:     logging.Default(),
		DB:         db,
		Auth:       authService,
		Complaints: complaintService,
		Metrics:    metrics.NewCollector(),
	})
	if err != nil {
		t.Fatalf("building server: %v", err)
	}

	return srv.srv.Handler
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.API.Host = "127.0.0.1"
	cfg.API.Port = 0
	cfg.API.Timeouts.Read = 5
	cfg.API.Timeouts.Write = 5
	cfg.API.Timeouts.Idle = 5
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Security.JWT.Secret = "test-secret-0123456789abcdef0123456789"
	cfg.Security.JWT.TokenTTLHours = 1
	cfg.Security.RateLimit.Enabled = false
	cfg.Logging.Level = "error"
	return cfg
}

// doJSON issues a request with an optional JSON body and bearer token,
// decoding the response into out when non-nil.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshalling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

// newRawRequest builds a request with a raw string body.
func newRawRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func record(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// userPayload mirrors the account view returned by the auth endpoints.
type userPayload struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Token        string  `json:"token"`
	LandlordCode *string `json:"landlord_code"`
}

// registerUser drives POST /api/v1/auth/register and fails the test on a
// non-201 response.
func registerUser(t *testing.T, h http.Handler, body map[string]any) userPayload {
	t.Helper()

	var user userPayload
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", body, &user)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %v: status %d, body %s", body["email"], rec.Code, rec.Body.String())
	}
	if user.Token == "" {
		t.Fatalf("register %v: no token in response", body["email"])
	}
	return user
}
