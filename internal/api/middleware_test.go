package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk-core/internal/auth"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
)

func TestIdentityMiddlewareStoreFailureIs500(t *testing.T) {
	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	tokens := auth.NewTokens("test-secret-0123456789abcdef0123456789", time.Hour)
	svc := auth.NewService(auth.NewUserRepository(db.DB), tokens)

	signed, err := tokens.Issue("usr-abc12345")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	// Closing the database makes the user lookup fail with a store error,
	// which is the server's problem, not an authentication failure.
	if err := db.Close(); err != nil {
		t.Fatalf("closing database: %v", err)
	}

	handler := identityMiddleware(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("store failure status = %d, want 500; body %s", rec.Code, rec.Body.String())
	}
}

func TestIdentityMiddlewareBadTokenIs401(t *testing.T) {
	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
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

	tokens := auth.NewTokens("test-secret-0123456789abcdef0123456789", time.Hour)
	svc := auth.NewService(auth.NewUserRepository(db.DB), tokens)

	handler := identityMiddleware(svc, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token status = %d, want 401", rec.Code)
	}
}
