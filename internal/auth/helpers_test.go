package auth

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
	_ "github.com/rentdesk/rentdesk-core/migrations" // embedded schema
)

// newTestDB opens a temp-file SQLite database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

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

	return db.DB
}

// newTestService wires a Service over a fresh database.
func newTestService(t *testing.T) (*Service, *SQLiteUserRepository) {
	t.Helper()

	repo := NewUserRepository(newTestDB(t))
	tokens := NewTokens("test-secret-0123456789abcdef0123456789", time.Hour)
	return NewService(repo, tokens), repo
}

// registerLandlord creates a landlord account and returns its view.
func registerLandlord(t *testing.T, svc *Service, email string) *UserView {
	t.Helper()

	view, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Lana Lord",
		Email:    email,
		Password: "correct horse battery",
		Role:     RoleLandlord,
	})
	if err != nil {
		t.Fatalf("registering landlord %s: %v", email, err)
	}
	if view.LandlordCode == nil || *view.LandlordCode == "" {
		t.Fatalf("landlord %s has no invite code", email)
	}
	return view
}

// registerTenant creates a tenant bound to the given landlord code.
func registerTenant(t *testing.T, svc *Service, email, landlordCode string) *UserView {
	t.Helper()

	view, err := svc.Register(context.Background(), RegisterInput{
		Name:         "Terry Tenant",
		Email:        email,
		Password:     "hunter2hunter2",
		Role:         RoleTenant,
		LandlordCode: landlordCode,
	})
	if err != nil {
		t.Fatalf("registering tenant %s: %v", email, err)
	}
	return view
}
