package complaint

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rentdesk/rentdesk-core/internal/auth"
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

// seedPair creates a landlord and a tenant bound to them, returning both.
func seedPair(t *testing.T, db *sql.DB) (landlord, tenant *auth.User) {
	t.Helper()

	users := auth.NewUserRepository(db)
	ctx := context.Background()

	landlord = &auth.User{
		Name:         "Lana Lord",
		Email:        "lana@example.com",
		PasswordHash: "x",
		Role:         auth.RoleLandlord,
		LandlordCode: "CODE01",
	}
	if err := users.Create(ctx, landlord); err != nil {
		t.Fatalf("seeding landlord: %v", err)
	}

	tenant = &auth.User{
		Name:         "Terry Tenant",
		Email:        "terry@example.com",
		PasswordHash: "x",
		Role:         auth.RoleTenant,
		RelatedUser:  landlord.ID,
	}
	if err := users.Create(ctx, tenant); err != nil {
		t.Fatalf("seeding tenant: %v", err)
	}

	return landlord, tenant
}
