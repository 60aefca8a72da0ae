package complaint

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for complaint persistence.
type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id string) (*Complaint, error)
	ListByTenant(ctx context.Context, userID string) ([]Complaint, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Complaint, error)
}

const complaintColumns = "id, user_id, landlord_id, title, description, category, status, created_at, updated_at"

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed complaint repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new complaint. The ID is generated if empty.
func (r *SQLiteRepository) Create(ctx context.Context, c *Complaint) error {
	if c.ID == "" {
		c.ID = "cmp-" + uuid.NewString()[:8]
	}
	if c.Category == "" {
		c.Category = defaultCategory
	}
	if c.Status == "" {
		c.Status = StatusPending
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	c.UpdatedAt = c.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO complaints (id, user_id, landlord_id, title, description, category, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.LandlordID, c.Title, c.Description, c.Category, string(c.Status), now, now,
	)
	if err != nil {
		return fmt.Errorf("creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by its unique ID.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Complaint, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE id = ?", id)
	return scanComplaintFrom(row)
}

// ListByTenant returns all complaints filed by the given user, newest first.
func (r *SQLiteRepository) ListByTenant(ctx context.Context, userID string) ([]Complaint, error) {
	return r.list(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE user_id = ? ORDER BY created_at DESC", userID)
}

// ListByLandlord returns all complaints filed against the given landlord,
// newest first.
func (r *SQLiteRepository) ListByLandlord(ctx context.Context, landlordID string) ([]Complaint, error) {
	return r.list(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE landlord_id = ? ORDER BY created_at DESC", landlordID)
}

// UpdateStatus sets a complaint's status and returns the updated record.
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Complaint, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.ExecContext(ctx,
		"UPDATE complaints SET status = ?, updated_at = ? WHERE id = ?",
		string(status), now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating complaint status: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// list executes a query returning multiple complaints.
func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]Complaint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing complaints: %w", err)
	}
	defer rows.Close()

	complaints := []Complaint{}
	for rows.Next() {
		c, err := scanComplaintFrom(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating complaints: %w", err)
	}

	return complaints, nil
}

// scanner is satisfied by both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanComplaintFrom scans a complaint from a row or rows cursor.
func scanComplaintFrom(s scanner) (*Complaint, error) {
	var c Complaint
	var status string
	var createdAt, updatedAt string

	err := s.Scan(&c.ID, &c.UserID, &c.LandlordID, &c.Title, &c.Description,
		&c.Category, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning complaint: %w", err)
	}

	c.Status = Status(status)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &c, nil
}
