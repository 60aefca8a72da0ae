package complaint

import (
	"errors"
	"strings"
	"time"
)

// Status is a complaint's progress state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// Normalize lowercases a client-supplied status and checks it against the
// closed set. There is no enforced transition order — a landlord may move
// a complaint between any two states.
func Normalize(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusResolved:
		return StatusResolved, nil
	default:
		return "", ErrInvalidStatus
	}
}

// defaultCategory is applied when the filer leaves category empty.
const defaultCategory = "general"

// Complaint is a maintenance issue filed by a tenant against their
// landlord. LandlordID is fixed at creation to the filer's bound landlord
// and never changes afterwards.
type Complaint struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	LandlordID  string    `json:"landlord_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sentinel errors for complaint operations.
var (
	ErrNotFound      = errors.New("complaint not found")
	ErrForbidden     = errors.New("insufficient permissions")
	ErrMissingFields = errors.New("title and description are required")
	ErrNoLandlord    = errors.New("tenant has no assigned landlord")
	ErrInvalidStatus = errors.New("invalid status")
)
