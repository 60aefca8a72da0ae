package complaint

import (
	"context"
	"fmt"

	"github.com/rentdesk/rentdesk-core/internal/auth"
)

// Service enforces role and ownership rules on complaint operations.
// Every method takes the already-resolved caller; identity resolution
// happens upstream in the API layer.
type Service struct {
	complaints Repository
}

// NewService creates a complaint service backed by the given repository.
func NewService(complaints Repository) *Service {
	return &Service{complaints: complaints}
}

// CreateInput is the payload for Create. Category is optional and
// defaults to "general".
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Create files a new complaint on behalf of the caller.
//
// Only tenants may file complaints, and only tenants bound to a landlord:
// the complaint's LandlordID is fixed here to the caller's RelatedUser and
// is immutable afterwards.
func (s *Service) Create(ctx context.Context, caller *auth.User, in CreateInput) (*Complaint, error) {
	switch caller.Role {
	case auth.RoleTenant:
		// allowed
	case auth.RoleLandlord:
		return nil, ErrForbidden
	default:
		return nil, ErrForbidden
	}

	if in.Title == "" || in.Description == "" {
		return nil, ErrMissingFields
	}

	if caller.RelatedUser == "" {
		return nil, ErrNoLandlord
	}

	c := &Complaint{
		UserID:      caller.ID,
		LandlordID:  caller.RelatedUser,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      StatusPending,
	}

	if err := s.complaints.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("filing complaint: %w", err)
	}

	return c, nil
}

// List returns the complaints visible to the caller: tenants see what
// they filed, landlords see what was filed against them. Any other role
// sees an empty set.
func (s *Service) List(ctx context.Context, caller *auth.User) ([]Complaint, error) {
	switch caller.Role {
	case auth.RoleTenant:
		return s.complaints.ListByTenant(ctx, caller.ID)
	case auth.RoleLandlord:
		return s.complaints.ListByLandlord(ctx, caller.ID)
	default:
		return []Complaint{}, nil
	}
}

// UpdateStatus moves a complaint to a new status.
//
// Only the landlord the complaint is bound to may update it. The status
// string is lowercased and checked against the closed set; existence is
// checked before ownership so an unknown ID reports NotFound rather than
// Forbidden.
func (s *Service) UpdateStatus(ctx context.Context, caller *auth.User, complaintID, status string) (*Complaint, error) {
	normalized, err := Normalize(status)
	if err != nil {
		return nil, err
	}

	c, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case auth.RoleLandlord:
		if c.LandlordID != caller.ID {
			return nil, ErrForbidden
		}
	case auth.RoleTenant:
		return nil, ErrForbidden
	default:
		return nil, ErrForbidden
	}

	return s.complaints.UpdateStatus(ctx, complaintID, normalized)
}
