package auth

import (
	"errors"
	"time"
)

// Role represents the two account kinds in the system.
// Every authorisation decision switches exhaustively over this closed set;
// an unrecognised role never passes a check.
type Role string

const (
	// RoleTenant files complaints against the landlord it registered under.
	RoleTenant Role = "tenant"

	// RoleLandlord reviews and resolves complaints filed against it.
	// Landlords hold an invite code that tenants use to register.
	RoleLandlord Role = "landlord"
)

// IsValidRole returns true if r is one of the two recognised roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleTenant, RoleLandlord:
		return true
	default:
		return false
	}
}

// landlordCodeLength is the length of generated landlord invite codes.
const landlordCodeLength = 6

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	Role         Role      `json:"role"`
	RelatedUser  string    `json:"related_user,omitempty"`  // tenants: owning landlord's ID
	LandlordCode string    `json:"landlord_code,omitempty"` // landlords: unique invite code
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is the subset of a User safe to return to a client,
// plus the freshly issued token on register/login.
type UserView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	Token        string  `json:"token,omitempty"`
	LandlordCode *string `json:"landlord_code"`
}

// View builds the outward representation of u. The password hash is never
// included; landlord_code is null for tenants.
func (u *User) View(token string) *UserView {
	v := &UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Token: token,
	}
	if u.LandlordCode != "" {
		code := u.LandlordCode
		v.LandlordCode = &code
	}
	return v
}

// DirectoryEntry is the minimal public listing of a user (name and email
// only), used by registration UIs to show available landlords.
type DirectoryEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Sentinel errors for auth operations.
var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrEmailExists         = errors.New("email already registered")
	ErrLandlordCodeExists  = errors.New("landlord code already exists")
	ErrInvalidRole         = errors.New("invalid role")
	ErrMissingLandlordCode = errors.New("tenant must provide landlord code")
	ErrInvalidLandlordCode = errors.New("invalid landlord code")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenInvalid        = errors.New("invalid token")
)
