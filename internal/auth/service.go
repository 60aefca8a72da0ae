package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// maxCodeAttempts bounds landlord code regeneration when a freshly drawn
// code collides with an existing one.
const maxCodeAttempts = 5

// Service implements the credential and identity operations: registration,
// login, token resolution, profile updates, and account deletion.
//
// The service is stateless; every call re-reads the store, and decoded
// token claims are never trusted beyond the user ID they carry.
type Service struct {
	users  UserRepository
	tokens *Tokens
}

// NewService creates an auth service backed by the given repository and
// token issuer.
func NewService(users UserRepository, tokens *Tokens) *Service {
	return &Service{users: users, tokens: tokens}
}

// RegisterInput is the payload for Register.
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         Role   `json:"role"`
	LandlordCode string `json:"landlord_code"`
}

// Register creates a new account and returns its view with a fresh token.
//
// Validation order: required fields, duplicate email, role, then the
// role-specific landlord code handling. Tenants must present an existing
// landlord's invite code (exact, case-sensitive match) and are bound to
// that landlord. Landlords receive a generated 6-character uppercase
// alphanumeric code, retried on the rare collision.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*UserView, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if !IsValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	switch in.Role {
	case RoleTenant:
		if in.LandlordCode == "" {
			return nil, ErrMissingLandlordCode
		}
		landlord, err := s.users.GetByLandlordCode(ctx, in.LandlordCode)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrInvalidLandlordCode
			}
			return nil, fmt.Errorf("looking up landlord code: %w", err)
		}
		user.RelatedUser = landlord.ID

		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}

	case RoleLandlord:
		if err := s.createLandlord(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return user.View(token), nil
}

// createLandlord persists a landlord account, regenerating the invite code
// if the unique index reports a collision.
func (s *Service) createLandlord(ctx context.Context, user *User) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := GenerateLandlordCode()
		if err != nil {
			return err
		}
		user.LandlordCode = code

		err = s.users.Create(ctx, user)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrLandlordCodeExists) {
			continue
		}
		return err
	}
	return fmt.Errorf("generating unique landlord code: exhausted %d attempts", maxCodeAttempts)
}

// LoginInput is the payload for Login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an email/password pair and returns the account view
// with a fresh token.
func (s *Service) Login(ctx context.Context, in LoginInput) (*UserView, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	ok, err := VerifyPassword(in.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return user.View(token), nil
}

// Resolve maps an Authorization header to the current user record.
//
// The header must carry a non-empty bearer token; the token must verify;
// and the embedded user must still exist. Any failure along that path is
// ErrUnauthenticated — a token referencing a deleted account does not
// resolve, and claims are never used in place of the stored record.
func (s *Service) Resolve(ctx context.Context, authorizationHeader string) (*User, error) {
	token, ok := bearerToken(authorizationHeader)
	if !ok {
		return nil, ErrUnauthenticated
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	return user, nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// ProfileUpdate carries the two mutable profile fields. Nil means "leave
// unchanged"; every other account field is immutable after registration
// and silently ignored if a client supplies it.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateProfile applies a profile update for the given user and returns
// the refreshed view (without a new token).
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	if update.Name != nil && *update.Name != "" {
		name = *update.Name
	}
	email := user.Email
	if update.Email != nil && *update.Email != "" {
		email = *update.Email
	}

	if err := s.users.UpdateProfile(ctx, userID, name, email); err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	return user.View(""), nil
}

// DeleteAccount removes the caller's account after re-verifying their
// password. The account's complaints and the user record are deleted in a
// single transaction.
func (s *Service) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return ErrIncorrectPassword
	}

	return s.users.DeleteCascade(ctx, userID)
}

// Directory lists the name and email of every user with the given role.
// An unrecognised role yields an empty list rather than an error: the
// listing is public-ish and must not probe the role space.
func (s *Service) Directory(ctx context.Context, role Role) ([]DirectoryEntry, error) {
	if !IsValidRole(role) {
		return []DirectoryEntry{}, nil
	}

	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, DirectoryEntry{Name: u.Name, Email: u.Email})
	}
	return entries, nil
}
