package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rentdesk/rentdesk-core/internal/auth"
)

// decodeJSON decodes a request body. Unknown fields are ignored: clients
// may send a full account object to the profile endpoints and only the
// mutable fields take effect.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	LandlordCode string `json:"landlord_code"`
}

// handleRegister creates a new account and returns the signed-in view.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	view, err := s.deps.Auth.Register(r.Context(), auth.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         auth.Role(req.Role),
		LandlordCode: req.LandlordCode,
	})
	if err != nil {
		s.recordAuthFailure("register", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin verifies credentials and returns a fresh token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	view, err := s.deps.Auth.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.recordAuthFailure("login", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// handleMe returns the authenticated user's profile.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	writeJSON(w, http.StatusOK, user.View(""))
}

type profileUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// handleUpdateProfile changes the caller's name and email. Other fields
// are immutable through this endpoint.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user := currentUser(r.Context())
	updated, err := s.deps.Auth.UpdateProfile(r.Context(), user.ID, auth.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

// handleDeleteAccount removes the caller's account after re-verifying
// their password. Complaints tied to the account go with it.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user := currentUser(r.Context())
	if err := s.deps.Auth.DeleteAccount(r.Context(), user.ID, req.Password); err != nil {
		s.recordAuthFailure("delete_account", err)
		writeDomainError(w, err)
		return
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordAccountDeleted()
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) recordAuthFailure(operation string, err error) {
	if s.deps.Metrics == nil || err == nil {
		return
	}
	s.deps.Metrics.RecordAuthFailure(operation)
}
