package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentdesk/rentdesk-core/internal/complaint"
)

// handleListComplaints returns the caller's complaints: tenants see what
// they filed, landlords see what was filed against them.
func (s *Server) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	complaints, err := s.deps.Complaints.List(r.Context(), user)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if complaints == nil {
		complaints = []complaint.Complaint{}
	}

	writeJSON(w, http.StatusOK, complaints)
}

type createComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// handleCreateComplaint files a complaint for the calling tenant against
// their landlord.
func (s *Server) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user := currentUser(r.Context())
	created, err := s.deps.Complaints.Create(r.Context(), user, complaint.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordComplaintFiled()
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateComplaintRequest struct {
	Status string `json:"status"`
}

// handleUpdateComplaintStatus moves a complaint through its lifecycle.
// Only the landlord the complaint was filed against may do this.
func (s *Server) handleUpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	var req updateComplaintRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	user := currentUser(r.Context())
	updated, err := s.deps.Complaints.UpdateStatus(r.Context(), user, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
