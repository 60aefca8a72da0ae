package api

import (
	"net/http"

	"github.com/rentdesk/rentdesk-core/internal/auth"
)

// handleUserDirectory lists name and email for users of the requested
// role. An unknown role yields an empty list rather than an error.
func (s *Server) handleUserDirectory(w http.ResponseWriter, r *http.Request) {
	role := auth.Role(r.URL.Query().Get("role"))

	entries, err := s.deps.Auth.Directory(r.Context(), role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []auth.DirectoryEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
