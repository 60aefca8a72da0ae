// Package api provides the HTTP surface for rentdesk.
//
// The server exposes registration, login, profile management, a user
// directory, and complaint endpoints under /api/v1, plus /health and
// /metrics at the root. All routes past the credential endpoints sit
// behind an identity middleware that resolves the Authorization header
// to a live user on every request.
package api
