// Package auth provides authentication and authorisation identity for
// Rentdesk Core.
//
// It implements the credential subsystem of the rental-issue tracker:
//   - Argon2id password hashing (PHC string format, constant-time verify)
//   - Stateless JWT identity tokens (HS256, 7-day expiry)
//   - Registration with landlord invite codes: tenants register under an
//     existing landlord's code; landlords receive a generated code
//   - Bearer-token resolution that always re-fetches the live user record
//
// Roles form a closed two-value set (tenant, landlord). Authorisation
// checks switch exhaustively over it; unknown roles deny. Tenants carry a
// RelatedUser binding to exactly one landlord, fixed at registration.
package auth
