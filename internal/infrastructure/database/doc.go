// Package database manages the SQLite connection for Rentdesk Core.
//
// It provides:
//   - Connection lifecycle (Open, HealthCheck, Close)
//   - WAL mode and busy-timeout configuration
//   - Embedded schema migrations applied at startup
//
// The connection is an explicit resource: acquired once in main, health-checked,
// and injected into repositories. Packages never reach for a global handle.
//
// SQLite serialises writes, so the pool is capped at a single connection.
// Repositories keep transactions short; the only multi-statement transaction
// in the system is the account-deletion cascade.
package database
