// Package storage defines the persistence interfaces for rollcall.
//
// It provides a high-level abstraction for storing the imported student
// roster, the append-only scan log, and the audit trail of operational
// events. Implementations of these interfaces (e.g., using SQLite) can be
// found in subpackages.
//
// # Error Types
//
// The package defines common error types used across storage implementations:
//   - ErrNotFound: Indicates a requested record is missing.
//   - ErrTrackingIDConflict: Indicates an append would reuse tracking ids
//     already present in the roster.
package storage
