// Package id generates URL-safe identifiers for labeling import and
// scanner runs.
//
// Identifiers are UUIDv4 bytes encoded as base32 (RFC 4648) with no
// padding. The resulting strings are 26 characters long, lowercase, and
// safe for use in URLs and file paths.
package id
