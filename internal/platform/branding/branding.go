// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name shown in CLI output and log prefixes.
const AppName = "Rollcall"
