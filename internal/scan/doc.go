// Package scan implements the interactive attendance loop: normalizing
// scanner input, recording scans to the store and the daily CSV, and
// keeping the short on-screen history.
package scan
