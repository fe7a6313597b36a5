// Package roster turns raw spreadsheet name exports boxed in arbitrary
// column layouts into a deterministic roster of students with stable
// tracking ids.
//
// Normalization is pure text transformation; id assignment is positional
// over a stable sort, so the same input always produces the same roster.
package roster
