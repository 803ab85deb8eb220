// Package diagnostic provides structured errors, warnings and notes
// produced when a type graph is checked for hydration.
//
// Key capabilities:
//   - Unsupported field type errors
//   - Self-referential type cycle reports
//   - Notes for fields excluded from hydration
package diagnostic
