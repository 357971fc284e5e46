// Package types provides core type definitions and interfaces for the duty-roster library.
//
// This package contains shared types that are used across multiple packages.
// Keeping them here lets the ledger, export and internal packages depend on
// them without importing the root roster package.
//
// Key types:
//   - Rule, Rules: Ranking and filtering vocabulary
//   - SortKey: Lexicographic rank key
//   - Date, Weekday: Civil calendar values with text encodings
//   - Slot, Assignment: Roster cells and who fills them
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
