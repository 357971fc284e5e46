// Package export writes generated schedules to files and writers.
//
// A schedule file is the CSV grid (one row per date, one column per place),
// a blank line, and one summary line per person:
//
//	date,Place A,Place B
//	2025-01-01,Alice Maier,Charlie Doe
//	...
//
//	Alice Maier, total: 35, Mon: 17, Wed: 18, different_place: 0
package export
