// Package model defines the core data structures used throughout pagelint.
//
// This package contains the following main types:
//   - Severity: Attention level attached to findings
//   - Finding: One issue reported by a diagnostic check
//   - AuditReport: The aggregated result of one audit run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (pipeline, report, database) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
