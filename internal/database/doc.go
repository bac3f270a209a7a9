// Package database provides SQLite-based persistence for audit reports.
//
// Reports are stored as JSON blobs keyed by site and timestamp, which
// keeps the schema stable while the report structure evolves. A small
// metadata column carries severity counts so history listings don't
// need to deserialize full reports.
//
// Design decision: We use modernc.org/sqlite (pure Go) rather than
// mattn/go-sqlite3 to avoid cgo, which simplifies cross-compilation of
// the CLI binary.
package database
