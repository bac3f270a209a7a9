// Package robots evaluates robots.txt-style crawl directives against a
// path. The evaluator intentionally implements the simplified semantics
// editors rely on when sanity-checking a directive file: only wildcard
// user-agent groups are considered, Disallow values match by plain
// prefix, and an empty Disallow anywhere means everything is allowed.
// It is a quick-check tool, not a full robots exclusion implementation.
package robots
