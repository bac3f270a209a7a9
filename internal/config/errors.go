package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownCheck is returned when Checks contains a name that is
	// not one of KnownChecks.
	ErrUnknownCheck = errors.New("unknown check name: see --help for the list of checks")

	// ErrNoInput is returned when a command that requires input text
	// (a page, headers, a sitemap) receives none.
	ErrNoInput = errors.New("no input specified: provide at least one input document flag")
)
