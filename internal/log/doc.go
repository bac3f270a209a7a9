// Package log provides sanitized structured logging on top of log/slog.
//
// Audits routinely handle pasted response headers and tracked URLs,
// which can carry session cookies, API keys, and authorization tokens.
// The SecureHandler wrapper masks such values before they reach any
// log output, so verbose runs can be shared safely.
//
// Design decision: sanitization lives in a slog.Handler wrapper rather
// than a custom logger type because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Callers keep using plain *slog.Logger everywhere
package log
