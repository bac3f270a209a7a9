// Package headers lints an HTTP response header block against a fixed
// set of security-header rules: HSTS, X-Content-Type-Options,
// X-Frame-Options, Referrer-Policy, Permissions-Policy, and
// Content-Security-Policy, with additional checks on the CSP value
// itself when one is present.
//
// Findings are plain strings with no severity ranking; each rule
// contributes at most one finding and the rules are independent of each
// other (except the frame-ancestors check, which also looks at
// X-Frame-Options). A clean header block yields a single informational
// entry rather than an empty list.
package headers
