package headers

import (
	"slices"
	"strings"
)

// HeaderSet is a parsed header block. Keys are lower-cased header names;
// values are trimmed. Later duplicates overwrite earlier ones, matching
// how a misconfigured server's last header usually wins in practice.
type HeaderSet map[string]string

// Parse reads a header block line by line. Each line containing a ":"
// contributes one header; lines without a ":" (status lines, blank
// lines, noise from copy-paste) are ignored.
func Parse(headerText string) HeaderSet {
	hs := make(HeaderSet)
	for line := range strings.Lines(headerText) {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		hs[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return hs
}

// Get returns the value for a header name (case-insensitive) and
// whether it was present.
func (hs HeaderSet) Get(name string) (string, bool) {
	v, ok := hs[strings.ToLower(name)]
	return v, ok
}

// NoIssues is the single informational entry returned when every rule
// passes. The linter never returns an empty list.
const NoIssues = "No major issues detected."

// Lint parses the header block and applies the fixed rule set. Each
// rule produces at most one finding; rule order is fixed so output is
// stable across runs.
func Lint(headerText string) []string {
	hs := Parse(headerText)
	var findings []string

	if _, ok := hs.Get("strict-transport-security"); !ok {
		findings = append(findings, "Missing Strict-Transport-Security header.")
	}

	if cto, ok := hs.Get("x-content-type-options"); !ok {
		findings = append(findings, "Missing X-Content-Type-Options header.")
	} else if !strings.EqualFold(cto, "nosniff") {
		findings = append(findings, "X-Content-Type-Options should be exactly 'nosniff'.")
	}

	_, hasFrameOptions := hs.Get("x-frame-options")
	if !hasFrameOptions {
		findings = append(findings, "Missing X-Frame-Options header.")
	}

	if _, ok := hs.Get("referrer-policy"); !ok {
		findings = append(findings, "Missing Referrer-Policy header.")
	}

	if _, ok := hs.Get("permissions-policy"); !ok {
		findings = append(findings, "Missing Permissions-Policy header.")
	}

	csp, hasCSP := hs.Get("content-security-policy")
	if !hasCSP {
		findings = append(findings, "Missing Content-Security-Policy header.")
	} else {
		findings = append(findings, lintCSP(csp, hasFrameOptions)...)
	}

	if len(findings) == 0 {
		return []string{NoIssues}
	}
	return findings
}

// cspDirectives splits a CSP value into directive name -> source list.
// The first occurrence of a directive wins, per the CSP specification.
func cspDirectives(csp string) map[string][]string {
	directives := make(map[string][]string)
	for _, part := range strings.Split(csp, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		name := strings.ToLower(fields[0])
		if _, ok := directives[name]; !ok {
			directives[name] = fields[1:]
		}
	}
	return directives
}

// lintCSP applies the CSP-specific rules. hasFrameOptions suppresses
// the frame-ancestors finding, since either mechanism prevents framing.
func lintCSP(csp string, hasFrameOptions bool) []string {
	var findings []string
	directives := cspDirectives(csp)

	if strings.Contains(csp, "unsafe-inline") {
		findings = append(findings, "CSP: allows 'unsafe-inline'.")
	}
	if strings.Contains(csp, "unsafe-eval") {
		findings = append(findings, "CSP: allows 'unsafe-eval'.")
	}
	if slices.Contains(directives["default-src"], "*") {
		findings = append(findings, "CSP: default-src allows any origin (*).")
	}
	if !slices.Contains(directives["object-src"], "'none'") {
		findings = append(findings, "CSP: missing object-src 'none'.")
	}
	if !slices.Contains(directives["base-uri"], "'none'") {
		findings = append(findings, "CSP: missing base-uri 'none'.")
	}
	if _, ok := directives["frame-ancestors"]; !ok && !hasFrameOptions {
		findings = append(findings, "CSP: missing frame-ancestors and no X-Frame-Options fallback.")
	}
	if _, ok := directives["upgrade-insecure-requests"]; !ok {
		findings = append(findings, "CSP: missing upgrade-insecure-requests.")
	}
	return findings
}
