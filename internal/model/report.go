package model

import "time"

// Finding represents a single issue reported by a diagnostic check.
type Finding struct {
	// Type is the finding type identifier.
	// This maps to the findingInfoMapping in severity.go.
	Type string `json:"type"`

	// Check names the diagnostic that produced the finding
	// (robots, sitemap, headers, contrast, jsonld, seo, imagemeta).
	Check string `json:"check"`

	// Severity is the attention level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Detail carries the specific value behind the finding, e.g. the
	// offending header line, duplicate URL, or contrast ratio.
	Detail string `json:"detail,omitempty"`

	// Impact explains why this finding matters.
	Impact string `json:"impact,omitempty"`

	// Recommendation suggests how to address the finding.
	Recommendation string `json:"recommendation,omitempty"`
}

// NewFinding builds a Finding for a known type, filling severity,
// impact, and recommendation from the central mapping.
func NewFinding(findingType, check, title, detail string) Finding {
	info := GetFindingInfo(findingType)
	return Finding{
		Type:           findingType,
		Check:          check,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Title:          title,
		Detail:         detail,
		Impact:         info.Impact,
		Recommendation: info.Recommendation,
	}
}

// AuditReport is the aggregated result of one audit run over a site's
// content files.
//
// Design decision: We use a single struct with a flat findings list
// rather than per-check result types to simplify serialization,
// database storage, and report rendering. The per-check detail lives in
// each Finding's Detail field.
type AuditReport struct {
	// Site is the site name or URL the audit targeted.
	Site string `json:"site"`

	// DateAudited is the timestamp when the audit was performed.
	DateAudited time.Time `json:"date_audited"`

	// PerformedChecks lists the diagnostics that ran, in order.
	PerformedChecks []string `json:"performed_checks,omitempty"`

	// Findings contains all findings across every check.
	Findings []Finding `json:"findings,omitempty"`

	// TimedOut indicates the audit was cancelled before completing.
	TimedOut bool `json:"timed_out,omitempty"`

	// Error holds the first critical error, if the audit failed.
	// Excluded from JSON; ErrorMessage carries the text.
	Error error `json:"-"`

	// ErrorMessage is the serializable form of Error.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAuditReport creates an empty report for a site, stamped with the
// current time.
func NewAuditReport(site string) *AuditReport {
	return &AuditReport{
		Site:        site,
		DateAudited: time.Now().UTC(),
	}
}

// AddFinding appends a finding to the report.
func (r *AuditReport) AddFinding(f Finding) {
	r.Findings = append(r.Findings, f)
}

// TotalFindings returns the number of findings, informational entries
// included.
func (r *AuditReport) TotalFindings() int {
	return len(r.Findings)
}

// CountBySeverity returns how many findings carry the given severity.
func (r *AuditReport) CountBySeverity(s Severity) int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			count++
		}
	}
	return count
}

// HasActionableFindings reports whether any finding is above
// informational level.
func (r *AuditReport) HasActionableFindings() bool {
	for _, f := range r.Findings {
		if f.Severity > SeverityInfo {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity present, or SeverityInfo for
// an empty report.
func (r *AuditReport) MaxSeverity() Severity {
	maxSev := SeverityInfo
	for _, f := range r.Findings {
		if f.Severity > maxSev {
			maxSev = f.Severity
		}
	}
	return maxSev
}

// DiffFindings compares two reports of the same site and returns the
// findings that appeared since the older report and those that were
// resolved. Findings are matched by type plus detail, so two distinct
// duplicate-URL findings of the same type diff independently.
func DiffFindings(older, newer *AuditReport) (added, resolved []Finding) {
	key := func(f Finding) string { return f.Type + "\x00" + f.Detail }

	oldKeys := make(map[string]bool, len(older.Findings))
	for _, f := range older.Findings {
		oldKeys[key(f)] = true
	}
	newKeys := make(map[string]bool, len(newer.Findings))
	for _, f := range newer.Findings {
		newKeys[key(f)] = true
	}

	for _, f := range newer.Findings {
		if !oldKeys[key(f)] {
			added = append(added, f)
		}
	}
	for _, f := range older.Findings {
		if !newKeys[key(f)] {
			resolved = append(resolved, f)
		}
	}

	return added, resolved
}

// FindingsBySeverity returns the findings carrying the given severity,
// in report order.
func (r *AuditReport) FindingsBySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// FindingsByCheck returns the findings produced by one diagnostic, in
// report order.
func (r *AuditReport) FindingsByCheck(check string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}
