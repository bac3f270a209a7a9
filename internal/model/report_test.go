package model

import (
	"encoding/json"
	"testing"
)

// TestNewFinding tests that constructor fills metadata from the mapping.
func TestNewFinding(t *testing.T) {
	t.Parallel()

	f := NewFinding("sitemap_duplicate", "sitemap", "Duplicate location", "https://a.com/x")

	if f.Severity != SeverityMedium || f.SeverityText != "MEDIUM" {
		t.Errorf("severity not filled: %+v", f)
	}
	if f.Impact == "" || f.Recommendation == "" {
		t.Errorf("impact/recommendation not filled: %+v", f)
	}
	if f.Check != "sitemap" || f.Detail != "https://a.com/x" {
		t.Errorf("fields not preserved: %+v", f)
	}
}

// TestAuditReportSummaries tests counting and max severity helpers.
func TestAuditReportSummaries(t *testing.T) {
	t.Parallel()

	r := NewAuditReport("example.com")
	if r.TotalFindings() != 0 || r.HasActionableFindings() || r.MaxSeverity() != SeverityInfo {
		t.Errorf("empty report summaries wrong: %+v", r)
	}

	r.AddFinding(NewFinding("headers_clean", "headers", "No major issues detected.", ""))
	if r.HasActionableFindings() {
		t.Error("info-only report should not be actionable")
	}

	r.AddFinding(NewFinding("header_issue", "headers", "Missing X-Frame-Options header.", ""))
	r.AddFinding(NewFinding("robots_blocked", "robots", "Path disallowed", "/admin"))

	if r.TotalFindings() != 3 {
		t.Errorf("TotalFindings = %d, expected 3", r.TotalFindings())
	}
	if got := r.CountBySeverity(SeverityMedium); got != 1 {
		t.Errorf("CountBySeverity(medium) = %d, expected 1", got)
	}
	if r.MaxSeverity() != SeverityHigh {
		t.Errorf("MaxSeverity = %v, expected HIGH", r.MaxSeverity())
	}
	if !r.HasActionableFindings() {
		t.Error("report with medium/high findings should be actionable")
	}

	byCheck := r.FindingsByCheck("headers")
	if len(byCheck) != 2 {
		t.Errorf("FindingsByCheck(headers) = %d findings, expected 2", len(byCheck))
	}
}

// TestDiffFindings tests comparing two audit runs.
func TestDiffFindings(t *testing.T) {
	t.Parallel()

	older := NewAuditReport("example.com")
	older.AddFinding(NewFinding("header_issue", "headers", "Missing X-Frame-Options header.", ""))
	older.AddFinding(NewFinding("sitemap_duplicate", "sitemap", "Duplicate sitemap location", "https://a.com/x"))

	newer := NewAuditReport("example.com")
	newer.AddFinding(NewFinding("header_issue", "headers", "Missing X-Frame-Options header.", ""))
	newer.AddFinding(NewFinding("robots_blocked", "robots", "Path is blocked for crawlers", "/pricing"))

	added, resolved := DiffFindings(older, newer)

	if len(added) != 1 || added[0].Type != "robots_blocked" {
		t.Errorf("added = %+v", added)
	}
	if len(resolved) != 1 || resolved[0].Type != "sitemap_duplicate" {
		t.Errorf("resolved = %+v", resolved)
	}

	// Identical reports diff to nothing.
	added, resolved = DiffFindings(newer, newer)
	if len(added) != 0 || len(resolved) != 0 {
		t.Errorf("self-diff should be empty: added=%v resolved=%v", added, resolved)
	}
}

// TestAuditReportJSONRoundTrip tests that reports survive serialization
// for database storage.
func TestAuditReportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	r := NewAuditReport("example.com")
	r.PerformedChecks = []string{"headers", "robots"}
	r.AddFinding(NewFinding("robots_blocked", "robots", "Path disallowed", "/admin"))

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored AuditReport
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Site != r.Site || len(restored.Findings) != 1 {
		t.Errorf("round trip lost data: %+v", restored)
	}
	if restored.Findings[0].Type != "robots_blocked" {
		t.Errorf("finding type lost: %+v", restored.Findings[0])
	}
}
