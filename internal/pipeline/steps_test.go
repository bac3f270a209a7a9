package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pagelint/pagelint/internal/model"
)

func runStep(t *testing.T, step Step) *model.AuditReport {
	t.Helper()
	report := model.NewAuditReport("example.com")
	if err := step.Do(context.Background(), report); err != nil {
		t.Fatalf("%s step failed: %v", step.Name(), err)
	}
	return report
}

func findingTypes(report *model.AuditReport) []string {
	types := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		types = append(types, f.Type)
	}
	return types
}

// TestSEOStep tests title and description length findings.
func TestSEOStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          string
		expectedTypes []string
	}{
		{
			name: "good lengths",
			page: `<html><head>` +
				`<title>A perfectly reasonable page title for search results here</title>` +
				`<meta name="description" content="This description is long enough to fill the preferred band in search results, with enough words to land comfortably between the lower and upper bounds of it.">` +
				`</head></html>`,
			expectedTypes: []string{},
		},
		{
			name:          "short title and missing description",
			page:          `<html><head><title>Hi</title></head></html>`,
			expectedTypes: []string{"title_length", "description_length"},
		},
		{
			name:          "empty page skips",
			page:          "",
			expectedTypes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			step := NewSEOStep(&Input{Page: tt.page}, slog.Default())
			report := runStep(t, step)

			types := findingTypes(report)
			if len(types) != len(tt.expectedTypes) {
				t.Fatalf("findings = %v, expected %v", types, tt.expectedTypes)
			}
			for i, typ := range tt.expectedTypes {
				if types[i] != typ {
					t.Errorf("finding[%d] = %q, expected %q", i, types[i], typ)
				}
			}
		})
	}
}

// TestSocialStep tests missing social tag detection.
func TestSocialStep(t *testing.T) {
	t.Parallel()

	step := NewSocialStep(&Input{Page: `<html><head><title>x</title></head></html>`}, slog.Default())
	report := runStep(t, step)

	if len(report.Findings) != 1 || report.Findings[0].Type != "social_tags_missing" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
	if report.Findings[0].Detail != "og:title, og:description, twitter:card" {
		t.Errorf("detail = %q", report.Findings[0].Detail)
	}

	complete := `<head><meta property="og:title" content="a"><meta property="og:description" content="b"><meta name="twitter:card" content="summary"></head>`
	report = runStep(t, NewSocialStep(&Input{Page: complete}, slog.Default()))
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings for complete tags, got %v", findingTypes(report))
	}
}

// TestRobotsStep tests crawlability findings.
func TestRobotsStep(t *testing.T) {
	t.Parallel()

	robotsTxt := "User-agent: *\nDisallow: /admin"

	report := runStep(t, NewRobotsStep(&Input{RobotsTxt: robotsTxt, RobotsPath: "/admin/users"}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "robots_blocked" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
	if report.Findings[0].Severity != model.SeverityHigh {
		t.Errorf("blocked severity = %v", report.Findings[0].Severity)
	}

	report = runStep(t, NewRobotsStep(&Input{RobotsTxt: robotsTxt, RobotsPath: "/blog"}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "robots_allowed" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
}

// TestSitemapStep tests duplicate and parse-error findings.
func TestSitemapStep(t *testing.T) {
	t.Parallel()

	dupSitemap := `<urlset><url><loc>https://a.com/x</loc></url><url><loc>https://a.com/x</loc></url></urlset>`
	report := runStep(t, NewSitemapStep(&Input{Sitemap: dupSitemap}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "sitemap_duplicate" {
		t.Fatalf("findings = %v", findingTypes(report))
	}

	report = runStep(t, NewSitemapStep(&Input{Sitemap: "<urlset><url>"}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "sitemap_invalid" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
}

// TestHeadersStep tests header lint findings and the clean marker.
func TestHeadersStep(t *testing.T) {
	t.Parallel()

	report := runStep(t, NewHeadersStep(&Input{Headers: "Server: nginx"}, slog.Default()))
	if len(report.Findings) == 0 {
		t.Fatal("expected issues for bare header set")
	}
	for _, f := range report.Findings {
		if f.Type != "header_issue" {
			t.Errorf("unexpected finding type %q", f.Type)
		}
	}

	clean := `Strict-Transport-Security: max-age=63072000
X-Content-Type-Options: nosniff
X-Frame-Options: DENY
Referrer-Policy: no-referrer
Permissions-Policy: camera=()
Content-Security-Policy: default-src 'self'; object-src 'none'; base-uri 'none'; frame-ancestors 'none'; upgrade-insecure-requests`
	report = runStep(t, NewHeadersStep(&Input{Headers: clean}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "headers_clean" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
}

// TestJSONLDStep tests structured data findings.
func TestJSONLDStep(t *testing.T) {
	t.Parallel()

	report := runStep(t, NewJSONLDStep(&Input{JSONLD: `{"@context":"https://schema.org","@type":"Article"}`}, slog.Default()))
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings for valid JSON-LD, got %v", findingTypes(report))
	}

	report = runStep(t, NewJSONLDStep(&Input{JSONLD: `{"@type":"Article"}`}, slog.Default()))
	if len(report.Findings) != 1 || report.Findings[0].Type != "jsonld_invalid" {
		t.Fatalf("findings = %v", findingTypes(report))
	}
}

// TestContrastStep tests AA and AAA threshold findings.
func TestContrastStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		fg, bg        string
		expectedTypes []string
	}{
		{name: "black on white passes both", fg: "#000000", bg: "#ffffff", expectedTypes: []string{}},
		{name: "light gray on white fails AA", fg: "#cccccc", bg: "#ffffff", expectedTypes: []string{"contrast_fail_aa"}},
		{name: "mid gray passes AA fails AAA", fg: "#6c6c6c", bg: "#ffffff", expectedTypes: []string{"contrast_fail_aaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			step := NewContrastStep(&Input{Foreground: tt.fg, Background: tt.bg}, slog.Default())
			report := runStep(t, step)

			types := findingTypes(report)
			if len(types) != len(tt.expectedTypes) {
				t.Fatalf("findings = %v, expected %v", types, tt.expectedTypes)
			}
			for i, typ := range tt.expectedTypes {
				if types[i] != typ {
					t.Errorf("finding[%d] = %q, expected %q", i, types[i], typ)
				}
			}
		})
	}
}

// TestImageMetaStepSkips tests the no-images path.
func TestImageMetaStepSkips(t *testing.T) {
	t.Parallel()

	report := runStep(t, NewImageMetaStep(&Input{}, slog.Default()))
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings without images, got %v", findingTypes(report))
	}

	// Garbage bytes carry no EXIF and so produce no findings.
	report = runStep(t, NewImageMetaStep(&Input{Images: map[string][]byte{"a.jpg": []byte("junk")}}, slog.Default()))
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings for non-EXIF bytes, got %v", findingTypes(report))
	}
}
