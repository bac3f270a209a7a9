package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pagelint/pagelint/internal/config"
	"github.com/pagelint/pagelint/internal/contrast"
	"github.com/pagelint/pagelint/internal/headers"
	"github.com/pagelint/pagelint/internal/htmlmeta"
	"github.com/pagelint/pagelint/internal/imagemeta"
	"github.com/pagelint/pagelint/internal/model"
	"github.com/pagelint/pagelint/internal/robots"
	"github.com/pagelint/pagelint/internal/seo"
	"github.com/pagelint/pagelint/internal/sitemap"
	"github.com/pagelint/pagelint/internal/structured"
)

// Input bundles the documents an audit inspects. Fields left empty
// cause the corresponding checks to be skipped; the pipeline never
// fetches anything over the network.
type Input struct {
	// Page is the HTML source of the page under audit.
	Page string

	// RobotsTxt is the site's robots.txt content.
	RobotsTxt string

	// RobotsPath is the URL path whose crawlability is evaluated
	// against RobotsTxt. Defaults to "/" when empty.
	RobotsPath string

	// Sitemap is the sitemap.xml content.
	Sitemap string

	// Headers is a pasted set of HTTP response headers, one per line.
	Headers string

	// JSONLD is a JSON-LD snippet to validate.
	JSONLD string

	// Foreground and Background are hex colors for the contrast check.
	Foreground string
	Background string

	// LargeText evaluates contrast against the relaxed large-text
	// thresholds.
	LargeText bool

	// Images maps file names to raw image bytes for EXIF inspection.
	Images map[string][]byte
}

// pageMeta parses the page HTML once per step invocation.
// Parsing is cheap relative to clarity, so steps do not share state.
func (in *Input) pageMeta() (*htmlmeta.PageMeta, error) {
	return htmlmeta.Extract(strings.NewReader(in.Page))
}

// SEOStep checks the page title and meta description lengths against
// search result display limits.
type SEOStep struct {
	input  *Input
	logger *slog.Logger
}

// NewSEOStep creates a new SEO length check.
func NewSEOStep(input *Input, logger *slog.Logger) *SEOStep {
	return &SEOStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *SEOStep) Name() string { return "seo" }

// Do executes the SEO length check.
func (s *SEOStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.Page == "" {
		s.logger.Debug("skipping seo check, no page provided")
		return nil
	}

	meta, err := s.input.pageMeta()
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	title := seo.Classify(meta.Title, seo.BandTitle)
	if title.Status != seo.LengthGood {
		report.AddFinding(model.NewFinding("title_length", s.Name(),
			"Page title length is "+title.Status.String(),
			fmt.Sprintf("title is %d characters: %q", title.Length, meta.Title)))
	}

	desc := seo.Classify(meta.Description, seo.BandDescription)
	if desc.Status != seo.LengthGood {
		report.AddFinding(model.NewFinding("description_length", s.Name(),
			"Meta description length is "+desc.Status.String(),
			fmt.Sprintf("description is %d characters", desc.Length)))
	}

	return nil
}

// SocialStep checks that the page carries the social sharing tags
// link previews depend on.
type SocialStep struct {
	input  *Input
	logger *slog.Logger
}

// NewSocialStep creates a new social tag check.
func NewSocialStep(input *Input, logger *slog.Logger) *SocialStep {
	return &SocialStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *SocialStep) Name() string { return "social" }

// Do executes the social tag check.
func (s *SocialStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.Page == "" {
		s.logger.Debug("skipping social check, no page provided")
		return nil
	}

	meta, err := s.input.pageMeta()
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	if missing := meta.MissingSocialTags(); len(missing) > 0 {
		report.AddFinding(model.NewFinding("social_tags_missing", s.Name(),
			"Missing social sharing tags",
			strings.Join(missing, ", ")))
	}

	return nil
}

// RobotsStep evaluates whether the audited path is crawlable under
// the site's robots.txt.
type RobotsStep struct {
	input  *Input
	logger *slog.Logger
}

// NewRobotsStep creates a new robots.txt check.
func NewRobotsStep(input *Input, logger *slog.Logger) *RobotsStep {
	return &RobotsStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *RobotsStep) Name() string { return "robots" }

// Do executes the robots.txt check.
func (s *RobotsStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.RobotsTxt == "" {
		s.logger.Debug("skipping robots check, no robots.txt provided")
		return nil
	}

	path := s.input.RobotsPath
	if path == "" {
		path = "/"
	}

	if robots.IsAllowed(s.input.RobotsTxt, path) {
		report.AddFinding(model.NewFinding("robots_allowed", s.Name(),
			"Path is crawlable", path))
	} else {
		report.AddFinding(model.NewFinding("robots_blocked", s.Name(),
			"Path is blocked for crawlers", path))
	}

	return nil
}

// SitemapStep checks the sitemap for parse errors and duplicate
// location entries.
type SitemapStep struct {
	input  *Input
	logger *slog.Logger
}

// NewSitemapStep creates a new sitemap check.
func NewSitemapStep(input *Input, logger *slog.Logger) *SitemapStep {
	return &SitemapStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *SitemapStep) Name() string { return "sitemap" }

// Do executes the sitemap check.
func (s *SitemapStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.Sitemap == "" {
		s.logger.Debug("skipping sitemap check, no sitemap provided")
		return nil
	}

	result, err := sitemap.Validate(s.input.Sitemap)
	if err != nil {
		report.AddFinding(model.NewFinding("sitemap_invalid", s.Name(),
			"Sitemap failed to parse", err.Error()))
		return nil
	}

	for _, dup := range result.Duplicates {
		report.AddFinding(model.NewFinding("sitemap_duplicate", s.Name(),
			"Duplicate sitemap location", dup))
	}

	return nil
}

// HeadersStep lints a pasted set of HTTP response headers against
// common security header guidance.
type HeadersStep struct {
	input  *Input
	logger *slog.Logger
}

// NewHeadersStep creates a new security header check.
func NewHeadersStep(input *Input, logger *slog.Logger) *HeadersStep {
	return &HeadersStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *HeadersStep) Name() string { return "headers" }

// Do executes the security header check.
func (s *HeadersStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.Headers == "" {
		s.logger.Debug("skipping headers check, no headers provided")
		return nil
	}

	issues := headers.Lint(s.input.Headers)
	if len(issues) == 1 && issues[0] == headers.NoIssues {
		report.AddFinding(model.NewFinding("headers_clean", s.Name(),
			headers.NoIssues, ""))
		return nil
	}

	for _, issue := range issues {
		report.AddFinding(model.NewFinding("header_issue", s.Name(), issue, ""))
	}

	return nil
}

// JSONLDStep validates a JSON-LD structured data snippet.
type JSONLDStep struct {
	input  *Input
	logger *slog.Logger
}

// NewJSONLDStep creates a new structured data check.
func NewJSONLDStep(input *Input, logger *slog.Logger) *JSONLDStep {
	return &JSONLDStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *JSONLDStep) Name() string { return "jsonld" }

// Do executes the structured data check.
func (s *JSONLDStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.JSONLD == "" {
		s.logger.Debug("skipping jsonld check, no snippet provided")
		return nil
	}

	result := structured.Validate(s.input.JSONLD)
	if !result.Valid {
		report.AddFinding(model.NewFinding("jsonld_invalid", s.Name(),
			"Structured data is invalid", result.Error))
	}

	return nil
}

// ContrastStep checks the configured color pair against WCAG contrast
// thresholds.
type ContrastStep struct {
	input  *Input
	logger *slog.Logger
}

// NewContrastStep creates a new contrast check.
func NewContrastStep(input *Input, logger *slog.Logger) *ContrastStep {
	return &ContrastStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *ContrastStep) Name() string { return "contrast" }

// Do executes the contrast check.
func (s *ContrastStep) Do(_ context.Context, report *model.AuditReport) error {
	if s.input.Foreground == "" || s.input.Background == "" {
		s.logger.Debug("skipping contrast check, colors not configured")
		return nil
	}

	result := contrast.Check(s.input.Foreground, s.input.Background, s.input.LargeText)
	detail := fmt.Sprintf("%s on %s = %.2f:1", s.input.Foreground, s.input.Background, result.Ratio)

	switch {
	case !result.PassesAA:
		report.AddFinding(model.NewFinding("contrast_fail_aa", s.Name(),
			"Color pair fails WCAG AA", detail))
	case !result.PassesAAA:
		report.AddFinding(model.NewFinding("contrast_fail_aaa", s.Name(),
			"Color pair passes AA but fails AAA", detail))
	}

	return nil
}

// ImageMetaStep inspects provided images for privacy-sensitive EXIF
// metadata.
type ImageMetaStep struct {
	input  *Input
	logger *slog.Logger
}

// NewImageMetaStep creates a new image metadata check.
func NewImageMetaStep(input *Input, logger *slog.Logger) *ImageMetaStep {
	return &ImageMetaStep{input: input, logger: logger}
}

// Name returns the check name.
func (s *ImageMetaStep) Name() string { return "imagemeta" }

// Do executes the image metadata check.
func (s *ImageMetaStep) Do(ctx context.Context, report *model.AuditReport) error {
	if len(s.input.Images) == 0 {
		s.logger.Debug("skipping imagemeta check, no images provided")
		return nil
	}

	// Deterministic iteration so report output is stable.
	names := make([]string, 0, len(s.input.Images))
	for name := range s.input.Images {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, f := range imagemeta.Inspect(s.input.Images[name], name) {
			report.AddFinding(f)
		}
	}

	return nil
}

// DefaultPipeline creates a pipeline with the requested checks in
// their canonical order.
//
// Design decision: We provide a default pipeline because:
// 1. Most users want all checks
// 2. Reduces boilerplate in the CLI
// 3. Ensures consistent ordering
func DefaultPipeline(input *Input, checks []string, opts ...Option) *Pipeline {
	p := New(opts...)

	if len(checks) == 0 {
		checks = config.KnownChecks
	}

	all := []Step{
		NewSEOStep(input, p.logger),
		NewSocialStep(input, p.logger),
		NewRobotsStep(input, p.logger),
		NewSitemapStep(input, p.logger),
		NewHeadersStep(input, p.logger),
		NewJSONLDStep(input, p.logger),
		NewContrastStep(input, p.logger),
		NewImageMetaStep(input, p.logger),
	}
	for _, step := range all {
		if slices.Contains(checks, step.Name()) {
			p.AddStep(step)
		}
	}

	return p
}
