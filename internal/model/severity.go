package model

// Severity represents the attention level of an audit finding.
// This allows sorting findings by how urgently an editor should act.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates informational findings with no direct impact.
	// Examples: a clean header block, a short-but-acceptable title.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues that are worth tidying.
	// Examples: editing-software EXIF tags, slightly long descriptions.
	SeverityLow

	// SeverityMedium indicates issues that measurably hurt how the page
	// is presented or ranked.
	// Examples: duplicate sitemap entries, failing AAA contrast,
	// missing social preview tags.
	SeverityMedium

	// SeverityHigh indicates issues that break discovery, accessibility,
	// or visitor privacy and should be fixed before publishing.
	// Examples: page blocked by robots directives, failing AA contrast,
	// GPS coordinates embedded in a published image.
	SeverityHigh
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// FindingInfo contains metadata about a finding type including severity,
// impact description, and remediation recommendation.
type FindingInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// findingInfoMapping maps finding types to their metadata.
// This centralized mapping ensures consistent assessment across checks.
//
// Design decision: We use a map rather than embedding severity in each
// diagnostic because:
// 1. It allows updating assessments without modifying the diagnostics
// 2. It provides a single source of truth for severity levels
// 3. It makes it easy to generate severity documentation
var findingInfoMapping = map[string]FindingInfo{
	// HIGH - broken discovery, accessibility, or privacy
	"robots_blocked": {
		Severity:       SeverityHigh,
		Impact:         "The page path is disallowed for all crawlers, so search engines will not index it.",
		Recommendation: "Remove or narrow the Disallow rule covering this path, or confirm the page should stay private.",
	},
	"contrast_fail_aa": {
		Severity:       SeverityHigh,
		Impact:         "The color pair fails WCAG AA, making text hard to read for low-vision visitors.",
		Recommendation: "Darken the foreground or lighten the background until the ratio reaches 4.5 (3.0 for large text).",
	},
	"exif_gps": {
		Severity:       SeverityHigh,
		Impact:         "The image embeds GPS coordinates revealing where the photo was taken.",
		Recommendation: "Strip EXIF metadata from images before publishing.",
	},
	"exif_serial": {
		Severity:       SeverityHigh,
		Impact:         "The image embeds a device serial number, a unique identifier that links photos together.",
		Recommendation: "Strip EXIF metadata from images before publishing.",
	},
	"exif_author": {
		Severity:       SeverityHigh,
		Impact:         "The image embeds author or copyright text that may identify the photographer.",
		Recommendation: "Review the author fields and strip them if they should not be public.",
	},
	"jsonld_invalid": {
		Severity:       SeverityHigh,
		Impact:         "The structured-data block is invalid, so search engines ignore it entirely.",
		Recommendation: "Fix the JSON-LD payload; it must parse and carry @context and @type.",
	},
	"sitemap_invalid": {
		Severity:       SeverityHigh,
		Impact:         "The sitemap is not well-formed XML and crawlers will discard it.",
		Recommendation: "Validate and correct the sitemap XML.",
	},

	// MEDIUM - degraded presentation or ranking
	"header_issue": {
		Severity:       SeverityMedium,
		Impact:         "A recommended security header is missing or misconfigured.",
		Recommendation: "Add or correct the reported header in the server configuration.",
	},
	"sitemap_duplicate": {
		Severity:       SeverityMedium,
		Impact:         "Duplicate location entries waste crawl budget and suggest generation bugs.",
		Recommendation: "Deduplicate the sitemap generator's output.",
	},
	"contrast_fail_aaa": {
		Severity:       SeverityMedium,
		Impact:         "The color pair passes AA but fails the stricter AAA threshold.",
		Recommendation: "Increase contrast if the text is body copy; AAA is optional for large text.",
	},
	"social_tags_missing": {
		Severity:       SeverityMedium,
		Impact:         "The page head lacks social preview tags, so shares fall back to bare links.",
		Recommendation: "Add the generated Open Graph and Twitter Card tags to the page head.",
	},
	"title_length": {
		Severity:       SeverityMedium,
		Impact:         "The title length is outside the range search engines display without truncation.",
		Recommendation: "Aim for 30-60 characters.",
	},
	"description_length": {
		Severity:       SeverityMedium,
		Impact:         "The meta description length is outside the range search engines display.",
		Recommendation: "Aim for 120-165 characters.",
	},
	"exif_camera": {
		Severity:       SeverityMedium,
		Impact:         "The image embeds camera make/model information.",
		Recommendation: "Strip EXIF metadata if device details should not be public.",
	},
	"exif_computer": {
		Severity:       SeverityMedium,
		Impact:         "The image embeds the name of the computer used to process it.",
		Recommendation: "Strip EXIF metadata before publishing.",
	},

	// LOW - worth tidying
	"exif_software": {
		Severity:       SeverityLow,
		Impact:         "The image reveals the editing software used.",
		Recommendation: "Strip EXIF metadata if tooling details should not be public.",
	},
	"exif_datetime": {
		Severity:       SeverityLow,
		Impact:         "The image embeds capture timestamps that can reveal timezone and habits.",
		Recommendation: "Strip EXIF timestamps if they should not be public.",
	},

	// INFO - nothing to act on
	"headers_clean": {
		Severity:       SeverityInfo,
		Impact:         "The header block passed every lint rule.",
		Recommendation: "",
	},
	"robots_allowed": {
		Severity:       SeverityInfo,
		Impact:         "The page path is allowed by the crawl directives.",
		Recommendation: "",
	},
}

// GetSeverity returns the severity for a finding type.
// Unknown types default to SeverityInfo.
func GetSeverity(findingType string) Severity {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info.Severity
	}
	return SeverityInfo
}

// GetFindingInfo returns the full metadata for a finding type.
// Unknown types return a zero FindingInfo with SeverityInfo.
func GetFindingInfo(findingType string) FindingInfo {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info
	}
	return FindingInfo{Severity: SeverityInfo}
}
