package config

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pagelint"

	// DefaultThemeColor is the theme-color meta value suggested alongside
	// generated icons when the site config does not specify one.
	DefaultThemeColor = "#ffffff"

	// DefaultForeground is the text color assumed for contrast checks
	// when the site config does not specify brand colors.
	DefaultForeground = "#000000"

	// DefaultBackground is the background color assumed for contrast checks.
	DefaultBackground = "#ffffff"
)

// KnownChecks lists the check names accepted by the audit pipeline.
// The order here is the order checks run in.
var KnownChecks = []string{
	"seo", "social", "robots", "sitemap", "headers", "jsonld", "contrast", "imagemeta",
}

// Config holds all configuration options for a pagelint run.
// It is populated from CLI flags and the .pagelint file and passed
// through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Site is the site identifier being audited (usually a domain).
	// It keys into the .pagelint site configurations and into the
	// history database.
	Site string

	// Checks is the list of check names to run. Empty means all of
	// KnownChecks. Names not in KnownChecks fail validation.
	Checks []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pagelint in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// SiteConfigs holds site-specific configurations loaded from the
	// config file. Populated by LoadConfigFile.
	SiteConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// DBDir is the directory path for storing the SQLite database.
	// When set, audit results are saved for historical comparison.
	// Defaults to the XDG data directory (~/.local/share/pagelint on Linux).
	DBDir string

	// SaveToDB indicates whether to save audit results to the database.
	// Automatically set to true when DBDir is configured.
	SaveToDB bool

	// LargeText evaluates contrast against the relaxed thresholds for
	// large text (18pt+, or 14pt+ bold).
	LargeText bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values so the defaults are documented in one place. Users can
// override specific values after creation.
func NewConfig() *Config {
	return &Config{
		Checks: slices.Clone(KnownChecks),
	}
}

// Validate checks the configuration for inconsistencies.
// It returns the first error found, or nil if the configuration is valid.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	for _, check := range c.Checks {
		if !slices.Contains(KnownChecks, check) {
			return ErrUnknownCheck
		}
	}
	return nil
}

// SiteConfig returns the merged configuration for the configured site,
// or a zero SiteConfig when no config file was loaded.
func (c *Config) SiteConfig() SiteConfig {
	if c.SiteConfigs == nil {
		return SiteConfig{}
	}
	return c.SiteConfigs.GetSiteConfig(c.Site)
}

// XDGDataDir returns the XDG data directory for pagelint.
// On Linux: ~/.local/share/pagelint
// On macOS: ~/Library/Application Support/pagelint
// On Windows: %LOCALAPPDATA%\pagelint
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
