package config

// SiteConfig holds site-specific configuration for a single site.
// This allows customizing check behavior per site in a multi-site CMS.
type SiteConfig struct {
	// BaseURL is the canonical base URL of the site (e.g.
	// "https://example.com"). Used for social snippet og:url values
	// and as the default base for tracked links.
	BaseURL string `yaml:"baseUrl,omitempty"`

	// ThemeColor is the theme-color meta value suggested alongside
	// generated icons. Falls back to DefaultThemeColor when empty.
	ThemeColor string `yaml:"themeColor,omitempty"`

	// Foreground is the brand text color used for contrast checks.
	Foreground string `yaml:"foreground,omitempty"`

	// Background is the brand background color used for contrast checks.
	Background string `yaml:"background,omitempty"`

	// LargeText evaluates contrast against the relaxed large-text
	// thresholds for this site.
	LargeText bool `yaml:"largeText,omitempty"`

	// UTMSource is the default utm_source for tracked links.
	UTMSource string `yaml:"utmSource,omitempty"`

	// UTMMedium is the default utm_medium for tracked links.
	UTMMedium string `yaml:"utmMedium,omitempty"`

	// UTMCampaign is the default utm_campaign for tracked links.
	UTMCampaign string `yaml:"utmCampaign,omitempty"`

	// SkipChecks are check names to exclude when auditing this site.
	SkipChecks []string `yaml:"skipChecks,omitempty"`
}

// File represents the structure of the .pagelint configuration file.
type File struct {
	// Sites maps site identifiers (usually domains) to their
	// site-specific configurations.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains default site configuration applied to all sites
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the configuration for a specific site.
// It merges the site-specific configuration with defaults.
func (cf *File) GetSiteConfig(site string) SiteConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with site-specific configuration if present
	if siteConfig, ok := cf.Sites[site]; ok {
		if siteConfig.BaseURL != "" {
			result.BaseURL = siteConfig.BaseURL
		}
		if siteConfig.ThemeColor != "" {
			result.ThemeColor = siteConfig.ThemeColor
		}
		if siteConfig.Foreground != "" {
			result.Foreground = siteConfig.Foreground
		}
		if siteConfig.Background != "" {
			result.Background = siteConfig.Background
		}
		if siteConfig.LargeText {
			result.LargeText = true
		}
		if siteConfig.UTMSource != "" {
			result.UTMSource = siteConfig.UTMSource
		}
		if siteConfig.UTMMedium != "" {
			result.UTMMedium = siteConfig.UTMMedium
		}
		if siteConfig.UTMCampaign != "" {
			result.UTMCampaign = siteConfig.UTMCampaign
		}
		if len(siteConfig.SkipChecks) > 0 {
			result.SkipChecks = siteConfig.SkipChecks
		}
	}

	return result
}
