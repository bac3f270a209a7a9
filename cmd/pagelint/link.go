package main

import (
	"fmt"

	"github.com/pagelint/pagelint/internal/config"
	"github.com/pagelint/pagelint/internal/utm"
	"github.com/spf13/cobra"
)

// NewLinkCmd creates the link command.
func NewLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link <base-url>",
		Aliases: []string{"utm"},
		Short:   "Build a campaign-tracked URL with UTM parameters",
		Long: `Link appends UTM campaign parameters to a base URL.

Empty parameters are omitted. Existing UTM parameters on the base URL
are overwritten, so rebuilding a link is idempotent. The site
configuration can supply default source, medium, and campaign values;
flags override them.

Examples:
  # Build a tracked link
  pagelint link https://example.com/launch --source newsletter --medium email --campaign spring-sale

  # Use UTM defaults from the .pagelint file for a site
  pagelint link https://example.com/launch --site example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runLinkCmd,
	}

	cmd.Flags().StringP("source", "s", "", "utm_source value (e.g. newsletter)")
	cmd.Flags().StringP("medium", "m", "", "utm_medium value (e.g. email)")
	cmd.Flags().String("campaign", "", "utm_campaign value (e.g. spring-sale)")
	cmd.Flags().String("term", "", "utm_term value for paid-search keywords")
	cmd.Flags().String("content", "", "utm_content value to differentiate links")
	cmd.Flags().String("site", "", "Site section of the .pagelint file supplying UTM defaults")
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: .pagelint)")

	return cmd
}

// runLinkCmd executes the link command.
func runLinkCmd(cmd *cobra.Command, args []string) error {
	params := utm.Params{}

	var err error
	if params.Source, err = cmd.Flags().GetString("source"); err != nil {
		return err
	}
	if params.Medium, err = cmd.Flags().GetString("medium"); err != nil {
		return err
	}
	if params.Campaign, err = cmd.Flags().GetString("campaign"); err != nil {
		return err
	}
	if params.Term, err = cmd.Flags().GetString("term"); err != nil {
		return err
	}
	if params.Content, err = cmd.Flags().GetString("content"); err != nil {
		return err
	}

	site, err := cmd.Flags().GetString("site")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	// Fill unset parameters from the site configuration.
	if site != "" {
		siteCfg, err := lookupSiteConfig(configPath, site)
		if err != nil {
			return err
		}
		if params.Source == "" {
			params.Source = siteCfg.UTMSource
		}
		if params.Medium == "" {
			params.Medium = siteCfg.UTMMedium
		}
		if params.Campaign == "" {
			params.Campaign = siteCfg.UTMCampaign
		}
	}

	tracked, err := utm.BuildTrackedURL(args[0], params)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tracked)
	return nil
}

// lookupSiteConfig loads the configuration file and returns the merged
// configuration for the named site.
func lookupSiteConfig(configPath, site string) (config.SiteConfig, error) {
	foundPath := config.FindConfigFile(configPath)
	if foundPath == "" {
		if configPath != "" {
			return config.SiteConfig{}, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
		}
		return config.SiteConfig{}, nil
	}

	siteConfigs, err := config.LoadConfigFile(foundPath)
	if err != nil {
		return config.SiteConfig{}, fmt.Errorf("failed to load configuration file: %w", err)
	}
	return siteConfigs.GetSiteConfig(site), nil
}
