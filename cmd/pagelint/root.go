// Package main provides the entry point for the pagelint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pagelint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagelint",
		Short: "Diagnostics and generation toolkit for site content",
		Long: `Pagelint audits page content for SEO, accessibility, and metadata issues,
and generates supporting assets for publishing workflows.

The audit command runs checks over locally supplied documents (page HTML,
robots.txt, sitemap.xml, header dumps, JSON-LD) and reports findings by
severity. The generation commands produce slugs, tracked links, social
preview snippets, and favicon sets.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewSlugCmd())
	cmd.AddCommand(NewCleanCmd())
	cmd.AddCommand(NewLinkCmd())
	cmd.AddCommand(NewContrastCmd())
	cmd.AddCommand(NewSnippetCmd())
	cmd.AddCommand(NewIconsCmd())
	cmd.AddCommand(NewJSONLDCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
