package main

import (
	"context"
	"fmt"

	"github.com/pagelint/pagelint/internal/config"
	"github.com/pagelint/pagelint/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [site]",
		Short: "Show saved audit history",
		Long: `History lists audit records saved by previous 'pagelint audit' runs.

Without a site argument all audited sites are listed. With a site
argument the audit records for that site are shown newest first, with
the ID usable in 'pagelint compare --with-audit-id'.

Examples:
  # List all audited sites
  pagelint history

  # Show audit history for one site
  pagelint history example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}
}

// runHistoryCmd executes the history command.
func runHistoryCmd(_ *cobra.Command, args []string) error {
	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if len(args) == 0 {
		return listAuditedSites(ctx, db)
	}
	return listAuditHistory(ctx, db, args[0])
}
