package main

import (
	"fmt"
	"strings"

	"github.com/pagelint/pagelint/internal/textutil"
	"github.com/spf13/cobra"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <text>...",
		Short: "Sanitize pasted text for publishing",
		Long: `Clean normalizes text pasted from word processors and chat clients.

By default all transformations are applied. Pass one or more of
--quotes, --emoji, or --spaces to apply only those.

Transformations:
  --quotes  replace curly quotation marks with straight ASCII quotes
  --emoji   strip emoji and pictographic symbols
  --spaces  collapse whitespace runs into single spaces and trim

Examples:
  # Apply all transformations
  pagelint clean "“Smart” quotes   and  emoji 🎉"

  # Only straighten quotes
  pagelint clean --quotes "“Hello”"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCleanCmd,
	}

	cmd.Flags().Bool("quotes", false, "Replace curly quotes with straight ASCII quotes")
	cmd.Flags().Bool("emoji", false, "Strip emoji and pictographic symbols")
	cmd.Flags().Bool("spaces", false, "Collapse whitespace runs and trim")

	return cmd
}

// runCleanCmd executes the clean command.
func runCleanCmd(cmd *cobra.Command, args []string) error {
	quotes, err := cmd.Flags().GetBool("quotes")
	if err != nil {
		return err
	}
	emoji, err := cmd.Flags().GetBool("emoji")
	if err != nil {
		return err
	}
	spaces, err := cmd.Flags().GetBool("spaces")
	if err != nil {
		return err
	}

	// No selection means all transformations.
	if !quotes && !emoji && !spaces {
		quotes, emoji, spaces = true, true, true
	}

	text := strings.Join(args, " ")
	if quotes {
		text = textutil.StraightenQuotes(text)
	}
	if emoji {
		text = textutil.StripEmoji(text)
	}
	if spaces {
		text = textutil.CollapseSpaces(text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
