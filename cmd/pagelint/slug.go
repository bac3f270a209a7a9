package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pagelint/pagelint/internal/textutil"
	"github.com/spf13/cobra"
)

// NewSlugCmd creates the slug command.
func NewSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Generate a URL-safe slug from a title",
		Long: `Slug converts a page title into a URL-safe slug.

Accented characters are transliterated to their ASCII base forms,
punctuation is dropped, and word runs are joined with single hyphens.

Examples:
  # Generate a slug from a title
  pagelint slug "Hello, World!"

  # Titles with accents are transliterated
  pagelint slug "Crème Brûlée Recipes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := textutil.Slugify(strings.Join(args, " "))
			if slug == "" {
				return errors.New("input contains no usable characters")
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}
