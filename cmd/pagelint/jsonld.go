package main

import (
	"fmt"
	"os"

	"github.com/pagelint/pagelint/internal/structured"
	"github.com/spf13/cobra"
)

// NewJSONLDCmd creates the jsonld command.
func NewJSONLDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonld <file>",
		Short: "Validate a JSON-LD structured data snippet",
		Long: `JSONLD checks that a JSON-LD snippet parses and declares the @context
and @type fields search engines require.

On success the detected schema type is printed. With --format the
snippet is also re-emitted with consistent indentation.

Examples:
  # Validate a snippet
  pagelint jsonld article.json

  # Validate and pretty-print
  pagelint jsonld --format article.json`,
		Args: cobra.ExactArgs(1),
		RunE: runJSONLDCmd,
	}

	cmd.Flags().BoolP("format", "f", false, "Pretty-print the snippet after validation")

	return cmd
}

// runJSONLDCmd executes the jsonld command.
func runJSONLDCmd(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetBool("format")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // user-supplied input path
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result := structured.Validate(string(data))
	if !result.Valid {
		return fmt.Errorf("invalid JSON-LD: %s", result.Error)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Valid JSON-LD (@type: %s)\n", result.TypeLabel)

	if format {
		formatted, err := structured.Format(string(data))
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, formatted)
	}
	return nil
}
