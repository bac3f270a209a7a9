package main

import (
	"fmt"

	"github.com/pagelint/pagelint/internal/contrast"
	"github.com/spf13/cobra"
)

// NewContrastCmd creates the contrast command.
func NewContrastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check WCAG contrast between two colors",
		Long: `Contrast computes the WCAG contrast ratio between a foreground and a
background color and reports whether the pair meets levels AA and AAA.

Colors are six-digit hex values with or without the leading #; anything
else is treated as black. Normal text requires 4.5:1 for AA and 7:1 for
AAA; large text (18pt+, or 14pt+ bold) requires 3:1 and 4.5:1.

Examples:
  # Check body text colors
  pagelint contrast "#333333" "#ffffff"

  # Check a heading with the relaxed large-text thresholds
  pagelint contrast --large-text "#767676" "#ffffff"`,
		Args: cobra.ExactArgs(2),
		RunE: runContrastCmd,
	}

	cmd.Flags().Bool("large-text", false, "Use the relaxed thresholds for large text")

	return cmd
}

// runContrastCmd executes the contrast command.
func runContrastCmd(cmd *cobra.Command, args []string) error {
	largeText, err := cmd.Flags().GetBool("large-text")
	if err != nil {
		return err
	}

	result := contrast.Check(args[0], args[1], largeText)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Contrast ratio: %.2f:1\n", result.Ratio)
	fmt.Fprintf(out, "  WCAG AA:  %s\n", passFail(result.PassesAA))
	fmt.Fprintf(out, "  WCAG AAA: %s\n", passFail(result.PassesAAA))

	if !result.PassesAA {
		return fmt.Errorf("colors do not meet WCAG AA (%.2f:1)", result.Ratio)
	}
	return nil
}

// passFail formats a boolean check result for display.
func passFail(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
