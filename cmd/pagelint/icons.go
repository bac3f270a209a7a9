package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagelint/pagelint/internal/config"
	"github.com/pagelint/pagelint/internal/icon"
	"github.com/spf13/cobra"
)

// Output file names for the generated icon set.
const (
	favicon16Name  = "favicon-16x16.png"
	favicon32Name  = "favicon-32x32.png"
	appleTouchName = "apple-touch-icon.png"
)

// NewIconsCmd creates the icons command.
func NewIconsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons <image>",
		Short: "Generate favicon and touch icons from a source image",
		Long: `Icons renders the standard favicon set from one source image.

The source is center-cropped to a square, scaled to 16x16, 32x32, and
180x180, flattened onto a white background, and written as PNG files.
The matching link tags for the page head are printed afterwards; the
theme-color meta value comes from --theme-color, or from the site's
themeColor in the .pagelint configuration file.

Examples:
  # Generate icons in the current directory
  pagelint icons logo.png

  # Generate icons into a static assets directory
  pagelint icons logo.png -o public/icons

  # Use the brand theme color from the site configuration
  pagelint icons logo.png --site example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runIconsCmd,
	}

	cmd.Flags().StringP("output", "o", ".", "Directory to write the icon files into")
	cmd.Flags().String("theme-color", "", "Theme-color meta value for the link snippet")
	cmd.Flags().String("site", "", "Site section of the configuration file to read the theme color from")
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: .pagelint)")

	return cmd
}

// runIconsCmd executes the icons command.
func runIconsCmd(cmd *cobra.Command, args []string) error {
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	themeColor, err := resolveThemeColor(cmd)
	if err != nil {
		return err
	}

	src, err := os.Open(args[0]) //nolint:gosec // user-supplied input path
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer src.Close()

	set, err := icon.Generate(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{favicon16Name, set.Favicon16},
		{favicon32Name, set.Favicon32},
		{appleTouchName, set.AppleTouch},
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, f.data, 0600); err != nil {
			return fmt.Errorf("failed to write icon file: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s (%d bytes)\n", path, len(f.data))
	}

	fmt.Fprintln(out, "\nAdd these tags to the page head:")
	for _, line := range set.LinkSnippet(themeColor) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}

// resolveThemeColor picks the theme-color for the link snippet: the
// flag wins over the site configuration, which wins over the built-in
// default.
func resolveThemeColor(cmd *cobra.Command) (string, error) {
	themeColor, err := cmd.Flags().GetString("theme-color")
	if err != nil {
		return "", err
	}
	if themeColor != "" {
		return themeColor, nil
	}

	site, err := cmd.Flags().GetString("site")
	if err != nil {
		return "", err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", err
	}

	siteCfg, err := lookupSiteConfig(configPath, site)
	if err != nil {
		return "", err
	}
	return firstNonEmpty(siteCfg.ThemeColor, config.DefaultThemeColor), nil
}
