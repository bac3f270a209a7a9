package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pagelint/pagelint/internal/seo"
	"github.com/spf13/cobra"
)

// NewSnippetCmd creates the snippet command.
func NewSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Generate Open Graph and Twitter Card meta tags",
		Long: `Snippet produces the social preview meta tags for a page.

The output is a block of HTML meta tags ready to paste into the page
head. Open Graph fields use the property attribute; Twitter fields use
the name attribute. The twitter:card type is chosen automatically:
summary_large_image when an image URL is given, summary otherwise.

Examples:
  # Minimal snippet
  pagelint snippet --title "Launch Day" --description "Our new product is live."

  # Full snippet with URL and preview image
  pagelint snippet --title "Launch Day" --description "Our new product is live." \
    --url https://example.com/launch --image https://example.com/launch.png`,
		RunE: runSnippetCmd,
	}

	cmd.Flags().StringP("title", "t", "", "Page title")
	cmd.Flags().StringP("description", "d", "", "Page description")
	cmd.Flags().StringP("url", "u", "", "Canonical page URL")
	cmd.Flags().StringP("image", "i", "", "Preview image URL")

	return cmd
}

// runSnippetCmd executes the snippet command.
func runSnippetCmd(cmd *cobra.Command, _ []string) error {
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return err
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		return err
	}
	siteURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}
	imageURL, err := cmd.Flags().GetString("image")
	if err != nil {
		return err
	}

	if title == "" && description == "" {
		return errors.New("at least one of --title or --description is required")
	}

	out := cmd.OutOrStdout()
	for _, tag := range seo.BuildSocialSnippet(title, description, siteURL, imageURL) {
		fmt.Fprintln(out, renderMetaTag(tag))
	}

	// Search-result style preview of how the page will render.
	fmt.Fprintln(out, "\nPreview:")
	if domain := seo.DisplayDomain(siteURL); domain != "" {
		fmt.Fprintf(out, "  %s\n", domain)
	}
	if title != "" {
		fmt.Fprintf(out, "  %s\n", title)
	}
	if description != "" {
		fmt.Fprintf(out, "  %s\n", description)
	}
	return nil
}

// renderMetaTag formats a social metadata field as an HTML meta tag.
// Open Graph properties use the property attribute; Twitter fields use
// the name attribute.
func renderMetaTag(tag seo.MetaTag) string {
	attr := "name"
	if strings.HasPrefix(tag.Key, "og:") {
		attr = "property"
	}
	return fmt.Sprintf(`<meta %s="%s" content="%s">`, attr, tag.Key, tag.Value)
}
