package seo

import (
	"net/url"

	"github.com/pagelint/pagelint/internal/textutil"
)

// MetaTag is a single social-preview metadata field. Tags are emitted in
// a fixed order so generated head snippets are stable across runs.
type MetaTag struct {
	// Key is the meta property or name, e.g. "og:title" or "twitter:card".
	Key string `json:"key"`

	// Value is the escaped content for that field.
	Value string `json:"value"`
}

// Card type values for the twitter:card field.
const (
	// CardSummary is the compact preview card used when no image is set.
	CardSummary = "summary"

	// CardSummaryLargeImage is the full-width preview card used when an
	// image URL is present.
	CardSummaryLargeImage = "summary_large_image"
)

// BuildSocialSnippet produces the ordered Open Graph and Twitter Card
// fields for a page. Optional fields (URL, image) are omitted when empty
// rather than emitted blank. Double quotes in every value are escaped so
// the tags can be pasted into double-quoted HTML attributes.
func BuildSocialSnippet(title, description, siteURL, imageURL string) []MetaTag {
	title = textutil.EscapeQuotes(title)
	description = textutil.EscapeQuotes(description)
	siteURL = textutil.EscapeQuotes(siteURL)
	imageURL = textutil.EscapeQuotes(imageURL)

	card := CardSummary
	if imageURL != "" {
		card = CardSummaryLargeImage
	}

	tags := []MetaTag{
		{Key: "og:title", Value: title},
		{Key: "og:description", Value: description},
	}
	if siteURL != "" {
		tags = append(tags, MetaTag{Key: "og:url", Value: siteURL})
	}
	if imageURL != "" {
		tags = append(tags, MetaTag{Key: "og:image", Value: imageURL})
	}

	// Twitter mirrors the Open Graph fields for clients that do not
	// read og: properties.
	tags = append(tags,
		MetaTag{Key: "twitter:card", Value: card},
		MetaTag{Key: "twitter:title", Value: title},
		MetaTag{Key: "twitter:description", Value: description},
	)
	if imageURL != "" {
		tags = append(tags, MetaTag{Key: "twitter:image", Value: imageURL})
	}
	return tags
}

// DisplayDomain extracts just the host from a page URL for preview
// display. Unparseable or host-less URLs degrade to an empty string;
// the preview simply shows no domain line in that case.
func DisplayDomain(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil {
		return ""
	}
	return u.Host
}
