package htmlmeta

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PageMeta contains the metadata extracted from an HTML page.
//
// Design decision: We return a comprehensive result struct from a
// single parsing pass rather than multiple extraction methods because:
//  1. Single parsing pass is more efficient
//  2. Related data can be collected together
//  3. Caller can choose what to use
type PageMeta struct {
	// Title is the page title from the <title> tag.
	Title string

	// Description is the content of <meta name="description">.
	Description string

	// Canonical is the href of <link rel="canonical">, if present.
	Canonical string

	// Lang is the lang attribute of the <html> element.
	Lang string

	// MetaTags maps meta tag names (or OpenGraph properties) to content.
	MetaTags map[string]string

	// H1Count is the number of <h1> elements on the page.
	H1Count int

	// Images contains image sources found in <img> tags.
	Images []string
}

// Social tag names checked by HasSocialTags.
var requiredSocialTags = []string{"og:title", "og:description", "twitter:card"}

// Extract parses an HTML document and collects its metadata.
func Extract(content io.Reader) (*PageMeta, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	meta := &PageMeta{
		MetaTags: make(map[string]string),
		Images:   make([]string, 0),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			processElement(n, meta)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return meta, nil
}

// HasSocialTags reports whether the page carries the minimum set of
// social sharing tags (og:title, og:description, twitter:card).
// MissingSocialTags lists the absent ones.
func (m *PageMeta) HasSocialTags() bool {
	return len(m.MissingSocialTags()) == 0
}

// MissingSocialTags returns the social sharing tags the page lacks.
func (m *PageMeta) MissingSocialTags() []string {
	missing := make([]string, 0)
	for _, tag := range requiredSocialTags {
		if m.MetaTags[tag] == "" {
			missing = append(missing, tag)
		}
	}
	return missing
}

// processElement handles a single HTML element node.
func processElement(n *html.Node, meta *PageMeta) {
	switch n.Data {
	case "html":
		if lang := getAttr(n, "lang"); lang != "" {
			meta.Lang = lang
		}

	case "title":
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			meta.Title = strings.TrimSpace(n.FirstChild.Data)
		}

	case "h1":
		meta.H1Count++

	case "img":
		if src := getAttr(n, "src"); src != "" {
			meta.Images = append(meta.Images, src)
		}

	case "meta":
		name := getAttr(n, "name")
		if name == "" {
			name = getAttr(n, "property") // OpenGraph uses property
		}
		content := getAttr(n, "content")
		if name != "" && content != "" {
			meta.MetaTags[name] = content
			if name == "description" {
				meta.Description = content
			}
		}

	case "link":
		if getAttr(n, "rel") == "canonical" {
			if href := getAttr(n, "href"); href != "" {
				meta.Canonical = href
			}
		}
	}
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
