// Package htmlmeta extracts SEO-relevant metadata from HTML documents:
// the title, meta description, canonical URL, Open Graph and Twitter
// card tags, heading counts, and image references.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML common in CMS output
//  2. Provides a proper DOM-like structure
//  3. More maintainable than complex regex patterns
package htmlmeta
