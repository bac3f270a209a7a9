// Package main provides the entry point for the pagelint CLI.
//
// Pagelint is a diagnostics and generation toolkit for site content:
// it audits pages for SEO, accessibility, and metadata issues, and
// generates supporting assets such as slugs, tracked links, social
// snippets, and favicons.
//
// Usage:
//
//	pagelint audit --page index.html example.com
//	pagelint slug "Hello, World!"
//
// See --help for all available options.
package main

// main is the entry point for pagelint.
func main() {
	Execute()
}
