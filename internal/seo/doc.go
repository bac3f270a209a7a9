// Package seo provides search-preview scoring and social metadata
// generation for page titles and meta descriptions.
//
// The length classifier bands a text by character count against the
// ranges search engines typically display. The snippet builder emits the
// ordered Open Graph and Twitter Card fields a page head should carry.
// Both are pure functions over their inputs.
package seo
