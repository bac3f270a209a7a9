// Package structured validates and formats JSON-LD structured data
// payloads. Validation checks that the payload parses and carries the
// @context and @type keys that make a linked-data block meaningful to
// search engines; formatting re-serializes with stable two-space
// indentation for a "prettify" action.
package structured
