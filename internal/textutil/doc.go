// Package textutil provides pure text normalization helpers for content
// authoring: slug generation, quote straightening, emoji stripping, and
// whitespace collapsing.
//
// All functions in this package are total: they never fail and never
// perform I/O, so they are safe to call concurrently without coordination.
package textutil
