package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugKeep reports whether a rune may appear in the intermediate slug
// text. Whitespace and hyphens survive this pass because they are folded
// into separator hyphens afterwards.
func slugKeep(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || unicode.IsSpace(r)
}

// stripDiacritics decomposes the input (NFD) and removes combining marks,
// so "Héllo Wörld" becomes "Hello World".
//
// Design decision: We use golang.org/x/text transforms rather than a
// hand-written replacement table because the transform chain handles the
// full Unicode combining-mark category, not just Latin-1 accents.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts free text into a URL-safe slug: lowercase ASCII
// letters, digits, and single hyphens only, with diacritics removed and
// "&" spelled out as "and".
//
// The result never starts or ends with a hyphen and never contains a
// run of consecutive hyphens. Empty or fully-stripped input yields an
// empty string; callers decide how to present that.
func Slugify(input string) string {
	s, _, err := transform.String(stripDiacritics, input)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; malformed
		// bytes fall back to the raw input and are filtered below.
		s = input
	}

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if slugKeep(r) {
			b.WriteRune(r)
		}
	}

	// Collapse whitespace runs to single hyphens, then collapse any
	// hyphen runs introduced by characters that were already hyphens.
	parts := strings.FieldsFunc(b.String(), unicode.IsSpace)
	s = strings.Join(parts, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// quoteReplacer maps typographic quote variants to their ASCII forms.
var quoteReplacer = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9 quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"‟", `"`, // double high-reversed-9 quotation mark
)

// StraightenQuotes replaces curly single and double quote variants with
// plain ASCII quotes. All other characters pass through unchanged.
func StraightenQuotes(input string) string {
	return quoteReplacer.Replace(input)
}

// emojiRanges covers the Emoji_Presentation and Extended_Pictographic
// characters, enumerated from the UTS #51 emoji-data ranges. The table
// is kept by hand because the standard library does not ship the Emoji
// properties. Extended_Pictographic deliberately includes legacy
// symbols such as the copyright sign and trademark sign; they carry
// emoji presentation in most renderers and are stripped with the rest.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00A9, Stride: 1}, // copyright sign
		{Lo: 0x00AE, Hi: 0x00AE, Stride: 1}, // registered sign
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero width joiner (emoji sequences)
		{Lo: 0x203C, Hi: 0x203C, Stride: 1}, // double exclamation mark
		{Lo: 0x2049, Hi: 0x2049, Stride: 1}, // exclamation question mark
		{Lo: 0x20E3, Hi: 0x20E3, Stride: 1}, // combining enclosing keycap
		{Lo: 0x2122, Hi: 0x2122, Stride: 1}, // trade mark sign
		{Lo: 0x2139, Hi: 0x2139, Stride: 1}, // information source
		{Lo: 0x2194, Hi: 0x2199, Stride: 1}, // arrows
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1}, // hooked arrows
		{Lo: 0x231A, Hi: 0x231B, Stride: 1}, // watch, hourglass
		{Lo: 0x2328, Hi: 0x2328, Stride: 1}, // keyboard
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1}, // eject symbol
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1}, // media controls, clocks
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1}, // pause, stop, record
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1}, // circled latin capital m
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1}, // small squares
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1}, // play button
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1}, // reverse button
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1}, // medium squares
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols and dingbats
		{Lo: 0x2934, Hi: 0x2935, Stride: 1}, // curved arrows
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // misc symbols and arrows
		{Lo: 0x3030, Hi: 0x3030, Stride: 1}, // wavy dash
		{Lo: 0x303D, Hi: 0x303D, Stride: 1}, // part alternation mark
		{Lo: 0x3297, Hi: 0x3297, Stride: 1}, // circled congratulations
		{Lo: 0x3299, Hi: 0x3299, Stride: 1}, // circled secret
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F2FF, Stride: 1}, // mahjong, playing cards, enclosed supplements
		{Lo: 0x1F300, Hi: 0x1F8FF, Stride: 1}, // pictographs through supplemental arrows
		{Lo: 0x1F900, Hi: 0x1FAFF, Stride: 1}, // supplemental symbols, extended pictographs
	},
}

// StripEmoji removes emoji and pictographic symbols from the input,
// including variation selectors and the zero-width joiners that glue
// multi-part emoji together.
func StripEmoji(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(emojiRanges, r) {
			return -1
		}
		return r
	}, input)
}

// CollapseSpaces replaces every whitespace run (spaces, tabs, newlines)
// with a single space and trims leading and trailing whitespace.
func CollapseSpaces(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// EscapeQuotes replaces double quotes with the HTML entity form so the
// value can be embedded inside a double-quoted attribute.
func EscapeQuotes(input string) string {
	return strings.ReplaceAll(input, `"`, "&quot;")
}
