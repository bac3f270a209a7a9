package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an sRGB color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Black is the fallback color for unparseable input.
var Black = Color{}

// ParseHex parses a 6-hex-digit color such as "#1a2b3c" or "1A2B3C".
// A leading "#" is optional and surrounding whitespace is ignored.
// Anything that is not exactly six hex digits yields black; color input
// feeds a live preview and must never hard-fail.
func ParseHex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}
}

// Hex returns the "#rrggbb" form of the color.
func (c Color) Hex() string {
	to255 := func(ch float64) int {
		return int(math.Round(ch * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}

// linearize converts a gamma-encoded sRGB channel to linear light,
// per the WCAG 2.x relative luminance definition.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of the color,
// in [0, 1] where 0 is black and 1 is white.
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Ratio computes the WCAG contrast ratio between two colors. The result
// is in [1, 21] and is symmetric: argument order does not matter.
func Ratio(fg, bg Color) float64 {
	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Result reports how a contrast ratio measures against WCAG levels.
type Result struct {
	// Ratio is the computed contrast ratio, always >= 1.
	Ratio float64 `json:"ratio"`

	// PassesAA reports whether the ratio meets WCAG level AA.
	PassesAA bool `json:"passes_aa"`

	// PassesAAA reports whether the ratio meets WCAG level AAA.
	PassesAAA bool `json:"passes_aaa"`
}

// WCAG minimum contrast thresholds. Large text (18pt regular or 14pt
// bold and up) gets relaxed minimums.
const (
	aaNormal  = 4.5
	aaLarge   = 3.0
	aaaNormal = 7.0
	aaaLarge  = 4.5
)

// Classify applies the AA/AAA thresholds to a contrast ratio.
func Classify(ratio float64, largeText bool) Result {
	aa, aaa := aaNormal, aaaNormal
	if largeText {
		aa, aaa = aaLarge, aaaLarge
	}
	return Result{
		Ratio:     ratio,
		PassesAA:  ratio >= aa,
		PassesAAA: ratio >= aaa,
	}
}

// Check is the one-call form: parse both colors, compute the ratio, and
// classify it. Malformed colors degrade to black per ParseHex.
func Check(fgHex, bgHex string, largeText bool) Result {
	return Classify(Ratio(ParseHex(fgHex), ParseHex(bgHex)), largeText)
}
