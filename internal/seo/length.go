package seo

import (
	"strings"
	"unicode/utf8"
)

// Band selects which length ranges apply when classifying text.
type Band int

const (
	// BandTitle applies the title-tag ranges (sweet spot 30-60 characters).
	BandTitle Band = iota

	// BandDescription applies the meta-description ranges (sweet spot
	// 120-165 characters).
	BandDescription
)

// String returns a human-readable representation of the band.
func (b Band) String() string {
	switch b {
	case BandTitle:
		return "title"
	case BandDescription:
		return "description"
	default:
		return "unknown"
	}
}

// LengthStatus classifies a character count relative to its band.
type LengthStatus int

const (
	// LengthEmpty means no text was provided.
	LengthEmpty LengthStatus = iota

	// LengthShort means the text is below the recommended minimum.
	LengthShort

	// LengthGood means the text fits the recommended range.
	LengthGood

	// LengthLong means the text slightly exceeds the recommended range
	// and may be truncated in search results.
	LengthLong

	// LengthTooLong means the text will almost certainly be truncated.
	LengthTooLong
)

// String returns a human-readable representation of the status.
func (s LengthStatus) String() string {
	switch s {
	case LengthEmpty:
		return "empty"
	case LengthShort:
		return "short"
	case LengthGood:
		return "good"
	case LengthLong:
		return "long"
	case LengthTooLong:
		return "too long"
	default:
		return "unknown"
	}
}

// LengthCheck is the result of classifying a title or description.
type LengthCheck struct {
	// Length is the character count after trimming surrounding whitespace.
	Length int `json:"length"`

	// Status is the band classification for that length.
	Status LengthStatus `json:"status"`
}

// bandLimits holds the inclusive upper bounds for Short, Good, and Long.
// Anything above the Long bound is TooLong; zero is always Empty.
type bandLimits struct {
	short int
	good  int
	long  int
}

// The ranges mirror what search engines displayed at the time of
// writing: ~60 visible title characters and ~165 description characters
// before truncation.
var limits = map[Band]bandLimits{
	BandTitle:       {short: 29, good: 60, long: 70},
	BandDescription: {short: 119, good: 165, long: 180},
}

// Classify measures the trimmed text and bands it for the given use.
// Character counting is rune-based so multibyte text is not penalized.
// Unknown bands fall back to the title ranges.
func Classify(text string, band Band) LengthCheck {
	length := utf8.RuneCountInString(strings.TrimSpace(text))

	lim, ok := limits[band]
	if !ok {
		lim = limits[BandTitle]
	}

	check := LengthCheck{Length: length}
	switch {
	case length == 0:
		check.Status = LengthEmpty
	case length <= lim.short:
		check.Status = LengthShort
	case length <= lim.good:
		check.Status = LengthGood
	case length <= lim.long:
		check.Status = LengthLong
	default:
		check.Status = LengthTooLong
	}
	return check
}
