package textutil

import (
	"strings"
	"testing"
)

// TestSlugify tests slug generation from free text.
func TestSlugify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"diacritics and ampersand", "Héllo & Wörld!", "hello-and-world"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"existing hyphens", "already-slugged-text", "already-slugged-text"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"consecutive separators", "a  -  b", "a-b"},
		{"digits", "Top 10 Tips for 2025", "top-10-tips-for-2025"},
		{"ampersand spacing", "Salt&Pepper", "salt-and-pepper"},
		{"unicode beyond latin", "こんにちは world", "world"},
		{"uppercase accents", "CRÈME BRÛLÉE", "creme-brulee"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tc.input); got != tc.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestSlugifyInvariants verifies the structural guarantees that hold for
// every slug regardless of input.
func TestSlugifyInvariants(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World!",
		"---",
		"a & b & c",
		"Ünïcödé妖怪 mixed 123",
		"   spaced   out   ",
		"emoji 🎉 inside",
		strings.Repeat("x-", 100),
	}

	for _, input := range inputs {
		slug := Slugify(input)

		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Errorf("Slugify(%q) = %q: leading or trailing hyphen", input, slug)
		}
		if strings.Contains(slug, "--") {
			t.Errorf("Slugify(%q) = %q: consecutive hyphens", input, slug)
		}
		for _, r := range slug {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
				t.Errorf("Slugify(%q) = %q: invalid rune %q", input, slug, r)
			}
		}
	}
}

// TestStraightenQuotes tests curly quote replacement.
func TestStraightenQuotes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"curly doubles", "“hello”", `"hello"`},
		{"curly singles", "it’s ‘fine’", "it's 'fine'"},
		{"low-9 variants", "„quote‟ and ‚mark‛", `"quote" and 'mark'`},
		{"no quotes", "plain text", "plain text"},
		{"already straight", `"kept" and 'kept'`, `"kept" and 'kept'`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StraightenQuotes(tc.input); got != tc.expected {
				t.Errorf("StraightenQuotes(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestStripEmoji tests emoji removal.
func TestStripEmoji(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"emoticon", "launch 🚀 day", "launch  day"},
		{"face", "great 😀", "great "},
		{"misc symbol", "sunny ☀ weather", "sunny  weather"},
		{"keycap sequence", "press 1️⃣ now", "press 1 now"},
		{"zwj sequence", "team 👩‍💻 page", "team  page"},
		{"watch and clock", "meet at noon ⌚⏰", "meet at noon "},
		{"hourglass", "deadline ⏳ soon", "deadline  soon"},
		{"trademark and info", "Acme™ ℹ desk", "Acme  desk"},
		{"double exclamation", "wow‼⁉", "wow"},
		{"arrows", "go ↔ or ↩", "go  or "},
		{"geometric shapes", "▪ item ◾ done", " item  done"},
		{"copyright and registered", "© 2026 Acme®", " 2026 Acme"},
		{"no emoji", "plain text 123", "plain text 123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripEmoji(tc.input); got != tc.expected {
				t.Errorf("StripEmoji(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestCollapseSpaces tests whitespace normalization.
func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"internal runs", "a   b\t\tc", "a b c"},
		{"newlines", "line1\n\nline2", "line1 line2"},
		{"leading and trailing", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CollapseSpaces(tc.input); got != tc.expected {
				t.Errorf("CollapseSpaces(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestEscapeQuotes tests HTML attribute escaping.
func TestEscapeQuotes(t *testing.T) {
	t.Parallel()

	if got := EscapeQuotes(`say "hi"`); got != "say &quot;hi&quot;" {
		t.Errorf(`EscapeQuotes(%q) = %q, expected %q`, `say "hi"`, got, "say &quot;hi&quot;")
	}
	if got := EscapeQuotes("no quotes"); got != "no quotes" {
		t.Errorf("EscapeQuotes without quotes modified input: %q", got)
	}
}
