package seo

import (
	"strings"
	"testing"
)

// TestClassifyTitle tests title banding boundaries.
func TestClassifyTitle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected LengthCheck
	}{
		{"empty", "", LengthCheck{Length: 0, Status: LengthEmpty}},
		{"whitespace only", "   \t", LengthCheck{Length: 0, Status: LengthEmpty}},
		{"one char", "a", LengthCheck{Length: 1, Status: LengthShort}},
		{"short upper bound", strings.Repeat("a", 29), LengthCheck{Length: 29, Status: LengthShort}},
		{"good lower bound", strings.Repeat("a", 30), LengthCheck{Length: 30, Status: LengthGood}},
		{"typical good", strings.Repeat("a", 45), LengthCheck{Length: 45, Status: LengthGood}},
		{"good upper bound", strings.Repeat("a", 60), LengthCheck{Length: 60, Status: LengthGood}},
		{"long lower bound", strings.Repeat("a", 61), LengthCheck{Length: 61, Status: LengthLong}},
		{"typical long", strings.Repeat("a", 65), LengthCheck{Length: 65, Status: LengthLong}},
		{"long upper bound", strings.Repeat("a", 70), LengthCheck{Length: 70, Status: LengthLong}},
		{"too long", strings.Repeat("a", 71), LengthCheck{Length: 71, Status: LengthTooLong}},
		{"trims before measuring", "  " + strings.Repeat("a", 45) + "  ", LengthCheck{Length: 45, Status: LengthGood}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.text, BandTitle); got != tc.expected {
				t.Errorf("Classify(len %d, title) = %+v, expected %+v", len(tc.text), got, tc.expected)
			}
		})
	}
}

// TestClassifyDescription tests description banding boundaries.
func TestClassifyDescription(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		length   int
		expected LengthStatus
	}{
		{"short upper bound", 119, LengthShort},
		{"good lower bound", 120, LengthGood},
		{"good upper bound", 165, LengthGood},
		{"long lower bound", 166, LengthLong},
		{"long upper bound", 180, LengthLong},
		{"too long", 181, LengthTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(strings.Repeat("x", tc.length), BandDescription)
			if got.Length != tc.length || got.Status != tc.expected {
				t.Errorf("Classify(len %d, description) = %+v, expected status %v", tc.length, got, tc.expected)
			}
		})
	}
}

// TestClassifyCountsRunes verifies multibyte text is counted by rune.
func TestClassifyCountsRunes(t *testing.T) {
	t.Parallel()

	got := Classify(strings.Repeat("é", 45), BandTitle)
	if got.Length != 45 || got.Status != LengthGood {
		t.Errorf("expected 45 runes / good, got %+v", got)
	}
}

// TestLengthStatusString tests the String method of LengthStatus.
func TestLengthStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   LengthStatus
		expected string
	}{
		{LengthEmpty, "empty"},
		{LengthShort, "short"},
		{LengthGood, "good"},
		{LengthLong, "long"},
		{LengthTooLong, "too long"},
		{LengthStatus(99), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("got %q, expected %q", got, tc.expected)
		}
	}
}
