package sitemap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyDocument is returned when the input contains no XML elements
// at all. A sitemap with zero <loc> entries is valid; a byte stream with
// no markup is not.
var ErrEmptyDocument = errors.New("empty document: no XML content found")

// Report summarizes the location entries found in a sitemap.
type Report struct {
	// LocationCount is the total number of <loc> entries, duplicates
	// included.
	LocationCount int `json:"location_count"`

	// Locations lists every <loc> value in document order.
	Locations []string `json:"locations,omitempty"`

	// Duplicates lists each repeated location once per repetition, in
	// the order the repeats were encountered. The first occurrence of a
	// value is not a duplicate.
	Duplicates []string `json:"duplicates,omitempty"`
}

// Validate parses xmlText as XML and extracts every <loc> element's
// text content in document order. Malformed XML fails with the
// decoder's parse error. Location values are deduplicated by exact
// string match; no URL normalization is applied.
func Validate(xmlText string) (*Report, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))

	report := &Report{}
	sawElement := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sitemap: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		if start.Name.Local != "loc" {
			continue
		}

		var loc string
		if err := decoder.DecodeElement(&loc, &start); err != nil {
			return nil, fmt.Errorf("parse sitemap: %w", err)
		}
		report.Locations = append(report.Locations, loc)
	}

	if !sawElement {
		return nil, ErrEmptyDocument
	}

	report.LocationCount = len(report.Locations)

	seen := make(map[string]bool, len(report.Locations))
	for _, loc := range report.Locations {
		if seen[loc] {
			report.Duplicates = append(report.Duplicates, loc)
			continue
		}
		seen[loc] = true
	}
	return report, nil
}
