package robots

import (
	"strings"
)

// RuleSet holds the Disallow values collected from wildcard user-agent
// groups, in the order they appeared. Duplicates are kept; an exact
// empty value is significant (it allows everything).
type RuleSet struct {
	// Disallow contains the collected Disallow values from wildcard
	// groups, in file order.
	Disallow []string
}

// Parse reads directive text line by line. Blank lines and lines
// starting with "#" are skipped. Each remaining line splits on the
// first ":" into a case-insensitive key and a trimmed value; lines
// without a ":" or with an unrecognized key are ignored.
//
// A "user-agent" line whose value is exactly "*" opens an applicable
// group; any other user-agent value closes it. "disallow" lines are
// collected only while inside an applicable group.
func Parse(directiveText string) RuleSet {
	var rs RuleSet
	applicable := false

	for line := range strings.Lines(directiveText) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "user-agent":
			applicable = value == "*"
		case "disallow":
			if applicable {
				rs.Disallow = append(rs.Disallow, value)
			}
		}
	}
	return rs
}

// IsAllowed reports whether the path is allowed by the rule set.
//
// An empty Disallow value anywhere allows every path: "Disallow:" with
// no value is the conventional way to open a site up, and it wins over
// any other rule in this simplified model. Otherwise the path is denied
// when any Disallow value is a prefix of it (plain prefix match, no
// pattern syntax).
func (rs RuleSet) IsAllowed(path string) bool {
	for _, d := range rs.Disallow {
		if d == "" {
			return true
		}
	}
	for _, d := range rs.Disallow {
		if strings.HasPrefix(path, d) {
			return false
		}
	}
	return true
}

// IsAllowed parses the directive text and evaluates the path in one
// call. See Parse and RuleSet.IsAllowed for the exact semantics.
func IsAllowed(directiveText, path string) bool {
	return Parse(directiveText).IsAllowed(path)
}
