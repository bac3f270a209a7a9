package utm

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidBaseURL is returned when the base URL cannot be parsed as an
// absolute URL. Relative paths and bare words are rejected because a
// campaign link must be shareable as-is.
var ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute URL")

// Params holds the standard UTM campaign parameters. Empty fields are
// omitted from the built URL.
type Params struct {
	// Source identifies the traffic source, e.g. "newsletter".
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Medium identifies the marketing medium, e.g. "email".
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty"`

	// Campaign names the specific campaign, e.g. "spring-sale".
	Campaign string `json:"campaign,omitempty" yaml:"campaign,omitempty"`

	// Term carries paid-search keywords.
	Term string `json:"term,omitempty" yaml:"term,omitempty"`

	// Content differentiates ads or links that point to the same URL.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// IsZero reports whether no parameter is set.
func (p Params) IsZero() bool {
	return p == Params{}
}

// BuildTrackedURL parses base as an absolute URL and sets the non-empty
// UTM parameters on its query string. Existing query keys of the same
// name are overwritten, not appended, so rebuilding a link is
// idempotent. Values are trimmed before being set.
//
// The returned URL has its query re-encoded in sorted key order, which
// is the canonical form produced by net/url.
func BuildTrackedURL(base string, params Params) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", ErrInvalidBaseURL
	}

	q := u.Query()
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			q.Set(key, value)
		}
	}
	set("utm_source", params.Source)
	set("utm_medium", params.Medium)
	set("utm_campaign", params.Campaign)
	set("utm_term", params.Term)
	set("utm_content", params.Content)

	u.RawQuery = q.Encode()
	return u.String(), nil
}
