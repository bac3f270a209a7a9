package robots

import "testing"

// TestIsAllowed tests allow/deny evaluation against directive text.
func TestIsAllowed(t *testing.T) {
	t.Parallel()

	const directives = "User-agent: *\nDisallow: /admin"

	testCases := []struct {
		name       string
		directives string
		path       string
		allowed    bool
	}{
		{"denied under disallowed prefix", directives, "/admin/edit", false},
		{"denied exact match", directives, "/admin", false},
		{"allowed outside prefix", directives, "/about", true},
		{"prefix match is textual", directives, "/administrator", false},
		{"empty directives allow all", "", "/anything", true},
		{
			name:       "empty disallow allows everything",
			directives: "User-agent: *\nDisallow:",
			path:       "/admin/secret",
			allowed:    true,
		},
		{
			name:       "empty disallow wins over other rules",
			directives: "User-agent: *\nDisallow: /admin\nDisallow:",
			path:       "/admin/edit",
			allowed:    true,
		},
		{
			name:       "named agent group ignored",
			directives: "User-agent: badbot\nDisallow: /",
			path:       "/page",
			allowed:    true,
		},
		{
			name:       "named group closes wildcard group",
			directives: "User-agent: *\nDisallow: /private\nUser-agent: badbot\nDisallow: /public",
			path:       "/public/page",
			allowed:    true,
		},
		{
			name:       "wildcard group reopens after named group",
			directives: "User-agent: badbot\nDisallow: /a\nUser-agent: *\nDisallow: /b",
			path:       "/b/page",
			allowed:    false,
		},
		{
			name:       "comments and blank lines skipped",
			directives: "# site robots\n\nUser-agent: *\n# block admin\nDisallow: /admin\n",
			path:       "/admin",
			allowed:    false,
		},
		{
			name:       "keys are case insensitive",
			directives: "USER-AGENT: *\nDISALLOW: /x",
			path:       "/x/y",
			allowed:    false,
		},
		{
			name:       "lines without colon ignored",
			directives: "User-agent: *\nnot a directive\nDisallow: /y",
			path:       "/y",
			allowed:    false,
		},
		{
			name:       "crlf line endings",
			directives: "User-agent: *\r\nDisallow: /admin\r\n",
			path:       "/admin/panel",
			allowed:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsAllowed(tc.directives, tc.path); got != tc.allowed {
				t.Errorf("IsAllowed(%q, %q) = %v, expected %v", tc.directives, tc.path, got, tc.allowed)
			}
		})
	}
}

// TestParse tests rule collection order and duplicate handling.
func TestParse(t *testing.T) {
	t.Parallel()

	rs := Parse("User-agent: *\nDisallow: /a\nDisallow: /b\nDisallow: /a\n")

	expected := []string{"/a", "/b", "/a"}
	if len(rs.Disallow) != len(expected) {
		t.Fatalf("got %d rules, expected %d: %v", len(rs.Disallow), len(expected), rs.Disallow)
	}
	for i, want := range expected {
		if rs.Disallow[i] != want {
			t.Errorf("rule %d: got %q, expected %q", i, rs.Disallow[i], want)
		}
	}
}

// TestParseIgnoresDisallowOutsideGroup tests that disallow lines before
// any user-agent line contribute nothing.
func TestParseIgnoresDisallowOutsideGroup(t *testing.T) {
	t.Parallel()

	rs := Parse("Disallow: /early\nUser-agent: *\nDisallow: /late")
	if len(rs.Disallow) != 1 || rs.Disallow[0] != "/late" {
		t.Errorf("expected only /late to be collected, got %v", rs.Disallow)
	}
}
