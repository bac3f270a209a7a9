package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewCleanCmd tests the clean command.
func TestNewCleanCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all transformations by default",
			args: []string{"“Hello”   World \U0001F389"},
			want: `"Hello" World`,
		},
		{
			name: "quotes only",
			args: []string{"--quotes", "‘it’s’"},
			want: `'it's'`,
		},
		{
			name: "spaces only",
			args: []string{"--spaces", "  a \t b  "},
			want: "a b",
		},
		{
			name: "emoji only keeps spacing",
			args: []string{"--emoji", "done ✅ now"},
			want: "done  now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			cmd := NewCleanCmd()
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSuffix(buf.String(), "\n"); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
