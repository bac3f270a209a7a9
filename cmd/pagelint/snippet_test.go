package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pagelint/pagelint/internal/seo"
)

// TestNewSnippetCmd tests the snippet command.
func TestNewSnippetCmd(t *testing.T) {
	t.Parallel()

	t.Run("generates full snippet with image", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewSnippetCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{
			"--title", "Launch Day",
			"--description", "Our new product is live.",
			"--url", "https://example.com/launch",
			"--image", "https://example.com/launch.png",
		})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			`<meta property="og:title" content="Launch Day">`,
			`<meta property="og:image" content="https://example.com/launch.png">`,
			`<meta name="twitter:card" content="summary_large_image">`,
			"Preview:",
			"  example.com",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
	})

	t.Run("uses summary card without image", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewSnippetCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--title", "Launch Day", "--description", "Details inside."})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, `<meta name="twitter:card" content="summary">`) {
			t.Errorf("expected summary card, got %q", output)
		}
		if strings.Contains(output, "og:image") {
			t.Errorf("expected no og:image tag, got %q", output)
		}
	})

	t.Run("escapes double quotes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewSnippetCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--title", `The "Big" Launch`})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "The &quot;Big&quot; Launch") {
			t.Errorf("expected escaped quotes, got %q", buf.String())
		}
	})

	t.Run("requires title or description", func(t *testing.T) {
		t.Parallel()

		cmd := NewSnippetCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error when neither title nor description is given")
		}
	})
}

// TestRenderMetaTag tests attribute selection for meta tags.
func TestRenderMetaTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  seo.MetaTag
		want string
	}{
		{
			name: "open graph uses property",
			tag:  seo.MetaTag{Key: "og:title", Value: "Title"},
			want: `<meta property="og:title" content="Title">`,
		},
		{
			name: "twitter uses name",
			tag:  seo.MetaTag{Key: "twitter:card", Value: "summary"},
			want: `<meta name="twitter:card" content="summary">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := renderMetaTag(tt.tag); got != tt.want {
				t.Errorf("renderMetaTag() = %q, want %q", got, tt.want)
			}
		})
	}
}
