package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestImage writes a small solid-color PNG and returns its path.
func writeTestImage(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 100, B: 200, A: 255})
		}
	}

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

// TestNewIconsCmd tests the icons command.
func TestNewIconsCmd(t *testing.T) {
	t.Parallel()

	t.Run("generates icon files and link tags", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		srcPath := writeTestImage(t, tmpDir)
		outDir := filepath.Join(tmpDir, "icons")

		var buf bytes.Buffer
		cmd := NewIconsCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{srcPath, "-o", outDir})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, name := range []string{favicon16Name, favicon32Name, appleTouchName} {
			path := filepath.Join(outDir, name)
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("expected %s to exist: %v", name, err)
			}
			if info.Size() == 0 {
				t.Errorf("expected %s to be non-empty", name)
			}
		}

		output := buf.String()
		if !strings.Contains(output, `rel="apple-touch-icon"`) {
			t.Errorf("expected apple-touch-icon link tag, got %q", output)
		}
		if !strings.Contains(output, "theme-color") {
			t.Errorf("expected theme-color meta tag, got %q", output)
		}
	})

	t.Run("theme-color flag sets the meta tag", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		srcPath := writeTestImage(t, tmpDir)

		var buf bytes.Buffer
		cmd := NewIconsCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{srcPath, "-o", tmpDir, "--theme-color", "#0a192f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `<meta name="theme-color" content="#0a192f">`) {
			t.Errorf("expected custom theme-color meta tag, got %q", buf.String())
		}
	})

	t.Run("theme color comes from the site configuration", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		srcPath := writeTestImage(t, tmpDir)

		cfgPath := filepath.Join(tmpDir, ".pagelint")
		cfgData := "sites:\n" +
			"  example.com:\n" +
			"    themeColor: \"#663399\"\n"
		if err := os.WriteFile(cfgPath, []byte(cfgData), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		var buf bytes.Buffer
		cmd := NewIconsCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{srcPath, "-o", tmpDir, "-c", cfgPath, "--site", "example.com"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `<meta name="theme-color" content="#663399">`) {
			t.Errorf("expected configured theme-color meta tag, got %q", buf.String())
		}
	})

	t.Run("fails on missing source image", func(t *testing.T) {
		t.Parallel()

		cmd := NewIconsCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.png")})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing source image")
		}
	})

	t.Run("fails on non-image source", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		srcPath := filepath.Join(tmpDir, "notimage.png")
		if err := os.WriteFile(srcPath, []byte("not an image"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		cmd := NewIconsCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{srcPath, "-o", tmpDir})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for non-image source")
		}
	})
}
