package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerMasksSensitiveKeys tests masking by attribute key.
func TestSecureHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "authorization header", key: "authorization", value: "Bearer abc123"},
		{name: "cookie header", key: "Cookie", value: "session=xyz"},
		{name: "api key", key: "x-api-key", value: "k-12345"},
		{name: "password field", key: "password", value: "hunter2"},
		{name: "keyword substring", key: "db_password", value: "hunter2"},
		{name: "session id", key: "session_id", value: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, tt.value)

			out := buf.String()
			if strings.Contains(out, tt.value) {
				t.Errorf("sensitive value leaked into log output: %s", out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("mask value not found in output: %s", out)
			}
		})
	}
}

// TestSecureHandlerMasksSensitiveValues tests masking by value pattern
// regardless of the attribute key.
func TestSecureHandlerMasksSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "jwt", value: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc"},
		{name: "bearer token", value: "Bearer sometoken"},
		{name: "basic auth", value: "Basic dXNlcjpwYXNz"},
		{name: "long api key", value: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", "header_value", tt.value)

			if strings.Contains(buf.String(), tt.value) {
				t.Errorf("sensitive value leaked: %s", buf.String())
			}
		})
	}
}

// TestSecureHandlerPreservesNormalAttrs tests that ordinary attributes
// pass through unchanged.
func TestSecureHandlerPreservesNormalAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("audit started", "site", "example.com", "checks", 7)

	out := buf.String()
	if !strings.Contains(out, "example.com") {
		t.Errorf("normal attribute missing from output: %s", out)
	}
	if !strings.Contains(out, "checks=7") {
		t.Errorf("numeric attribute missing from output: %s", out)
	}
}

// TestSecureHandlerMasksGroupAttrs tests recursion into groups.
func TestSecureHandlerMasksGroupAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", slog.Group("request", "url", "https://a.com", "cookie", "session=xyz"))

	out := buf.String()
	if strings.Contains(out, "session=xyz") {
		t.Errorf("grouped sensitive value leaked: %s", out)
	}
	if !strings.Contains(out, "https://a.com") {
		t.Errorf("grouped normal value missing: %s", out)
	}
}

// TestNewSecureLoggerLevels tests verbose toggling.
func TestNewSecureLoggerLevels(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	NewSecureLogger(&quiet, false).Debug("debug message")
	if quiet.Len() != 0 {
		t.Errorf("debug emitted in non-verbose mode: %s", quiet.String())
	}

	var verbose bytes.Buffer
	NewSecureLogger(&verbose, true).Debug("debug message")
	if !strings.Contains(verbose.String(), "debug message") {
		t.Errorf("debug missing in verbose mode: %s", verbose.String())
	}
}

// TestNewSecureJSONLogger tests JSON output with sanitization.
func TestNewSecureJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewSecureJSONLogger(&buf, true).Info("test", "token", "abc")

	out := buf.String()
	if !strings.Contains(out, `"msg":"test"`) {
		t.Errorf("JSON output malformed: %s", out)
	}
	if strings.Contains(out, `"abc"`) {
		t.Errorf("token value leaked: %s", out)
	}
}
