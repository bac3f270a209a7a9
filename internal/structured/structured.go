package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Result reports whether a JSON-LD payload is usable structured data.
// Invalid payloads carry the reason in Error; valid payloads carry the
// resolved type label.
type Result struct {
	// Valid reports whether the payload parsed and carried the
	// required linked-data keys.
	Valid bool `json:"valid"`

	// TypeLabel is the @type value. Array types are joined with ", ".
	// Only set when Valid is true.
	TypeLabel string `json:"type_label,omitempty"`

	// Error is the human-readable failure reason.
	// Only set when Valid is false.
	Error string `json:"error,omitempty"`
}

// Validation failure messages. These are presented directly to editors,
// so they name the missing key rather than a JSON pointer.
const (
	msgMissingContext = "missing @context key"
	msgMissingType    = "missing @type key"
)

// Validate parses jsonText as a JSON-LD object and checks the keys that
// make it meaningful structured data: @context and @type. The payload
// must be a JSON object; arrays and scalars are reported as parse-level
// failures because a linked-data block is always an object.
func Validate(jsonText string) Result {
	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return Result{Error: fmt.Sprintf("parse error: %v", err)}
	}

	if _, ok := payload["@context"]; !ok {
		return Result{Error: msgMissingContext}
	}

	typeValue, ok := payload["@type"]
	if !ok {
		return Result{Error: msgMissingType}
	}

	return Result{Valid: true, TypeLabel: typeLabel(typeValue)}
}

// typeLabel renders an @type value for display. JSON-LD allows both a
// scalar type and a list of types.
func typeLabel(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

// Format re-serializes jsonText with two-space indentation. The output
// is stable: formatting already-formatted input returns it unchanged.
// On parse failure the original text is not usable and an error is
// returned instead; callers keep their original input.
func Format(jsonText string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(jsonText)), "", "  "); err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	return buf.String(), nil
}
