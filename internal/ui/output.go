package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormatJSON returns v as JSON indented by four spaces with sorted object keys.
func FormatJSON(v any) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("error encoding JSON: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
