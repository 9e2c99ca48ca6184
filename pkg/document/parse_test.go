package document_test

import (
	"testing"

	"github.com/arthur-debert/warden/pkg/document"
	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"bool_true", "true", true},
		{"bool_false", "false", false},
		{"null", "null", nil},
		{"integer", "42", int64(42)},
		{"negative", "-3", int64(-3)},
		{"decimal", "0.75", 0.75},
		{"array", "[1,2]", []any{1.0, 2.0}},
		{"object", `{"a":1}`, map[string]any{"a": 1.0}},
		{"malformed_bracket_falls_back", "[1,2", "[1,2"},
		{"malformed_json_falls_back", "{not json}", "{not json}"},
		{"plain_string", "dark theme", "dark theme"},
		{"trims_whitespace", "  42  ", int64(42)},
		{"version_string_not_number", "1.2.3", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, document.ParseValue(tt.input))
		})
	}
}
