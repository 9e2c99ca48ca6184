package document

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseValue infers a typed value from free-text operator input. The
// precedence order is load-bearing: true/false and null are checked
// before numbers so "true" is never numeric, and bracketed text that
// fails to parse as JSON falls back to a plain string instead of
// erroring.
func ParseValue(raw string) any {
	s := strings.TrimSpace(raw)

	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}

	if numberPattern.MatchString(s) {
		if !strings.Contains(s, ".") {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if bracketed(s) {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

func bracketed(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) ||
		(strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"))
}
