package document

import (
	"strings"
)

// Document is a schema-less settings tree: string keys, values among
// nil, bool, float64/int64, string, []any and nested map[string]any,
// exactly what encoding/json produces. The document's shape is defined
// by the operator at runtime and never hard-coded here.
type Document = map[string]any

// Clone returns a deep copy of doc. Mutation helpers clone before
// editing so the caller's document is never observably changed.
func Clone(doc Document) Document {
	if doc == nil {
		return nil
	}
	return cloneValue(doc).(map[string]any)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

// Get reads the value at a dot-separated path. The second return is
// false when any segment is absent or a non-mapping is traversed.
func Get(doc Document, path string) (any, bool) {
	node := any(doc)
	for _, seg := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// set writes value at the dot path inside doc, creating intermediate
// mappings as needed and replacing non-mapping intermediates. doc is
// mutated in place; callers clone first.
func set(doc map[string]any, path string, value any) {
	segs := strings.Split(path, ".")
	node := doc
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[seg] = child
		}
		node = child
	}
	node[segs[len(segs)-1]] = value
}
