package document

import "reflect"

// PathSet is one (dot path, literal value) edit directive.
type PathSet struct {
	Path  string
	Value any
}

// ApplyPathSets returns a new document with each directive applied in
// input order. Intermediate mapping containers are created where absent;
// existing values are overwritten uniformly whatever their type. The
// input document is never mutated.
func ApplyPathSets(doc Document, sets []PathSet) Document {
	out := Clone(doc)
	if out == nil {
		out = make(map[string]any)
	}
	for _, ps := range sets {
		set(out, ps.Path, cloneValue(ps.Value))
	}
	return out
}

// SyncSections returns a new document where, for each path, the value
// found in template replaces the destination subtree wholesale. Paths
// the template does not define leave the destination untouched. Paths
// are independent of each other.
func SyncSections(doc, template Document, paths []string) Document {
	out := Clone(doc)
	if out == nil {
		out = make(map[string]any)
	}
	for _, path := range paths {
		value, ok := Get(template, path)
		if !ok {
			continue
		}
		set(out, path, cloneValue(value))
	}
	return out
}

// UpsertNamed returns a new document where the list at listPath holds at
// most one record per "name": any existing record with the new record's
// name is removed, other records keep their relative order, and the new
// record is appended last. A missing or non-list value at listPath is
// treated as an empty list. Implemented as the documented composition:
// filter, append, then a single path set.
func UpsertNamed(doc Document, listPath string, record map[string]any) Document {
	current, _ := Get(doc, listPath)
	list, _ := current.([]any)

	name := record["name"]
	filtered := make([]any, 0, len(list)+1)
	for _, item := range list {
		// DeepEqual so a non-comparable name (a list, a mapping) can
		// never panic the match.
		if m, ok := item.(map[string]any); ok && reflect.DeepEqual(m["name"], name) {
			continue
		}
		filtered = append(filtered, item)
	}
	filtered = append(filtered, record)

	return ApplyPathSets(doc, []PathSet{{Path: listPath, Value: filtered}})
}
