// Package document implements pure transforms over the schema-less
// per-user settings tree. Every transform deep-clones before editing:
// for any document D, the value passed in is bit-identical after the
// call, and the returned tree shares no mutable state with it.
//
// Three edit primitives exist: dot-path sets (ApplyPathSets), wholesale
// section replacement from a template document (SyncSections), and a
// named-list upsert built by composing filter-then-append with a path
// set (UpsertNamed). ParseValue turns free-text operator input into
// typed values with a strict precedence order.
package document
