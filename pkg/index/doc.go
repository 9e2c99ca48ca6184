// Package index provides CRUD over the host application's ordered
// content-descriptor registry, keyed by filename. Reading fails open:
// a missing or corrupt index is an empty collection, never an error.
package index
