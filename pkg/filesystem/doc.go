// Package filesystem provides the concrete types.FS implementations:
// NewOS for production use and NewAfero/NewMemory for tests.
package filesystem
