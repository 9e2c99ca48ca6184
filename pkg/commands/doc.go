// Package commands implements warden's operations: each function
// selects the per-user work, composes snapshot, mutation, and write
// into one unit-operation, and hands it to the batch executor. The CLI
// in cmd/warden is a thin wrapper over this package, so every operation
// works identically headless.
package commands
