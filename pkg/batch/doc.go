// Package batch drives one operation across a selected set of user
// records. Units are processed one at a time, in order; each unit's
// outcome is classified as succeeded, skipped, or failed, and a failure
// in one unit never affects another. The resulting Report is a plain
// value the presentation layer renders after the run, so headless and
// interactive invocations produce identical results.
package batch
