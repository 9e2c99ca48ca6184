// Package types holds the small set of interfaces and value types shared
// across warden's packages, most importantly the FS abstraction that lets
// every mutating component run against a real or in-memory filesystem.
package types
