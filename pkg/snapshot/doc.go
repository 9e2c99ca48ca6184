// Package snapshot implements the backup-before-write protocol: a
// timestamped, append-only copy of a file is written before any command
// overwrites or removes it. Two addressing modes exist: the owner's
// private backups directory inside the user record, and a centralized
// labeled area for shared artifacts and whole-run backups.
package snapshot
