// Package linker decides, for one (shared source file, target path)
// pair, whether to create, replace, or skip a symbolic link, honoring
// an operator-chosen conflict policy. It also detects registry entries
// that would make the host application's content-seeding pass overwrite
// a link with a regular file.
package linker
