package main

// Message constants for command help text.
const (
	MsgUsersShort = "List discovered user records"

	MsgSetShort = "Set values in every selected user's settings"
	MsgSetLong  = `Set applies one or more dot-path assignments to each selected user's
settings document. Values are inferred from the text: true/false and
null become the obvious types, numeric text becomes a number, and
bracketed text that parses as JSON becomes a list or object; anything
else stays a string. Each document is backed up into the user's private
backups directory before it is rewritten.`

	MsgSyncShort = "Copy settings sections from a template user"
	MsgSyncLong  = `Sync reads the named sections from one user's settings document and
replaces the same sections, wholesale, in every selected user. Sections
the template user does not have are left untouched in the destinations.
Each destination document is backed up before it is rewritten.`

	MsgUpsertShort = "Upsert a named record into a settings list"
	MsgUpsertLong  = `Upsert inserts or replaces one record in the list at the given path,
matching on the record's "name": any existing record with that name is
removed and the new record is appended at the end, so re-running is
idempotent. Each document is backed up before it is rewritten.`

	MsgLinkShort = "Share one lorebook across users by symlink"
	MsgLinkLong  = `Link points each selected user's worlds directory at one shared
lorebook file via a symbolic link, so an edit to the source shows up
for everyone. Existing entries at the target are skipped by default;
with --policy replace-all they are backed up (regular files) and
replaced. If the shared content index already seeds a file with the
same name, warden warns: the host application's next seeding pass would
overwrite the links with regular copies.`

	MsgLinkRegistryConflict = "warning: the content index seeds %q; the host's next seeding pass will overwrite these links"

	MsgBackupShort = "Snapshot every selected user's managed files"
	MsgBackupLong  = `Backup copies each selected user's settings, secrets, and content log
into one labeled, timestamped directory under the central backup root,
one subdirectory per user. Snapshots are never overwritten or read back
by warden; restoring is a manual operation.`

	MsgIndexShort = "Maintain the shared content index"
	MsgIndexLong  = `The index subcommands edit the host application's content index, the
ordered list of {filename, type} descriptors its seeding mechanism
copies into user records on startup. The index file is snapshotted into
the central backup area before every change.`

	MsgApplyShort = "Run a YAML plan of edits across users"
	MsgApplyLong  = `Apply reads a plan file describing path sets, named-list upserts, and
an optional template-section sync, and applies the whole plan to each
selected user in one snapshot/write cycle.`
)
