package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/filesystem"
	"github.com/arthur-debert/warden/pkg/index"
	"github.com/arthur-debert/warden/pkg/linker"
	"github.com/arthur-debert/warden/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLorebook(t *testing.T, fleet *testutil.Fleet) string {
	t.Helper()
	source := filepath.Join(fleet.Config.ContentDir, "..", "shared", "canon-lore.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(source), 0755))
	require.NoError(t, os.WriteFile(source, []byte(`{"entries":{}}`), 0644))
	abs, err := filepath.Abs(source)
	require.NoError(t, err)
	return abs
}

func TestLink_FansOutSymlinks(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)
	fleet.AddUser(t, "bob", nil)
	source := writeLorebook(t, fleet)

	result, err := commands.Link(context.Background(), newEnv(fleet, false),
		[]string{"alice", "bob"}, source, linker.PolicySkip)
	require.NoError(t, err)

	assert.Len(t, result.Report.Succeeded, 2)
	assert.False(t, result.RegistryConflict)

	for _, handle := range []string{"alice", "bob"} {
		target := filepath.Join(fleet.Paths.WorldsPath(handle), "canon-lore.json")
		dest, err := os.Readlink(target)
		require.NoError(t, err)
		assert.Equal(t, source, dest)
	}
}

func TestLink_RerunIsIdempotent(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)
	source := writeLorebook(t, fleet)
	env := newEnv(fleet, false)

	_, err := commands.Link(context.Background(), env, []string{"alice"}, source, linker.PolicySkip)
	require.NoError(t, err)
	result, err := commands.Link(context.Background(), env, []string{"alice"}, source, linker.PolicySkip)
	require.NoError(t, err)

	assert.Len(t, result.Report.Succeeded, 1, "already-linked counts as success")
}

func TestLink_ReplaceAllSnapshotsRegularFileFirst(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)
	source := writeLorebook(t, fleet)

	target := filepath.Join(fleet.Paths.WorldsPath("alice"), "canon-lore.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("local copy"), 0644))

	result, err := commands.Link(context.Background(), newEnv(fleet, false),
		[]string{"alice"}, source, linker.PolicyReplaceAll)
	require.NoError(t, err)

	assert.Len(t, result.Report.Succeeded, 1)
	assert.Equal(t, 1, fleet.BackupCount(t, "alice"), "regular file snapshotted before replacement")
	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, source, dest)
}

func TestLink_SkipPolicyReportsSkipped(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)
	source := writeLorebook(t, fleet)

	target := filepath.Join(fleet.Paths.WorldsPath("alice"), "canon-lore.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("local copy"), 0644))

	result, err := commands.Link(context.Background(), newEnv(fleet, false),
		[]string{"alice"}, source, linker.PolicySkip)
	require.NoError(t, err)

	require.Len(t, result.Report.Skipped, 1)
	assert.Equal(t, 0, fleet.BackupCount(t, "alice"), "nothing destructive, nothing to back up")
}

func TestLink_MissingSourceSkipsEveryUnit(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)

	result, err := commands.Link(context.Background(), newEnv(fleet, false),
		[]string{"alice"}, filepath.Join(fleet.DataRoot, "..", "absent.json"), linker.PolicySkip)
	require.NoError(t, err)

	require.Len(t, result.Report.Skipped, 1)
	assert.Empty(t, result.Report.Failed)
}

func TestLink_WarnsOnRegistryConflict(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", nil)
	source := writeLorebook(t, fleet)

	coll := index.Collection{{Filename: "canon-lore.json", Type: index.TypeWorld}}
	require.NoError(t, index.Write(filesystem.NewOS(), fleet.Paths.IndexPath(), coll))

	result, err := commands.Link(context.Background(), newEnv(fleet, false),
		[]string{"alice"}, source, linker.PolicySkip)
	require.NoError(t, err)

	assert.True(t, result.RegistryConflict, "advisory only")
	assert.Len(t, result.Report.Succeeded, 1, "the link is still created")
}
