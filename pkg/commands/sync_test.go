package commands_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/arthur-debert/warden/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncFleet(t *testing.T) *testutil.Fleet {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "template", map[string]any{
		"power_user": map[string]any{"fast_ui_mode": true},
	})
	base := map[string]any{
		"power_user": map[string]any{"fast_ui_mode": false, "blur": 10.0},
		"untouched":  "keep",
		"connection_profiles": []any{
			map[string]any{"name": "local", "url": "http://localhost"},
		},
	}
	fleet.AddUser(t, "alice", base)
	fleet.AddUser(t, "bob", base)
	return fleet
}

func TestSync_CopiesSectionsFromTemplateUser(t *testing.T) {
	fleet := newSyncFleet(t)

	report, err := commands.Sync(context.Background(), newEnv(fleet, false),
		"template", []string{"template", "alice", "bob"}, []string{"power_user"})
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, report.Succeeded)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "template", report.Skipped[0].ID)

	for _, handle := range []string{"alice", "bob"} {
		doc := fleet.ReadSettings(t, handle)
		pu := doc["power_user"].(map[string]any)
		assert.Equal(t, true, pu["fast_ui_mode"], "section replaced wholesale")
		assert.Nil(t, pu["blur"], "destination-only keys inside the section are gone")
		assert.Equal(t, "keep", doc["untouched"], "paths outside the synced section survive")
		assert.Equal(t, 1, fleet.BackupCount(t, handle))
	}
}

func TestSync_AbsentTemplateSectionLeavesDestination(t *testing.T) {
	fleet := newSyncFleet(t)

	_, err := commands.Sync(context.Background(), newEnv(fleet, false),
		"template", []string{"alice"}, []string{"no.such.section"})
	require.NoError(t, err)

	doc := fleet.ReadSettings(t, "alice")
	assert.Equal(t, "keep", doc["untouched"])
	_, hasSection := doc["no"]
	assert.False(t, hasSection)
}

func TestSync_MissingTemplateDocumentErrors(t *testing.T) {
	fleet := testutil.NewFleet(t)
	fleet.AddUser(t, "alice", map[string]any{})

	_, err := commands.Sync(context.Background(), newEnv(fleet, false),
		"ghost", []string{"alice"}, []string{"power_user"})
	assert.Error(t, err)
}

func TestUpsert_AppliedPerUser(t *testing.T) {
	fleet := newSyncFleet(t)

	record := map[string]any{"name": "shared-api", "url": "https://api.internal"}
	report := commands.Upsert(context.Background(), newEnv(fleet, false),
		[]string{"alice", "bob"}, "connection_profiles", record)

	assert.Len(t, report.Succeeded, 2)
	doc := fleet.ReadSettings(t, "alice")
	profiles := doc["connection_profiles"].([]any)
	require.Len(t, profiles, 2, "existing profile kept, new one appended")
	last := profiles[len(profiles)-1].(map[string]any)
	assert.Equal(t, "shared-api", last["name"])
}

func TestUpsert_ReplacesExistingName(t *testing.T) {
	fleet := newSyncFleet(t)

	record := map[string]any{"name": "local", "url": "http://127.0.0.1:5000"}
	commands.Upsert(context.Background(), newEnv(fleet, false),
		[]string{"alice"}, "connection_profiles", record)

	profiles := fleet.ReadSettings(t, "alice")["connection_profiles"].([]any)
	require.Len(t, profiles, 1)
	assert.Equal(t, "http://127.0.0.1:5000", profiles[0].(map[string]any)["url"])
}
