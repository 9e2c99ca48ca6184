package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/warden/pkg/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planYAML = `
label: quarterly defaults
sets:
  - path: theme
    value: dark
  - path: power_user.blur
    value: 4
upserts:
  - list: connection_profiles
    record:
      name: shared-api
      url: https://api.internal
sync:
  from: template
  paths: [power_user]
`

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0644))

	plan, err := commands.LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "quarterly defaults", plan.Label)
	require.Len(t, plan.Sets, 2)
	assert.Equal(t, "dark", plan.Sets[0].Value)
	require.Len(t, plan.Upserts, 1)
	require.NotNil(t, plan.Sync)
	assert.Equal(t, "template", plan.Sync.From)
}

func TestLoadPlan_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad_yaml", "sets: ["},
		{"empty_set_path", "sets:\n  - value: x"},
		{"upsert_without_record", "upserts:\n  - list: a"},
		{"upsert_without_name", "upserts:\n  - list: a\n    record:\n      url: x"},
		{"upsert_with_non_string_name", "upserts:\n  - list: a\n    record:\n      name: [1, 2]"},
		{"sync_without_from", "sync:\n  paths: [a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := commands.LoadPlan(path)
			assert.Error(t, err)
		})
	}
}

func TestApply_RunsWholePlanPerUser(t *testing.T) {
	fleet := newSyncFleet(t)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planYAML), 0644))

	plan, err := commands.LoadPlan(path)
	require.NoError(t, err)

	report, err := commands.Apply(context.Background(), newEnv(fleet, false),
		[]string{"alice", "template"}, plan)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice"}, report.Succeeded)
	require.Len(t, report.Skipped, 1, "template user skipped")

	doc := fleet.ReadSettings(t, "alice")
	assert.Equal(t, "dark", doc["theme"])
	// Sync runs after sets, so the template's power_user section wins.
	pu := doc["power_user"].(map[string]any)
	assert.Equal(t, true, pu["fast_ui_mode"])
	assert.Nil(t, pu["blur"])

	profiles := doc["connection_profiles"].([]any)
	require.Len(t, profiles, 2)
	assert.Equal(t, "shared-api", profiles[1].(map[string]any)["name"])

	assert.Equal(t, 1, fleet.BackupCount(t, "alice"), "one snapshot per user per plan run")
}
