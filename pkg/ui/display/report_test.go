package display_test

import (
	"testing"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/ui/display"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport_Counts(t *testing.T) {
	report := batch.Report{
		Succeeded: []string{"alice", "bob"},
		Skipped:   []batch.SkipRecord{{ID: "carol", Reason: "no settings document"}},
		Failed:    []batch.FailRecord{{ID: "dave", Error: "permission denied"}},
	}

	out := display.RenderReport("Set theme", report, false)

	assert.Contains(t, out, "Set theme")
	assert.Contains(t, out, "2 succeeded")
	assert.Contains(t, out, "1 skipped")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "carol")
	assert.Contains(t, out, "no settings document")
	assert.Contains(t, out, "dave")
	assert.Contains(t, out, "permission denied")
}

func TestRenderReport_DryRunMarker(t *testing.T) {
	out := display.RenderReport("Link lorebook", batch.Report{}, true)
	assert.Contains(t, out, "(dry run)")
	assert.Contains(t, out, "0 succeeded")
}
