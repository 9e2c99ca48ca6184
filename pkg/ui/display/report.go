package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/warden/pkg/batch"
)

// RenderReport renders a finished batch report: a one-line summary of
// counts followed by per-skip and per-failure detail. The report value
// is fully assembled before rendering, so dry runs and headless runs
// produce the same shape.
func RenderReport(label string, report batch.Report, dryRun bool) string {
	var out strings.Builder

	header := label
	if dryRun {
		header += " (dry run)"
	}
	out.WriteString(TitleStyle.Render(header) + "\n\n")

	out.WriteString(fmt.Sprintf("%s  %s  %s\n",
		SuccessStyle.Render(fmt.Sprintf("%d succeeded", len(report.Succeeded))),
		SkipStyle.Render(fmt.Sprintf("%d skipped", len(report.Skipped))),
		FailStyle.Render(fmt.Sprintf("%d failed", len(report.Failed))),
	))

	if len(report.Skipped) > 0 {
		out.WriteString("\n")
		for _, s := range report.Skipped {
			out.WriteString(SkipStyle.Render("  ~ "+s.ID) + MutedStyle.Render("  "+s.Reason) + "\n")
		}
	}
	if len(report.Failed) > 0 {
		out.WriteString("\n")
		for _, f := range report.Failed {
			out.WriteString(FailStyle.Render("  ✗ "+f.ID) + "  " + f.Error + "\n")
		}
	}

	return strings.TrimRight(out.String(), "\n")
}
