package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/warden/pkg/batch"
)

// progressBar reports live per-unit progress on a terminal via pterm.
type progressBar struct {
	bar *pterm.ProgressbarPrinter
}

func (p *progressBar) Unit(id string, index, total int) {
	if p.bar == nil {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithRemoveWhenDone(true).
			Start()
		if err != nil {
			return
		}
		p.bar = bar
	}
	p.bar.UpdateTitle(id)
	p.bar.Increment()
}

// quietProgress logs nothing per unit; headless runs rely on the final
// report instead.
type quietProgress struct{}

func (quietProgress) Unit(string, int, int) {}

// NewProgress returns the progress sink appropriate for the current
// stdout: a live bar on a terminal, silence otherwise.
func NewProgress() batch.Progress {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return &progressBar{}
	}
	return quietProgress{}
}
