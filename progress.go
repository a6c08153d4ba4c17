package sortbench

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultBarWidth is the number of segments in a rendered progress bar.
const DefaultBarWidth = 50

// ProgressBar renders trial progress as a segmented bar. In live mode it
// redraws in place with carriage returns; otherwise it prints one
// completed bar per strategy.
type ProgressBar struct {
	Out   io.Writer
	Width int  // segments in the bar
	Live  bool // redraw in place instead of printing once at completion
}

// NewProgressBar returns a bar writing to out. Live mode is enabled when
// out is a terminal.
func NewProgressBar(out io.Writer) *ProgressBar {
	live := false
	if f, ok := out.(*os.File); ok {
		live = term.IsTerminal(int(f.Fd()))
	}
	return &ProgressBar{Out: out, Width: DefaultBarWidth, Live: live}
}

// Observe renders the bar for a completed trial. It satisfies [TrialFunc]
// so it can be set directly as a runner's OnTrial.
func (p *ProgressBar) Observe(ev TrialEvent) {
	if ev.Total <= 0 || p.Width <= 0 {
		return
	}
	done := ev.Trial >= ev.Total
	if !p.Live && !done {
		return
	}

	frac := float64(ev.Trial) / float64(ev.Total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(p.Width))

	end := "\r"
	if done {
		end = "\n"
	}
	fmt.Fprintf(p.Out, "[%s%s] %.1f%%%s",
		strings.Repeat("█", filled),
		strings.Repeat("░", p.Width-filled),
		frac*100,
		end)
}
