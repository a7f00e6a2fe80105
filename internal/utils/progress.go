package utils

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// Progress is a batch progress bar drawn on stderr. It is a no-op when
// disabled or when stderr is not a terminal.
type Progress struct {
	container *mpb.Progress
	bar       *mpb.Bar
	label     string
	done      atomic.Int64
}

// NewProgress creates a progress bar for total items
func NewProgress(total int, label string, enabled bool) *Progress {
	p := &Progress{label: label}
	if !enabled || !isTerminal() {
		return p
	}
	p.start(os.Stderr, total)
	return p
}

func (p *Progress) start(out io.Writer, total int) {
	p.container = mpb.New(
		mpb.WithOutput(out),
		mpb.WithWidth(64),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	p.bar = p.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(p.label, decor.WC{W: len(p.label) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d/%d", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)
}

// Enabled reports whether the bar is being drawn
func (p *Progress) Enabled() bool {
	return p.bar != nil
}

// Increment records one finished item. Safe for concurrent use.
func (p *Progress) Increment() {
	p.done.Add(1)
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Done returns the number of items recorded so far
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Finish waits for the bar to complete and releases the terminal
func (p *Progress) Finish() {
	if p.container == nil {
		return
	}

	if !p.bar.Completed() {
		p.bar.Abort(false)
	}
	p.container.Wait()
	fmt.Fprintln(os.Stderr)
}

// isTerminal checks if stderr is a terminal (TTY)
func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
