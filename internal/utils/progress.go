package utils

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// Progress is a stderr progress bar that is safe to advance from several
// goroutines. It does nothing when disabled or when stderr is not a terminal.
type Progress struct {
	mu          sync.Mutex
	container   *mpb.Progress
	bar         *mpb.Bar
	enabled     bool
	current     int
	description string
}

var descLength = 24

// NewProgress creates a progress bar for total units of work
func NewProgress(total int, enabled bool) *Progress {
	p := &Progress{enabled: enabled && isTerminal()}
	if !p.enabled {
		return p
	}

	fmt.Fprintln(os.Stderr)

	p.container = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(64),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	p.bar = p.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Any(func(decor.Statistics) string {
				desc := p.currentDescription()
				if len(desc) > descLength {
					return desc[:descLength-2] + ".."
				}
				return desc
			}, decor.WC{W: descLength, C: decor.DindentRight}),
			decor.Name("  "),
			decor.CountersNoUnit("%d/%d", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	return p
}

// Increment advances the bar by one unit and shows description next to it
func (p *Progress) Increment(description string) {
	if !p.enabled || p.bar == nil {
		return
	}

	p.mu.Lock()
	p.current++
	p.description = description
	current := p.current
	p.mu.Unlock()

	p.bar.SetCurrent(int64(current))
}

// Finish waits for the bar to render its final state
func (p *Progress) Finish() {
	if !p.enabled || p.container == nil {
		return
	}

	// a bar that never reached its total would block Wait forever
	p.bar.Abort(false)
	p.container.Wait()

	fmt.Fprintln(os.Stderr)
}

func (p *Progress) currentDescription() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.description
}

// isTerminal checks if stderr is a terminal (TTY)
func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
