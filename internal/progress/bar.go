// Package progress draws the short "Completed" bar shown between menu
// selections. It is decoration only and never touches game state.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	DefaultWidth = 30
	DefaultSteps = 100
	DefaultDelay = 500 * time.Microsecond
)

// Bar animates a fixed-duration progress bar on a single terminal line
type Bar struct {
	Width int
	Steps int
	Delay time.Duration

	out   io.Writer
	clock quartz.Clock
}

// New creates a bar with the default geometry and timing
func New(out io.Writer, clock quartz.Clock) *Bar {
	return &Bar{
		Width: DefaultWidth,
		Steps: DefaultSteps,
		Delay: DefaultDelay,
		out:   out,
		clock: clock,
	}
}

// Frame renders the bar after step i of b.Steps
func (b *Bar) Frame(i int) string {
	steps := max(b.Steps, 1)
	percent := 100 * min(max(i, 0), steps) / steps
	filled := percent * b.Width / 100
	return fmt.Sprintf("Completed: [%-*s] %3d%%", b.Width, strings.Repeat("=", filled), percent)
}

// Run draws every frame, pausing Delay after each one, then leaves a blank line
func (b *Bar) Run() error {
	for i := 0; i <= b.Steps; i++ {
		if _, err := io.WriteString(b.out, "\r"+b.Frame(i)); err != nil {
			return err
		}
		b.wait()
	}
	_, err := io.WriteString(b.out, "\n\n")
	return err
}

func (b *Bar) wait() {
	if b.Delay <= 0 {
		return
	}
	t := b.clock.NewTimer(b.Delay, "progress")
	<-t.C
}
