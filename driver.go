package polyplot

import (
	"context"
	"time"
)

// Driver advances an Animator at a fixed cadence and requests a redraw
// after each tick. Redraw and angle-advance stay decoupled: the host's
// display layer may coalesce or delay redraws without affecting the
// tick rate, and a late tick simply fires the next step late.
type Driver struct {
	animator *Animator
	interval time.Duration
	redraw   func()
}

// NewDriver returns a driver ticking every interval. redraw is invoked
// after each advance and may be nil for hosts that poll on their own.
func NewDriver(a *Animator, interval time.Duration, redraw func()) *Driver {
	return &Driver{
		animator: a,
		interval: interval,
		redraw:   redraw,
	}
}

// Step performs a single tick: advance the angle, then request a redraw.
// Exposed so tests and offline hosts can single-step the animation
// without real time passing.
func (d *Driver) Step() {
	d.animator.Advance()
	if d.redraw != nil {
		d.redraw()
	}
}

// Run ticks until ctx is done. There is no other way to stop the loop;
// the animation has no terminal state.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Step()
		}
	}
}
