package component

import "time"

// Animator advances a monotonic frame counter on a wall-clock interval. The
// counter only moves when enough real time has accumulated, independent of
// how many ticks ran in between, so animation speed is stable across refresh
// rates. Wrapping against a category's frame count happens at lookup time.
type Animator struct {
	Interval time.Duration

	index int
	acc   time.Duration
}

// NewAnimator creates an animator stepping once per interval. A non-positive
// interval falls back to 250ms.
func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Animator{Interval: interval}
}

// Update accumulates elapsed wall-clock time and advances the frame counter
// once per full interval.
func (a *Animator) Update(elapsed time.Duration) {
	if a == nil || a.Interval <= 0 {
		return
	}
	a.acc += elapsed
	for a.acc >= a.Interval {
		a.acc -= a.Interval
		a.index++
	}
}

// Index returns the monotonic frame counter.
func (a *Animator) Index() int {
	if a == nil {
		return 0
	}
	return a.index
}

// Reset sets the counter and accumulator back to zero.
func (a *Animator) Reset() {
	if a == nil {
		return
	}
	a.index = 0
	a.acc = 0
}
