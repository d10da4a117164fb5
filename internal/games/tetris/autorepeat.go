package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// AutoRepeat is delayed auto shift for one horizontal direction at a time.
// After a press the direction must stay held for more than Delay frames
// before it repeats; each repeat then winds the counter back by Interval.
type AutoRepeat struct {
	delay    int
	interval int
	dir      core.Action
	counter  int
}

// NewAutoRepeat creates an idle auto-repeat.
func NewAutoRepeat(delay, interval int) AutoRepeat {
	return AutoRepeat{delay: delay, interval: max(interval, 1)}
}

// Press starts tracking dir and restarts the delay. Pressing one direction
// drops the other.
func (r *AutoRepeat) Press(dir core.Action) {
	r.dir = dir
	r.counter = 0
}

// Release stops tracking dir if it is the tracked direction.
func (r *AutoRepeat) Release(dir core.Action) {
	if r.dir == dir {
		r.Reset()
	}
}

// Reset forgets any held direction.
func (r *AutoRepeat) Reset() {
	r.dir = core.ActionNone
	r.counter = 0
}

// Held returns the tracked direction, ActionNone when idle.
func (r *AutoRepeat) Held() core.Action { return r.dir }

// Tick advances one frame and returns the direction to shift this frame,
// or ActionNone.
func (r *AutoRepeat) Tick() core.Action {
	if r.dir == core.ActionNone {
		return core.ActionNone
	}
	r.counter++
	if r.counter > r.delay {
		r.counter -= r.interval
		return r.dir
	}
	return core.ActionNone
}
