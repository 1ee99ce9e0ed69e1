package scene

import (
	"github.com/PierreHermey/SW3DMap/core"
)

// Tween is a minimal animation state machine: elapsed time against a
// duration, mapped through an easing function
//
// All tweens are advanced once per tick from Scene.Update, which is the
// single cancellation point: starting a tween while one is in flight
// re-samples from current values and abandons the old one, so two
// interpolations never compete for the same state
type Tween struct {
	elapsed  float64
	duration float64
	active   bool
}

// Start arms the tween for the given duration in seconds
// Restarting an active tween resets its clock
// A non-positive duration completes on the first Advance, so end states
// still get snapped
func (t *Tween) Start(duration float64) {
	if duration < 0 {
		duration = 0
	}
	t.elapsed = 0
	t.duration = duration
	t.active = true
}

// Cancel deactivates the tween without completing it
func (t *Tween) Cancel() {
	t.active = false
}

// Active reports whether the tween is running
func (t *Tween) Active() bool {
	return t.active
}

// Advance moves the clock forward and returns eased progress in [0,1]
// The final tick reports exactly 1 and deactivates the tween, so
// consumers can snap end states without epsilon checks
func (t *Tween) Advance(dt float64) (progress float64, done bool) {
	if !t.active {
		return 1, true
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.active = false
		return 1, true
	}
	return core.EaseOutCubic(t.elapsed / t.duration), false
}
