package sim

import "time"

// ticksPerSecond matches ebiten's default update rate
const ticksPerSecond = 60

// Timer fires once every interval of simulated time, counted in ticks
type Timer struct {
	ticks         int
	intervalTicks int
}

// NewTimer returns a timer firing every interval. An interval shorter than
// one tick never fires.
func NewTimer(interval time.Duration) *Timer {
	return &Timer{
		ticks:         0,
		intervalTicks: int(interval * ticksPerSecond / time.Second),
	}
}

// Advance moves the timer forward by one tick and reports whether it fired.
// Firing restarts the count.
func (t *Timer) Advance() bool {
	if t.intervalTicks <= 0 {
		return false
	}

	t.ticks++
	if t.ticks < t.intervalTicks {
		return false
	}

	t.ticks = 0
	return true
}

func (t *Timer) Reset() {
	t.ticks = 0
}
