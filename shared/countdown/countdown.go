// Package countdown provides the timer value used by every gameplay
// component that needs "do X for N seconds" or "wait N seconds".
package countdown

// Countdown holds a number of remaining seconds. The zero value is expired.
type Countdown struct {
	remaining float64
}

// New returns a countdown armed with d seconds.
func New(d float64) Countdown {
	var c Countdown
	c.Reset(d)
	return c
}

// Reset arms the countdown with d seconds. Negative durations clamp to zero.
func (c *Countdown) Reset(d float64) {
	if d < 0 {
		d = 0
	}
	c.remaining = d
}

// Clear expires the countdown immediately.
func (c *Countdown) Clear() {
	c.remaining = 0
}

// Tick advances the countdown by dt seconds and reports whether it reached
// zero during this call.
func (c *Countdown) Tick(dt float64) bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}

func (c Countdown) Active() bool {
	return c.remaining > 0
}

func (c Countdown) Expired() bool {
	return c.remaining <= 0
}

func (c Countdown) Remaining() float64 {
	return c.remaining
}
