package clock

import "time"

// Clock turns host time, advanced once per tick, into song position.
//
// All arithmetic is on time.Duration so a pause and resume can never
// introduce drift: on resume the start reference moves forward by exactly
// the paused interval.
type Clock struct {
	now      time.Duration // host time, the sum of every Advance
	start    time.Duration // host time at song position zero
	pausedAt time.Duration
	paused   bool
}

// New returns a running clock whose song position reaches zero after lead.
func New(lead time.Duration) *Clock {
	c := &Clock{}
	c.Restart(lead)
	return c
}

// Advance moves host time forward. Negative steps are ignored so the
// position can never run backwards.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
}

// Elapsed is the song position as a duration.
func (c *Clock) Elapsed() time.Duration {
	if c.paused {
		return c.pausedAt - c.start
	}
	return c.now - c.start
}

// Position is the song position in seconds.
func (c *Clock) Position() float64 {
	return c.Elapsed().Seconds()
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now
}

func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.start += c.now - c.pausedAt
	c.paused = false
}

// Restart puts the song position at -lead and unpauses.
func (c *Clock) Restart(lead time.Duration) {
	c.start = c.now + lead
	c.paused = false
	c.pausedAt = 0
}
