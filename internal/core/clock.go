package core

import "time"

// Clock is a monotonically non-decreasing millisecond counter.
type Clock interface {
	Millis() int64
}

// SystemClock counts milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis implements Clock. time.Since uses the monotonic reading, so wall
// clock adjustments never move it backwards.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used for replays and tests.
type ManualClock struct {
	ms int64
}

// Millis implements Clock.
func (c *ManualClock) Millis() int64 {
	return c.ms
}

// Advance moves the clock forward. Negative steps are ignored.
func (c *ManualClock) Advance(ms int64) {
	if ms > 0 {
		c.ms += ms
	}
}

// Gate lets an update run at most once per interval. A call that arrives
// early is skipped, never queued: a late call runs once and restarts the
// interval from that moment.
type Gate struct {
	interval int64
	last     int64
}

// NewGate creates a gate that first opens once an interval has passed since now.
func NewGate(interval, now int64) Gate {
	return Gate{interval: interval, last: now}
}

// Due reports whether more than one interval has elapsed and, if so,
// restarts it.
func (g *Gate) Due(now int64) bool {
	if now-g.last <= g.interval {
		return false
	}
	g.last = now
	return true
}

// Interval returns the gate interval in milliseconds.
func (g Gate) Interval() int64 {
	return g.interval
}
