package timing

import "time"

// Timer checks time between updates against an interval.
// It stores the instant of its last reset; callers supply the current
// time on every query so the whole simulation shares one clock reading
// per tick.
type Timer struct {
	lastReset time.Time
}

// NewTimer creates a timer reset at the given instant
func NewTimer(now time.Time) Timer {
	return Timer{lastReset: now}
}

// Check resets the timer and returns true if at least interval has
// elapsed since the last reset
func (t *Timer) Check(now time.Time, interval time.Duration) bool {
	if t.Elapsed(now) >= interval {
		t.Reset(now)
		return true
	}
	return false
}

// Elapsed returns the time since the last reset. Clock regression
// reports zero rather than a negative duration.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	d := now.Sub(t.lastReset)
	if d < 0 {
		return 0
	}
	return d
}

// Reset moves the timer's reference instant to now
func (t *Timer) Reset(now time.Time) {
	t.lastReset = now
}

// GameLoopTimer gates fixed-rate logic updates inside the driver loop.
// Update arms two one-shot flags per call: UpdateLogic when the gate
// interval has passed, and DropFrame when it passed late, telling the
// caller the render frame budget was spent on catching up.
type GameLoopTimer struct {
	interval    time.Duration
	updateLogic bool
	dropFrame   bool
	gate        Timer
}

// NewGameLoopTimer creates a gate firing every interval, first armed
// at the given instant
func NewGameLoopTimer(now time.Time, interval time.Duration) *GameLoopTimer {
	return &GameLoopTimer{
		interval: interval,
		gate:     NewTimer(now),
	}
}

// Update recomputes the one-shot flags for this driver iteration.
// The comparison runs on whole milliseconds: an exact interval hit
// updates logic and keeps the frame, anything later updates logic and
// drops the frame.
func (t *GameLoopTimer) Update(now time.Time) {
	t.updateLogic = false
	t.dropFrame = false

	elapsed := t.gate.Elapsed(now).Milliseconds()
	limit := t.interval.Milliseconds()

	switch {
	case elapsed == limit:
		t.updateLogic = true
		t.gate.Reset(now)
	case elapsed > limit:
		t.updateLogic = true
		t.dropFrame = true
		t.gate.Reset(now)
	}
}

// UpdateLogic reports whether this iteration should run a logic tick
func (t *GameLoopTimer) UpdateLogic() bool {
	return t.updateLogic
}

// DropFrame reports whether this iteration should skip rendering
func (t *GameLoopTimer) DropFrame() bool {
	return t.dropFrame
}
