package timing

import (
	"time"

	"github.com/lixenwraith/void-fighter/constant"
)

// FpsCounter counts rendered and dropped frames, latching totals once
// per second
type FpsCounter struct {
	frames     int
	drops      int
	fps        int
	frameDrops int
	latch      Timer
}

// NewFpsCounter creates a counter latching from the given instant
func NewFpsCounter(now time.Time) *FpsCounter {
	return &FpsCounter{
		latch: NewTimer(now),
	}
}

// Frame adds one frame to the running count
func (c *FpsCounter) Frame() {
	c.frames++
}

// FrameDrop adds one frame to the running drop count
func (c *FpsCounter) FrameDrop() {
	c.drops++
}

// Update latches and resets the running counts once per second.
// Returns true when a latch happened so the caller can log it.
func (c *FpsCounter) Update(now time.Time) bool {
	if !c.latch.Check(now, constant.FpsUpdateInterval) {
		return false
	}
	c.fps = c.frames
	c.frameDrops = c.drops
	c.frames = 0
	c.drops = 0
	return true
}

// Fps returns the most recently latched frame count
func (c *FpsCounter) Fps() int {
	return c.fps
}

// FrameDrops returns the most recently latched drop count
func (c *FpsCounter) FrameDrops() int {
	return c.frameDrops
}
