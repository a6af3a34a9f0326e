package timing

import (
	"time"

	"github.com/lixenwraith/void-fighter/constant"
)

// KeyHitGenerator turns a sampled key-held signal into discrete hits: one
// on the press edge, and, when repeat is enabled, one per repeat interval
// after the key has been held through the repeat delay. Menus use the
// repeating form for scrolling; one-shot actions disable repeat.
type KeyHitGenerator struct {
	repeat    bool
	held      bool
	scrolling bool
	holdStart Timer
	cadence   Timer
}

// NewKeyHitGenerator creates a generator. With repeat false only press
// edges produce hits.
func NewKeyHitGenerator(now time.Time, repeat bool) KeyHitGenerator {
	return KeyHitGenerator{
		repeat:    repeat,
		holdStart: NewTimer(now),
		cadence:   NewTimer(now),
	}
}

// Update samples the held signal and reports whether a hit fires this
// call. Call once per frame with the current time.
func (g *KeyHitGenerator) Update(now time.Time, pressed bool) bool {
	if !pressed {
		g.held = false
		g.scrolling = false
		return false
	}

	if !g.held {
		g.held = true
		g.holdStart.Reset(now)
		return true
	}

	if !g.repeat {
		return false
	}

	if !g.scrolling {
		if g.holdStart.Elapsed(now) < constant.KeyRepeatDelay {
			return false
		}
		g.scrolling = true
		g.cadence.Reset(now)
		return true
	}

	return g.cadence.Check(now, constant.KeyRepeatInterval)
}
