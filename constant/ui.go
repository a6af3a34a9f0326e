package constant

import "time"

// Key State Emulation
const (
	// KeyHoldWindow is how long a key counts as held after its last
	// press event. Terminals report repeats, never releases.
	KeyHoldWindow = 180 * time.Millisecond
)

// Menu Key Repeat
const (
	// KeyRepeatDelay is the hold time before a key enters scroll mode.
	KeyRepeatDelay = 1 * time.Second

	// KeyRepeatInterval is the hit cadence while in scroll mode.
	KeyRepeatInterval = 300 * time.Millisecond
)

// HUD
const (
	HealthBarWidth = 20
	FpsDigits      = 3
)
