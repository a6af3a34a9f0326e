// Package input translates terminal key events into the per-tick held
// state the simulation consumes and the read-once menu hits the GUI
// consumes.
//
// Terminals deliver key presses only, never releases, so held state is
// emulated: a key counts as held for constant.KeyHoldWindow after its
// last event, and the OS autorepeat keeps refreshing it while the key
// is physically down.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/timing"
)

// State is one tick's key snapshot
type State struct {
	up, down, left, right, shoot bool
}

// Up reports whether the up key is held
func (s State) Up() bool { return s.up }

// Down reports whether the down key is held
func (s State) Down() bool { return s.down }

// Left reports whether the left key is held
func (s State) Left() bool { return s.left }

// Right reports whether the right key is held
func (s State) Right() bool { return s.right }

// Shoot reports whether the fire key is held
func (s State) Shoot() bool { return s.shoot }

// Keyboard accumulates key events between frames. HandleKey records
// events as they arrive; Update then refreshes the held snapshot and
// latches menu hits for the frame.
type Keyboard struct {
	lastUp, lastDown, lastLeft, lastRight time.Time
	lastShoot, lastEnter, lastBack        time.Time

	state State

	upGen    timing.KeyHitGenerator
	downGen  timing.KeyHitGenerator
	enterGen timing.KeyHitGenerator
	backGen  timing.KeyHitGenerator

	upHit, downHit, enterHit, backHit bool
}

// NewKeyboard creates a keyboard with no keys held. Up and down repeat
// for menu scrolling; enter and back fire on press edges only.
func NewKeyboard(now time.Time) *Keyboard {
	return &Keyboard{
		upGen:    timing.NewKeyHitGenerator(now, true),
		downGen:  timing.NewKeyHitGenerator(now, true),
		enterGen: timing.NewKeyHitGenerator(now, false),
		backGen:  timing.NewKeyHitGenerator(now, false),
	}
}

// HandleKey records a key event. Movement is on the arrows and WASD,
// fire on space, menu activation on enter, back/pause on escape. Other
// keys are ignored.
func (k *Keyboard) HandleKey(now time.Time, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.lastUp = now
	case tcell.KeyDown:
		k.lastDown = now
	case tcell.KeyLeft:
		k.lastLeft = now
	case tcell.KeyRight:
		k.lastRight = now
	case tcell.KeyEnter:
		k.lastEnter = now
	case tcell.KeyEscape:
		k.lastBack = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			k.lastUp = now
		case 's':
			k.lastDown = now
		case 'a':
			k.lastLeft = now
		case 'd':
			k.lastRight = now
		case ' ':
			k.lastShoot = now
		}
	}
}

// Update refreshes the held snapshot and latches this frame's menu
// hits. Call once per frame before reading State or the hit queries.
func (k *Keyboard) Update(now time.Time) {
	k.state = State{
		up:    held(now, k.lastUp),
		down:  held(now, k.lastDown),
		left:  held(now, k.lastLeft),
		right: held(now, k.lastRight),
		shoot: held(now, k.lastShoot),
	}

	if k.upGen.Update(now, k.state.up) {
		k.upHit = true
	}
	if k.downGen.Update(now, k.state.down) {
		k.downHit = true
	}
	if k.enterGen.Update(now, held(now, k.lastEnter)) {
		k.enterHit = true
	}
	if k.backGen.Update(now, held(now, k.lastBack)) {
		k.backHit = true
	}
}

// State returns the snapshot taken by the last Update
func (k *Keyboard) State() State {
	return k.state
}

// HitUp reports a pending menu-up hit and clears it
func (k *Keyboard) HitUp() bool {
	hit := k.upHit
	k.upHit = false
	return hit
}

// HitDown reports a pending menu-down hit and clears it
func (k *Keyboard) HitDown() bool {
	hit := k.downHit
	k.downHit = false
	return hit
}

// HitEnter reports a pending activation hit and clears it
func (k *Keyboard) HitEnter() bool {
	hit := k.enterHit
	k.enterHit = false
	return hit
}

// HitBack reports a pending back/pause hit and clears it
func (k *Keyboard) HitBack() bool {
	hit := k.backHit
	k.backHit = false
	return hit
}

func held(now, last time.Time) bool {
	return now.Sub(last) < constant.KeyHoldWindow
}
