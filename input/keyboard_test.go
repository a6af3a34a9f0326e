package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/constant"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyboardHeldWindow(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, keyEvent(tcell.KeyUp))

	kb.Update(testBase.Add(8 * time.Millisecond))
	if !kb.State().Up() {
		t.Fatal("Expected up held right after the press")
	}

	kb.Update(testBase.Add(constant.KeyHoldWindow - time.Millisecond))
	if !kb.State().Up() {
		t.Error("Expected up still held just inside the hold window")
	}

	kb.Update(testBase.Add(constant.KeyHoldWindow))
	if kb.State().Up() {
		t.Error("Expected up released once the hold window closed")
	}
}

func TestKeyboardAutorepeatRefreshesHold(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, keyEvent(tcell.KeyRight))
	kb.HandleKey(testBase.Add(150*time.Millisecond), keyEvent(tcell.KeyRight))

	// 300 ms after the first press, but only 150 ms after the repeat.
	kb.Update(testBase.Add(300 * time.Millisecond))
	if !kb.State().Right() {
		t.Error("Expected the autorepeat event to keep the key held")
	}
}

func TestKeyboardKeyMapping(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		query func(State) bool
	}{
		{"arrow up", keyEvent(tcell.KeyUp), State.Up},
		{"arrow down", keyEvent(tcell.KeyDown), State.Down},
		{"arrow left", keyEvent(tcell.KeyLeft), State.Left},
		{"arrow right", keyEvent(tcell.KeyRight), State.Right},
		{"w", runeEvent('w'), State.Up},
		{"s", runeEvent('s'), State.Down},
		{"a", runeEvent('a'), State.Left},
		{"d", runeEvent('d'), State.Right},
		{"space", runeEvent(' '), State.Shoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyboard(testBase)
			kb.HandleKey(testBase, tt.event)
			kb.Update(testBase)
			if !tt.query(kb.State()) {
				t.Errorf("Expected %s to register as held", tt.name)
			}
		})
	}
}

func TestKeyboardIgnoresUnknownKeys(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, runeEvent('x'))
	kb.HandleKey(testBase, keyEvent(tcell.KeyTab))
	kb.Update(testBase)

	s := kb.State()
	if s.Up() || s.Down() || s.Left() || s.Right() || s.Shoot() {
		t.Error("Expected unmapped keys to leave the snapshot empty")
	}
	if kb.HitUp() || kb.HitDown() || kb.HitEnter() || kb.HitBack() {
		t.Error("Expected unmapped keys to produce no hits")
	}
}

func TestKeyboardHitsAreReadOnce(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, keyEvent(tcell.KeyUp))
	kb.Update(testBase)

	if !kb.HitUp() {
		t.Fatal("Expected a menu hit on the press edge")
	}
	if kb.HitUp() {
		t.Error("Expected the hit consumed by the first read")
	}
	if kb.HitDown() {
		t.Error("Expected no hit on an unpressed key")
	}
}

func TestKeyboardHitLatchSurvivesFrames(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, keyEvent(tcell.KeyEnter))
	kb.Update(testBase)
	kb.Update(testBase.Add(8 * time.Millisecond))

	// Not read during the first frame: the latch holds until consumed.
	if !kb.HitEnter() {
		t.Error("Expected the unread hit to survive into the next frame")
	}
}

func TestKeyboardMenuScrollRepeats(t *testing.T) {
	kb := NewKeyboard(testBase)

	press := func(at time.Duration) {
		kb.HandleKey(testBase.Add(at), keyEvent(tcell.KeyDown))
	}
	frame := func(at time.Duration) bool {
		kb.Update(testBase.Add(at))
		return kb.HitDown()
	}

	press(0)
	if !frame(0) {
		t.Fatal("Expected the press-edge hit")
	}

	// Autorepeat keeps the key held through the repeat delay.
	for at := 100 * time.Millisecond; at < constant.KeyRepeatDelay; at += 100 * time.Millisecond {
		press(at)
		if frame(at) {
			t.Fatalf("Expected no hit at %v, inside the repeat delay", at)
		}
	}

	press(constant.KeyRepeatDelay)
	if !frame(constant.KeyRepeatDelay) {
		t.Fatal("Expected a hit when scroll mode starts")
	}

	next := constant.KeyRepeatDelay + constant.KeyRepeatInterval
	press(next)
	if !frame(next) {
		t.Error("Expected a repeat hit one interval into scroll mode")
	}
}

func TestKeyboardEnterNeverRepeats(t *testing.T) {
	kb := NewKeyboard(testBase)

	hits := 0
	for at := time.Duration(0); at <= 2*constant.KeyRepeatDelay; at += 100 * time.Millisecond {
		kb.HandleKey(testBase.Add(at), keyEvent(tcell.KeyEnter))
		kb.Update(testBase.Add(at))
		if kb.HitEnter() {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("Expected a single activation for a held enter, got %d", hits)
	}

	// A release and a fresh press is a new activation.
	releaseAt := 2*constant.KeyRepeatDelay + constant.KeyHoldWindow + time.Millisecond
	kb.Update(testBase.Add(releaseAt))
	pressAt := releaseAt + time.Millisecond
	kb.HandleKey(testBase.Add(pressAt), keyEvent(tcell.KeyEnter))
	kb.Update(testBase.Add(pressAt))
	if !kb.HitEnter() {
		t.Error("Expected a new activation after release")
	}
}

func TestKeyboardEscapeIsBack(t *testing.T) {
	kb := NewKeyboard(testBase)
	kb.HandleKey(testBase, keyEvent(tcell.KeyEscape))
	kb.Update(testBase)

	if !kb.HitBack() {
		t.Fatal("Expected a back hit from escape")
	}
	if kb.HitBack() {
		t.Error("Expected the back hit consumed on read")
	}
}
