package gui

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/logic"
)

// noKeys is an idle InputState.
type noKeys struct{}

func (noKeys) Up() bool    { return false }
func (noKeys) Down() bool  { return false }
func (noKeys) Left() bool  { return false }
func (noKeys) Right() bool { return false }
func (noKeys) Shoot() bool { return false }

func TestHUDStartsFull(t *testing.T) {
	h := NewHUD()

	if got := h.PlayerHealth(); got != constant.PlayerMaxHealth {
		t.Errorf("PlayerHealth() = %d, want %d", got, constant.PlayerMaxHealth)
	}
	if got := h.EnemyHealth(); got != constant.EnemyMaxHealth {
		t.Errorf("EnemyHealth() = %d, want %d", got, constant.EnemyMaxHealth)
	}
}

func TestHUDTracksContactDamage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := logic.NewLogic(now, logic.NopSoundPlayer{}, rand.New(rand.NewSource(3)))
	h := NewHUD()

	h.Poll(l)
	if h.PlayerHealth() != 100 || h.EnemyHealth() != 100 {
		t.Fatalf("fresh poll = %d/%d, want 100/100", h.PlayerHealth(), h.EnemyHealth())
	}

	// Park the player on the boss; the default Normal difficulty deals
	// 10 contact damage per cadence tick
	l.Player().SetPosition(l.Enemy().Position.X, l.Enemy().Position.Y)

	now = now.Add(constant.ContactDamageInterval)
	l.Update(now, 1.0, noKeys{})
	h.Poll(l)
	if got := h.PlayerHealth(); got != 90 {
		t.Fatalf("PlayerHealth() after one contact tick = %d, want 90", got)
	}
	if got := h.EnemyHealth(); got != 100 {
		t.Errorf("EnemyHealth() = %d, want 100 (contact hurts only the player)", got)
	}

	// No updates between polls: the cache holds the last seen value
	h.Poll(l)
	h.Poll(l)
	if got := h.PlayerHealth(); got != 90 {
		t.Errorf("PlayerHealth() after idle polls = %d, want 90", got)
	}

	now = now.Add(constant.ContactDamageInterval)
	l.Update(now, 1.0, noKeys{})
	h.Poll(l)
	if got := h.PlayerHealth(); got != 80 {
		t.Errorf("PlayerHealth() after second contact tick = %d, want 80", got)
	}
}

func TestHUDRefreshesOnNewGame(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := logic.NewLogic(now, logic.NopSoundPlayer{}, rand.New(rand.NewSource(3)))
	h := NewHUD()
	h.Poll(l)

	l.Player().SetPosition(l.Enemy().Position.X, l.Enemy().Position.Y)
	now = now.Add(constant.ContactDamageInterval)
	l.Update(now, 1.0, noKeys{})
	h.Poll(l)
	if got := h.PlayerHealth(); got != 90 {
		t.Fatalf("PlayerHealth() = %d, want 90", got)
	}

	// Reset re-arms the dirty flags; the next poll refills the bars
	if err := l.ResetGame(now, logic.DifficultyHard, 0); err != nil {
		t.Fatalf("ResetGame: %v", err)
	}
	h.Poll(l)
	if h.PlayerHealth() != 100 || h.EnemyHealth() != 100 {
		t.Errorf("poll after reset = %d/%d, want 100/100", h.PlayerHealth(), h.EnemyHealth())
	}
}
