package gui

import (
	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/logic"
)

// HUD caches the latest health readings. The health accessors are
// read-once, so the HUD polls every tick and keeps the last seen value
// between changes.
type HUD struct {
	playerHealth int
	enemyHealth  int
}

// NewHUD starts both bars full. Resets re-arm the dirty flags, so the
// first poll of a new game refreshes the cache.
func NewHUD() *HUD {
	return &HUD{
		playerHealth: constant.PlayerMaxHealth,
		enemyHealth:  constant.EnemyMaxHealth,
	}
}

// Poll consumes any pending health changes.
func (h *HUD) Poll(l *logic.Logic) {
	if v, changed := l.Player().Health(); changed {
		h.playerHealth = v
	}
	if v, changed := l.Enemy().Health(); changed {
		h.enemyHealth = v
	}
}

func (h *HUD) PlayerHealth() int { return h.playerHealth }
func (h *HUD) EnemyHealth() int  { return h.enemyHealth }
