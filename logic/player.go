package logic

import (
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
	"github.com/lixenwraith/void-fighter/timing"
)

// Player is the ship under user control. It is created once and reset
// in place between games and levels.
type Player struct {
	core.Data
	speed   float64
	visible bool
	health  health

	lasers       []*Laser
	fireTimer    timing.Timer
	contactTimer timing.Timer

	laserDamage   int
	contactDamage int

	moveArea    core.Area
	despawnArea core.Area
}

// NewPlayer creates the player at its start position
func NewPlayer(now time.Time) *Player {
	world := core.CenteredArea(constant.WorldHalfWidth, constant.WorldHalfHeight)
	return &Player{
		Data:         core.NewData(constant.PlayerStartX, constant.PlayerStartY, constant.PlayerWidth, constant.PlayerHeight),
		speed:        constant.PlayerSpeed,
		visible:      true,
		health:       newHealth(constant.PlayerMaxHealth),
		fireTimer:    timing.NewTimer(now),
		contactTimer: timing.NewTimer(now),
		moveArea:     world.Grow(-constant.PlayerAreaMargin),
		despawnArea:  world.Grow(constant.DespawnPadding),
	}
}

// Update runs one simulation step: movement, firing, the laser sweep
// against the enemy, and the periodic contact-damage check.
func (p *Player) Update(now time.Time, delta float64, input InputState, enemy *Enemy, sounds SoundPlayer) {
	speed := p.speed * delta

	var dx, dy float64
	if input.Up() {
		dy = speed
	} else if input.Down() {
		dy = -speed
	}
	if input.Left() {
		dx = -speed
	} else if input.Right() {
		dx = speed
	}
	p.MovePosition(dx, dy)
	p.StayAtArea(p.moveArea)

	if input.Shoot() && p.fireTimer.Check(now, constant.PlayerLaserCooldown) {
		laser := NewLaser(p.Position.X+constant.LaserSpawnOffset, p.Position.Y, LaserGreen)
		p.lasers = append(p.lasers, laser)
		sounds.Laser()
	}

	p.updateLasers(delta, enemy, sounds)

	if p.contactTimer.Check(now, constant.ContactDamageInterval) {
		p.checkEnemyContact(enemy)
	}
}

// updateLasers advances every owned laser, resolves hits against the
// enemy, and sweeps out destroyed ones.
func (p *Player) updateLasers(delta float64, enemy *Enemy, sounds SoundPlayer) {
	for _, l := range p.lasers {
		l.Update(delta, p.despawnArea)
		if !l.Destroyed() && enemy.Visible() {
			enemy.resolvePlayerLaser(l, p.laserDamage, sounds)
		}
	}
	p.lasers = removeDestroyed(p.lasers)
}

// checkEnemyContact applies ramming damage once per contact window.
// Each overlapping part hurts separately: the body, and on a shielded
// enemy both cannons.
func (p *Player) checkEnemyContact(enemy *Enemy) {
	if !enemy.Visible() {
		return
	}
	if core.CircleCollision(&p.Data, &enemy.Data) {
		p.hurt(p.contactDamage)
	}
	if enemy.kind == EnemyShield {
		if core.CircleCollision(&p.Data, &enemy.cannonTop.Data) {
			p.hurt(p.contactDamage)
		}
		if core.CircleCollision(&p.Data, &enemy.cannonBottom.Data) {
			p.hurt(p.contactDamage)
		}
	}
}

func (p *Player) hurt(damage int) {
	p.health.update(-damage)
}

// Reset restores the player for a new level: position, health, timers,
// damage settings, and an empty laser list.
func (p *Player) Reset(now time.Time, settings LogicSettings) {
	p.SetPosition(constant.PlayerStartX, constant.PlayerStartY)
	p.visible = true
	p.health.reset()
	p.lasers = nil
	p.fireTimer.Reset(now)
	p.contactTimer.Reset(now)
	p.laserDamage = settings.PlayerLaserDamage
	p.contactDamage = settings.ContactDamage
}

func (p *Player) clearLasers() {
	p.lasers = nil
}

// Lasers returns the live laser list. The slice is valid until the
// next Update or Reset.
func (p *Player) Lasers() []*Laser {
	return p.lasers
}

// Visible reports whether the ship should be drawn
func (p *Player) Visible() bool {
	return p.visible
}

// Health returns the current hit points and whether they changed since
// the last call. Poll every tick; the change flag clears on read.
func (p *Player) Health() (int, bool) {
	return p.health.read()
}
