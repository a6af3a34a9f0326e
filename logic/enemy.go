package logic

import (
	"math"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
	"github.com/lixenwraith/void-fighter/timing"
)

// EnemyKind selects the boss behavior variant
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyShield
)

// Shield belongs to a shielded enemy and moves with it. While visible
// it absorbs player lasers before anything else; it drops once both
// cannons have lost their protection and recovers on a timer.
type Shield struct {
	core.Data
	visible  bool
	recovery timing.Timer
}

// Visible reports whether the shield is up
func (s *Shield) Visible() bool {
	return s.visible
}

// LaserCannon is one of the two gun pods on a shielded enemy. The
// protected flag tracks whether the parent shield still covers it;
// losing protection is what eventually drops the shield.
type LaserCannon struct {
	core.Data
	visible   bool
	protected bool
	canFire   bool

	fireTimer  timing.Timer
	blinkOn    bool
	blinkTimer timing.Timer
}

// hitByLaser absorbs a player laser. Only the first hit while still
// protected changes state and makes a sound; later hits are silent
// absorbs.
func (c *LaserCannon) hitByLaser(sounds SoundPlayer) {
	if c.protected {
		c.protected = false
		sounds.PlayerLaserHitsLaserCannon()
	}
}

func (c *LaserCannon) restoreProtection() {
	c.protected = true
	c.blinkOn = false
}

func (c *LaserCannon) reset(now time.Time, visible bool) {
	c.visible = visible
	c.protected = visible
	c.canFire = false
	c.blinkOn = false
	c.fireTimer.Reset(now)
	c.blinkTimer.Reset(now)
}

// Visible reports whether the cannon should be drawn
func (c *LaserCannon) Visible() bool {
	return c.visible
}

// Protected reports whether the parent shield still covers the cannon
func (c *LaserCannon) Protected() bool {
	return c.protected
}

// BlinkOn reports the warning-light phase of an unprotected cannon
func (c *LaserCannon) BlinkOn() bool {
	return c.blinkOn
}

// Enemy is the boss. Like the player it is created once and reset in
// place; the level table decides its kind, speed, and whether it
// launches laser bombs.
type Enemy struct {
	core.Data
	speed   float64
	visible bool
	kind    EnemyKind
	health  health

	difficulty       Difficulty
	laserDamage      int
	laserCooldown    time.Duration
	bombCooldownBase time.Duration
	bombsEnabled     bool

	laserTimer timing.Timer
	bombTimer  timing.Timer

	lasers []*Laser
	bombs  []*LaserBomb

	shield       Shield
	cannonTop    LaserCannon
	cannonBottom LaserCannon
	bombFromTop  bool

	moveArea    core.Area
	despawnArea core.Area
}

// NewEnemy creates the boss at its start position. Reset must run
// before the first Update to apply level and difficulty settings.
func NewEnemy(now time.Time) *Enemy {
	world := core.CenteredArea(constant.WorldHalfWidth, constant.WorldHalfHeight)
	e := &Enemy{
		Data:       core.NewData(constant.EnemyStartX, constant.EnemyStartY, constant.EnemyWidth, constant.EnemyHeight),
		visible:    true,
		health:     newHealth(constant.EnemyMaxHealth),
		laserTimer: timing.NewTimer(now),
		bombTimer:  timing.NewTimer(now),
		shield: Shield{
			Data:     core.NewData(constant.EnemyStartX, constant.EnemyStartY, constant.ShieldWidth, constant.ShieldHeight),
			recovery: timing.NewTimer(now),
		},
		cannonTop: LaserCannon{
			Data: core.NewData(constant.EnemyStartX, constant.EnemyStartY+constant.CannonOffsetY, constant.CannonWidth, constant.CannonHeight),
		},
		cannonBottom: LaserCannon{
			Data: core.NewData(constant.EnemyStartX, constant.EnemyStartY-constant.CannonOffsetY, constant.CannonWidth, constant.CannonHeight),
		},
		moveArea:    world.Grow(-constant.EnemyAreaMargin),
		despawnArea: world.Grow(constant.DespawnPadding),
	}
	e.cannonTop.reset(now, false)
	e.cannonBottom.reset(now, false)
	return e
}

// Update runs one simulation step: bounce movement, the laser volley,
// projectile sweeps against the player, bomb launches, and the
// shield/cannon subsystem.
func (e *Enemy) Update(now time.Time, delta float64, player *Player, sounds SoundPlayer) {
	e.MovePosition(0, e.speed*delta)
	if e.StayAtArea(e.moveArea) {
		e.speed = -e.speed
	}
	if e.kind == EnemyShield {
		e.syncParts()
	}

	if e.laserTimer.Check(now, e.laserCooldown) {
		e.fireVolley(sounds)
	}

	e.updateLasers(delta, player)

	if e.bombsEnabled {
		e.updateBombs(now, delta, player, sounds)
		if e.bombTimer.Check(now, e.bombCooldown()) {
			e.spawnBomb(now, sounds)
		}
	}

	if e.kind == EnemyShield {
		e.updateShieldAndCannons(now, sounds)
	}
}

// syncParts keeps the shield and cannons glued to the moving body
func (e *Enemy) syncParts() {
	e.shield.SetPosition(e.Position.X, e.Position.Y)
	e.cannonTop.SetPosition(e.Position.X, e.Position.Y+constant.CannonOffsetY)
	e.cannonBottom.SetPosition(e.Position.X, e.Position.Y-constant.CannonOffsetY)
}

// fireVolley shoots 1 to 3 fanned lasers. The straight shot always
// fires; the fan grows at the health thresholds, and a shielded enemy
// always fires the full fan.
func (e *Enemy) fireVolley(sounds SoundPlayer) {
	e.spawnLaser(math.Pi)

	three := e.kind == EnemyShield || e.health.value <= constant.VolleyThreeLasersHealth
	two := three || e.health.value <= constant.VolleyTwoLasersHealth
	if two {
		e.spawnLaser(math.Pi - constant.VolleyFanAngle)
	}
	if three {
		e.spawnLaser(math.Pi + constant.VolleyFanAngle)
	}

	sounds.Laser()
}

func (e *Enemy) spawnLaser(angle float64) {
	l := NewLaser(e.Position.X-constant.LaserSpawnOffset, e.Position.Y, LaserRed)
	l.Turn(angle)
	e.lasers = append(e.lasers, l)
}

func (e *Enemy) updateLasers(delta float64, player *Player) {
	for _, l := range e.lasers {
		l.Update(delta, e.despawnArea)
		if !l.Destroyed() && player.Visible() && core.CircleCollision(&l.Data, &player.Data) {
			player.hurt(e.laserDamage)
			l.MarkDestroyed()
		}
	}
	e.lasers = removeDestroyed(e.lasers)
}

func (e *Enemy) updateBombs(now time.Time, delta float64, player *Player, sounds SoundPlayer) {
	for _, b := range e.bombs {
		b.Update(delta, e.despawnArea)
		if b.Destroyed() {
			continue
		}
		if b.FuseExpired(now) {
			sounds.LaserBombExplosion()
			e.lasers = append(e.lasers, b.Explode()...)
			continue
		}
		if player.Visible() && core.CircleCollision(&b.Data, &player.Data) {
			player.hurt(constant.LaserBombDamage)
			b.MarkDestroyed()
		}
	}
	e.bombs = removeDestroyed(e.bombs)
}

// bombCooldown scales the launch cadence with remaining health. The
// half step needs normal difficulty or above, the quarter step hard.
func (e *Enemy) bombCooldown() time.Duration {
	cd := e.bombCooldownBase
	switch {
	case e.health.value <= constant.BombCadenceQuarterHealth && e.difficulty == DifficultyHard:
		cd /= 4
	case e.health.value <= constant.BombCadenceHalfHealth && e.difficulty >= DifficultyNormal:
		cd /= 2
	}
	return cd
}

// spawnBomb launches a bomb toward the player. A shielded enemy
// alternates the launch point between its cannons; a normal enemy
// launches from its center.
func (e *Enemy) spawnBomb(now time.Time, sounds SoundPlayer) {
	x, y := e.Position.X, e.Position.Y
	if e.kind == EnemyShield {
		if e.bombFromTop {
			x, y = e.cannonTop.Position.X, e.cannonTop.Position.Y
		} else {
			x, y = e.cannonBottom.Position.X, e.cannonBottom.Position.Y
		}
		e.bombFromTop = !e.bombFromTop
	}

	b := NewLaserBomb(now, x, y)
	b.Turn(math.Pi)
	e.bombs = append(e.bombs, b)
	sounds.LaserBombLaunch()
}

func (e *Enemy) updateShieldAndCannons(now time.Time, sounds SoundPlayer) {
	if e.shield.visible && !e.cannonTop.protected && !e.cannonBottom.protected {
		e.shield.visible = false
		e.shield.recovery.Reset(now)
	}

	if !e.shield.visible && e.shield.recovery.Check(now, constant.ShieldRecoveryDelay) {
		e.shield.visible = true
		e.cannonTop.restoreProtection()
		e.cannonBottom.restoreProtection()
	}

	e.cannonTop.canFire = e.health.value < constant.CannonUnlockTopHealth
	e.cannonBottom.canFire = e.health.value < constant.CannonUnlockBothHealth

	e.updateCannon(now, &e.cannonTop, sounds)
	e.updateCannon(now, &e.cannonBottom, sounds)
}

func (e *Enemy) updateCannon(now time.Time, c *LaserCannon, sounds SoundPlayer) {
	if !c.protected && c.blinkTimer.Check(now, constant.CannonBlinkInterval) {
		c.blinkOn = !c.blinkOn
	}
	if c.canFire && c.fireTimer.Check(now, constant.CannonFireCooldown) {
		l := NewLaser(c.Position.X-constant.CannonWidth, c.Position.Y, LaserRed)
		l.Turn(math.Pi)
		e.lasers = append(e.lasers, l)
		sounds.Laser()
	}
}

// resolvePlayerLaser applies one player laser to the enemy in part
// order: a visible shield absorbs first, then the bottom cannon, then
// the top cannon, and the body takes damage only while the shield is
// down. A normal enemy has only the body.
func (e *Enemy) resolvePlayerLaser(l *Laser, damage int, sounds SoundPlayer) {
	if e.kind == EnemyShield {
		if e.shield.visible && core.CircleCollision(&l.Data, &e.shield.Data) {
			l.MarkDestroyed()
			return
		}
		if core.CircleCollision(&l.Data, &e.cannonBottom.Data) {
			e.cannonBottom.hitByLaser(sounds)
			l.MarkDestroyed()
			return
		}
		if core.CircleCollision(&l.Data, &e.cannonTop.Data) {
			e.cannonTop.hitByLaser(sounds)
			l.MarkDestroyed()
			return
		}
		if e.shield.visible {
			return
		}
	}
	if core.CircleCollision(&l.Data, &e.Data) {
		e.health.update(-damage)
		l.MarkDestroyed()
	}
}

// Reset restores the boss for a level: placement, kind, speed, bombs,
// health, timers, settings, and empty projectile lists.
func (e *Enemy) Reset(now time.Time, cfg LevelConfig, settings LogicSettings) {
	e.SetPosition(constant.EnemyStartX, constant.EnemyStartY)
	e.speed = cfg.Speed
	e.kind = cfg.Kind
	e.bombsEnabled = cfg.LaserBombs
	e.visible = true
	e.health.reset()
	e.lasers = nil
	e.bombs = nil
	e.laserTimer.Reset(now)
	e.bombTimer.Reset(now)
	e.bombFromTop = false

	e.difficulty = settings.Difficulty
	e.laserDamage = settings.EnemyLaserDamage
	e.laserCooldown = settings.EnemyLaserCooldown
	e.bombCooldownBase = settings.LaserBombCooldown

	shielded := cfg.Kind == EnemyShield
	e.shield.visible = shielded
	e.shield.recovery.Reset(now)
	e.cannonTop.reset(now, shielded)
	e.cannonBottom.reset(now, shielded)
	e.syncParts()
}

func (e *Enemy) clearProjectiles() {
	e.lasers = nil
	e.bombs = nil
}

// Kind returns the behavior variant chosen by the level table
func (e *Enemy) Kind() EnemyKind {
	return e.kind
}

// Visible reports whether the boss should be drawn
func (e *Enemy) Visible() bool {
	return e.visible
}

// Health returns the current hit points and whether they changed since
// the last call. Poll every tick; the change flag clears on read.
func (e *Enemy) Health() (int, bool) {
	return e.health.read()
}

// Lasers returns the live laser list, fission children included. The
// slice is valid until the next Update or Reset.
func (e *Enemy) Lasers() []*Laser {
	return e.lasers
}

// Bombs returns the live bomb list. The slice is valid until the next
// Update or Reset.
func (e *Enemy) Bombs() []*LaserBomb {
	return e.bombs
}

// Shield returns the shield sub-object for rendering
func (e *Enemy) Shield() *Shield {
	return &e.shield
}

// CannonTop returns the upper cannon for rendering
func (e *Enemy) CannonTop() *LaserCannon {
	return &e.cannonTop
}

// CannonBottom returns the lower cannon for rendering
func (e *Enemy) CannonBottom() *LaserCannon {
	return &e.cannonBottom
}
