package constant

import (
	"math"
	"time"
)

// Health
const (
	PlayerMaxHealth = 100
	EnemyMaxHealth  = 100
)

// Player combat
const (
	// PlayerLaserCooldown is the minimum time between player shots.
	// Difficulty does not change it.
	PlayerLaserCooldown = 300 * time.Millisecond

	// ContactDamageInterval is the cadence of body-contact damage
	// while the player overlaps the enemy or a cannon.
	ContactDamageInterval = 16 * time.Millisecond
)

// Enemy volley
const (
	// VolleyFanAngle separates the outer lasers of a fan from the
	// straight π heading.
	VolleyFanAngle = 0.1 * math.Pi

	// VolleyTwoLasersHealth / VolleyThreeLasersHealth are the health
	// thresholds at which a Normal-kind enemy grows its fan.
	VolleyTwoLasersHealth   = 66
	VolleyThreeLasersHealth = 33
)

// Laser bombs
const (
	// LaserBombFuse is the countdown from launch to fission.
	LaserBombFuse = 900 * time.Millisecond

	// LaserBombDamage is applied to the player on direct contact.
	LaserBombDamage = 30

	// LaserBombFissionCount lasers spread evenly over a full circle
	// when the fuse expires.
	LaserBombFissionCount = 15

	// BombCadenceHalfHealth / BombCadenceQuarterHealth gate the
	// health-driven launch speedups. The half step needs Normal
	// difficulty or above, the quarter step Hard.
	BombCadenceHalfHealth    = 40
	BombCadenceQuarterHealth = 20
)

// Shield and cannons
const (
	// ShieldRecoveryDelay is how long a disabled shield stays down.
	ShieldRecoveryDelay = 10 * time.Second

	// CannonBlinkInterval toggles the warning light of an unprotected
	// cannon.
	CannonBlinkInterval = 400 * time.Millisecond

	// CannonFireCooldown is the per-cannon shot cadence once firing
	// is unlocked.
	CannonFireCooldown = 1200 * time.Millisecond

	// CannonUnlockTopHealth / CannonUnlockBothHealth are the parent
	// health thresholds that unlock cannon fire.
	CannonUnlockTopHealth  = 60
	CannonUnlockBothHealth = 30
)

// Explosions
const (
	// ExplosionLifetime is the total run time of one explosion.
	ExplosionLifetime = 2000 * time.Millisecond

	// ParticleBurstInterval is the cadence of particle bursts while an
	// explosion is visible.
	ParticleBurstInterval = 500 * time.Millisecond

	// ParticleBurstCount particles spawn per burst.
	ParticleBurstCount = 15

	// Particle lifetimes are drawn uniformly from this range.
	ParticleLifetimeMin = 500 * time.Millisecond
	ParticleLifetimeMax = 900 * time.Millisecond

	// Particle speeds are drawn uniformly from this range, in world
	// units per millisecond.
	ParticleSpeedMin = 0.01
	ParticleSpeedMax = 0.03

	// ParticleSpeedScale converts per-millisecond particle speed to
	// per-frame movement (delta is in 16 ms frames).
	ParticleSpeedScale = float64(LogicFrameMillis)
)

// Levels
const (
	// LevelCount fixes the valid level indices to 0..LevelCount-1.
	LevelCount = 4
)
