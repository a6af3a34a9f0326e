package logic

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
	"github.com/lixenwraith/void-fighter/timing"
)

// Particle is one short-lived explosion fragment flying outward on a
// random heading.
type Particle struct {
	core.Data
	speed    float64
	lifetime time.Duration
	born     timing.Timer
	destroy  bool
}

// newParticle spawns a fragment at the burst position. The heading is
// set without touching the pose: particles render as points, so only
// the movement direction matters.
func newParticle(now time.Time, x, y float64, rng *rand.Rand) *Particle {
	p := &Particle{
		Data: core.NewData(x, y, constant.ParticleWidth, constant.ParticleHeight),
		speed: constant.ParticleSpeedMin +
			rng.Float64()*(constant.ParticleSpeedMax-constant.ParticleSpeedMin),
		lifetime: constant.ParticleLifetimeMin +
			time.Duration(rng.Float64()*float64(constant.ParticleLifetimeMax-constant.ParticleLifetimeMin)),
		born: timing.NewTimer(now),
	}
	p.TurnWithoutPoseSync(rng.Float64() * 2 * math.Pi)
	return p
}

// Update moves the fragment and expires it after its lifetime. Speed
// is in world units per millisecond, so it scales by the frame length
// as well as the delta.
func (p *Particle) Update(now time.Time, delta float64) {
	p.Forward(p.speed * constant.ParticleSpeedScale * delta)
	if p.born.Elapsed(now) >= p.lifetime {
		p.destroy = true
	}
}

// Destroyed reports whether the fragment is waiting for cleanup
func (p *Particle) Destroyed() bool {
	return p.destroy
}

// Explosion is the shared death effect. It is created once and
// retargeted with Start for whichever entity dies.
type Explosion struct {
	position  core.Vec
	visible   bool
	lifetime  timing.Timer
	cadence   timing.Timer
	particles []*Particle
	rng       *rand.Rand
}

// NewExplosion creates a hidden explosion using the given random
// source for particle spread
func NewExplosion(now time.Time, rng *rand.Rand) *Explosion {
	return &Explosion{
		lifetime: timing.NewTimer(now),
		cadence:  timing.NewTimer(now),
		rng:      rng,
	}
}

// Start snaps the explosion to a position, shows it, clears leftover
// particles, and rewinds both timers.
func (e *Explosion) Start(now time.Time, x, y float64) {
	e.position = core.Vec{X: x, Y: y}
	e.visible = true
	e.particles = nil
	e.lifetime.Reset(now)
	e.cadence.Reset(now)
}

// Update advances and culls particles, and spawns a new burst each
// time the cadence timer fires, with a sound per burst.
func (e *Explosion) Update(now time.Time, delta float64, sounds SoundPlayer) {
	if !e.visible {
		return
	}

	for _, p := range e.particles {
		p.Update(now, delta)
	}
	e.particles = removeDestroyed(e.particles)

	if e.cadence.Check(now, constant.ParticleBurstInterval) {
		for i := 0; i < constant.ParticleBurstCount; i++ {
			e.particles = append(e.particles, newParticle(now, e.position.X, e.position.Y, e.rng))
		}
		sounds.Explosion()
	}
}

// Finished reports whether the full lifetime elapsed since Start,
// hiding the explosion as a side effect once it has.
func (e *Explosion) Finished(now time.Time) bool {
	if !e.visible {
		return true
	}
	if e.lifetime.Elapsed(now) >= constant.ExplosionLifetime {
		e.visible = false
		return true
	}
	return false
}

// Visible reports whether the explosion should be drawn
func (e *Explosion) Visible() bool {
	return e.visible
}

// Position returns the burst center
func (e *Explosion) Position() core.Vec {
	return e.position
}

// Particles returns the live fragment list. The slice is valid until
// the next Update or Start.
func (e *Explosion) Particles() []*Particle {
	return e.particles
}
