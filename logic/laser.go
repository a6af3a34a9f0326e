package logic

import (
	"math"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
	"github.com/lixenwraith/void-fighter/timing"
)

// LaserColor tags a laser for rendering only; it has no effect on
// simulation behavior.
type LaserColor int

const (
	LaserGreen LaserColor = iota // player shots
	LaserRed                     // enemy shots and fission children
	LaserBlue                    // laser bombs
)

// Laser is a transient projectile moving along its facing direction.
// Once the destroy flag is set the owner's next cleanup sweep removes
// it; the flag is never cleared.
type Laser struct {
	core.Data
	speed   float64
	color   LaserColor
	destroy bool
}

// NewLaser creates a standard-size laser facing positive x
func NewLaser(x, y float64, color LaserColor) *Laser {
	l := newLaserBase(x, y, constant.LaserWidth, constant.LaserHeight, constant.LaserSpeed, color)
	return &l
}

func newLaserBase(x, y, width, height, speed float64, color LaserColor) Laser {
	return Laser{
		Data:  core.NewData(x, y, width, height),
		speed: speed,
		color: color,
	}
}

// Update moves the laser and destroys it once it leaves the despawn
// area
func (l *Laser) Update(delta float64, despawnArea core.Area) {
	l.Forward(l.speed * delta)
	if l.OutsideArea(despawnArea) {
		l.destroy = true
	}
}

// Destroyed reports whether the laser is waiting for cleanup
func (l *Laser) Destroyed() bool {
	return l.destroy
}

// MarkDestroyed flags the laser for the next cleanup sweep
func (l *Laser) MarkDestroyed() {
	l.destroy = true
}

// Color returns the render tag
func (l *Laser) Color() LaserColor {
	return l.color
}

// LaserBomb wraps a laser with a fuse. It flies like a slow laser
// until the fuse expires, then splits into a ring of lasers.
type LaserBomb struct {
	Laser
	fuse timing.Timer
}

// NewLaserBomb creates a bomb with its fuse lit at the given instant
func NewLaserBomb(now time.Time, x, y float64) *LaserBomb {
	return &LaserBomb{
		Laser: newLaserBase(x, y, constant.LaserBombWidth, constant.LaserBombHeight, constant.LaserBombSpeed, LaserBlue),
		fuse:  timing.NewTimer(now),
	}
}

// FuseExpired reports whether the fuse ran out. The owner explodes the
// bomb on the first true result, so the timer reset inside is moot.
func (b *LaserBomb) FuseExpired(now time.Time) bool {
	return b.fuse.Check(now, constant.LaserBombFuse)
}

// Explode spawns the fission ring and destroys the bomb: lasers fanned
// evenly over the full circle, the first aligned with the bomb's own
// heading.
func (b *LaserBomb) Explode() []*Laser {
	step := 2 * math.Pi / float64(constant.LaserBombFissionCount)

	children := make([]*Laser, 0, constant.LaserBombFissionCount)
	for i := 0; i < constant.LaserBombFissionCount; i++ {
		l := NewLaser(b.Position.X, b.Position.Y, LaserRed)
		l.Turn(b.Rotation + float64(i)*step)
		children = append(children, l)
	}

	b.destroy = true
	return children
}

// removeDestroyed filters a projectile or particle list in place,
// keeping order and dropping trailing references.
func removeDestroyed[T interface{ Destroyed() bool }](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Destroyed() {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
