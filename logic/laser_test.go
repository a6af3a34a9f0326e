package logic

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
)

func despawnArea() core.Area {
	return core.CenteredArea(constant.WorldHalfWidth, constant.WorldHalfHeight).Grow(constant.DespawnPadding)
}

func TestLaserMovesAlongHeading(t *testing.T) {
	l := NewLaser(0, 0, LaserGreen)

	l.Update(1.0, despawnArea())
	if !almostEqual(l.Position.X, constant.LaserSpeed) || !almostEqual(l.Position.Y, 0) {
		t.Errorf("Expected (%v, 0), got (%v, %v)", constant.LaserSpeed, l.Position.X, l.Position.Y)
	}

	// Delta scales the step.
	l.Update(2.0, despawnArea())
	if !almostEqual(l.Position.X, 3*constant.LaserSpeed) {
		t.Errorf("Expected x %v after delta 2, got %v", 3*constant.LaserSpeed, l.Position.X)
	}
}

func TestLaserDespawnsOutsidePaddedArea(t *testing.T) {
	// One step from the padded boundary: the same update that carries
	// it past must destroy it.
	l := NewLaser(constant.WorldHalfWidth+constant.DespawnPadding-0.05, 0, LaserGreen)

	l.Update(1.0, despawnArea())
	if !l.Destroyed() {
		t.Errorf("Expected laser destroyed at x=%v", l.Position.X)
	}
}

func TestLaserInsidePaddingSurvives(t *testing.T) {
	// Past the screen edge but inside the padding is still alive.
	l := NewLaser(constant.WorldHalfWidth+0.2, 0, LaserRed)
	l.Turn(math.Pi)

	l.Update(1.0, despawnArea())
	if l.Destroyed() {
		t.Error("Expected laser inside the padded area to survive")
	}
}

func TestLaserBombFuse(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := NewLaserBomb(base, 0, 0)

	if b.FuseExpired(base.Add(constant.LaserBombFuse - time.Millisecond)) {
		t.Error("Expected fuse still burning just before expiry")
	}
	if !b.FuseExpired(base.Add(constant.LaserBombFuse)) {
		t.Error("Expected fuse expired at the fuse interval")
	}
}

func TestLaserBombFission(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := NewLaserBomb(base, 2, -1)
	b.Turn(math.Pi)

	children := b.Explode()

	if len(children) != constant.LaserBombFissionCount {
		t.Fatalf("Expected %d children, got %d", constant.LaserBombFissionCount, len(children))
	}
	if !b.Destroyed() {
		t.Error("Expected bomb destroyed after fission")
	}

	step := 2 * math.Pi / float64(constant.LaserBombFissionCount)
	for i, child := range children {
		want := math.Pi + float64(i)*step
		if !almostEqual(child.Rotation, want) {
			t.Errorf("Child %d rotation = %v, want %v", i, child.Rotation, want)
		}
		if !almostEqual(child.Position.X, 2) || !almostEqual(child.Position.Y, -1) {
			t.Errorf("Child %d spawned at (%v, %v), want (2, -1)", i, child.Position.X, child.Position.Y)
		}
		if child.Color() != LaserRed {
			t.Errorf("Child %d color = %v, want LaserRed", i, child.Color())
		}
	}
}

func TestRemoveDestroyedKeepsOrder(t *testing.T) {
	a := NewLaser(0, 0, LaserGreen)
	b := NewLaser(1, 0, LaserGreen)
	c := NewLaser(2, 0, LaserGreen)
	d := NewLaser(3, 0, LaserGreen)
	b.MarkDestroyed()
	d.MarkDestroyed()

	kept := removeDestroyed([]*Laser{a, b, c, d})

	if len(kept) != 2 || kept[0] != a || kept[1] != c {
		t.Errorf("Expected [a c], got %d lasers", len(kept))
	}
}

const epsilonTest = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilonTest
}
