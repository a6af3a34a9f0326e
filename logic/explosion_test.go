package logic

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
)

func TestParticleExpiryBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := newParticle(testStart, 0, 0, rng)

	p.Update(testStart.Add(constant.ParticleLifetimeMin-time.Millisecond), 1.0)
	if p.Destroyed() {
		t.Fatal("Expected the particle alive before the minimum lifetime")
	}

	p.Update(testStart.Add(constant.ParticleLifetimeMax), 1.0)
	if !p.Destroyed() {
		t.Fatal("Expected the particle expired at the maximum lifetime")
	}
}

func TestParticleMovesAtItsSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := newParticle(testStart, 1.0, -2.0, rng)

	p.Update(testStart.Add(16*time.Millisecond), 2.0)

	dx := p.Position.X - 1.0
	dy := p.Position.Y + 2.0
	want := p.speed * constant.ParticleSpeedScale * 2.0
	if got := math.Hypot(dx, dy); !almostEqual(got, want) {
		t.Errorf("Expected travel distance %v, got %v", want, got)
	}
	if p.speed < constant.ParticleSpeedMin || p.speed >= constant.ParticleSpeedMax {
		t.Errorf("Particle speed %v outside spawn range", p.speed)
	}
}

func TestExplosionBurstCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ex := NewExplosion(testStart, rng)
	rec := &soundRecorder{}
	ex.Start(testStart, 1.0, -2.0)

	ex.Update(testStart.Add(constant.ParticleBurstInterval-time.Millisecond), 1.0, rec)
	if len(ex.Particles()) != 0 {
		t.Fatalf("Expected no burst before the interval, got %d particles", len(ex.Particles()))
	}
	if rec.explosion != 0 {
		t.Fatalf("Expected no burst sound yet, got %d", rec.explosion)
	}

	ex.Update(testStart.Add(constant.ParticleBurstInterval), 1.0, rec)
	if len(ex.Particles()) != constant.ParticleBurstCount {
		t.Fatalf("Expected %d particles after the first burst, got %d", constant.ParticleBurstCount, len(ex.Particles()))
	}
	if rec.explosion != 1 {
		t.Errorf("Expected one burst sound, got %d", rec.explosion)
	}
	for i, p := range ex.Particles() {
		if !almostEqual(p.Position.X, 1.0) || !almostEqual(p.Position.Y, -2.0) {
			t.Fatalf("Particle %d spawned at (%v, %v), want the burst center", i, p.Position.X, p.Position.Y)
		}
	}

	// Fresh fragments outlive one interval, so the second burst stacks.
	ex.Update(testStart.Add(2*constant.ParticleBurstInterval), 1.0, rec)
	if len(ex.Particles()) != 2*constant.ParticleBurstCount {
		t.Errorf("Expected %d particles after the second burst, got %d", 2*constant.ParticleBurstCount, len(ex.Particles()))
	}
	if rec.explosion != 2 {
		t.Errorf("Expected two burst sounds, got %d", rec.explosion)
	}
}

func TestExplosionFinishedAfterLifetime(t *testing.T) {
	ex := NewExplosion(testStart, rand.New(rand.NewSource(42)))
	ex.Start(testStart, 0, 0)

	if ex.Finished(testStart.Add(constant.ExplosionLifetime - time.Millisecond)) {
		t.Fatal("Expected the explosion still running before its lifetime")
	}
	if !ex.Visible() {
		t.Fatal("Expected the explosion visible while running")
	}

	if !ex.Finished(testStart.Add(constant.ExplosionLifetime)) {
		t.Fatal("Expected the explosion finished at its lifetime")
	}
	if ex.Visible() {
		t.Error("Expected the explosion hidden once finished")
	}
	if !ex.Finished(testStart.Add(constant.ExplosionLifetime)) {
		t.Error("Expected a hidden explosion to stay finished")
	}
}

func TestExplosionStartRetargets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ex := NewExplosion(testStart, rng)
	rec := &soundRecorder{}

	ex.Start(testStart, 1.0, 1.0)
	ex.Update(testStart.Add(constant.ParticleBurstInterval), 1.0, rec)
	if len(ex.Particles()) == 0 {
		t.Fatal("Expected particles from the first run")
	}

	restartAt := testStart.Add(3 * time.Second)
	ex.Start(restartAt, -2.0, 0.5)

	if got := ex.Position(); !almostEqual(got.X, -2.0) || !almostEqual(got.Y, 0.5) {
		t.Errorf("Expected position (-2, 0.5), got (%v, %v)", got.X, got.Y)
	}
	if len(ex.Particles()) != 0 {
		t.Errorf("Expected leftover particles cleared, got %d", len(ex.Particles()))
	}
	if !ex.Visible() {
		t.Error("Expected the explosion visible again")
	}

	// Both timers rewound: no burst and no finish right after Start.
	ex.Update(restartAt.Add(time.Millisecond), 1.0, rec)
	if len(ex.Particles()) != 0 {
		t.Errorf("Expected no burst right after restart, got %d particles", len(ex.Particles()))
	}
	if ex.Finished(restartAt.Add(time.Millisecond)) {
		t.Error("Expected the restarted explosion unfinished")
	}
}

func TestExplosionHiddenIsInert(t *testing.T) {
	ex := NewExplosion(testStart, rand.New(rand.NewSource(42)))
	rec := &soundRecorder{}

	ex.Update(testStart.Add(time.Second), 1.0, rec)

	if len(ex.Particles()) != 0 || rec.explosion != 0 {
		t.Error("Expected a never-started explosion to do nothing")
	}
	if !ex.Finished(testStart.Add(time.Second)) {
		t.Error("Expected a hidden explosion to report finished")
	}
}
