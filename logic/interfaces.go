// Package logic is the simulation core: the entities, their combat
// rules, and the orchestrator that steps them once per fixed tick.
// It owns no rendering, input, or audio code; those collaborators are
// reached through the interfaces below.
package logic

// InputState is the per-tick key snapshot the simulation reads.
// Held-state queries stay true as long as the key is down; the input
// layer owns the terminal-specific emulation behind that.
type InputState interface {
	Up() bool
	Down() bool
	Left() bool
	Right() bool
	Shoot() bool
}

// SoundPlayer receives fire-and-forget sound events. Implementations
// may queue and flush on their own schedule; the simulation never
// blocks on audio.
type SoundPlayer interface {
	Laser()
	Explosion()
	LaserBombLaunch()
	LaserBombExplosion()
	PlayerLaserHitsLaserCannon()
}

// NopSoundPlayer discards every event. Used when audio failed to
// initialize and in tests that do not assert on sound.
type NopSoundPlayer struct{}

func (NopSoundPlayer) Laser()                      {}
func (NopSoundPlayer) Explosion()                  {}
func (NopSoundPlayer) LaserBombLaunch()            {}
func (NopSoundPlayer) LaserBombExplosion()         {}
func (NopSoundPlayer) PlayerLaserHitsLaserCannon() {}
