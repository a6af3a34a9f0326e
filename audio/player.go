package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/void-fighter/constant"
)

// events collects the sound requests raised during one simulation
// tick. Requests deduplicate, so a volley of three lasers is one zap.
type events struct {
	laser         bool
	explosion     bool
	bombLaunch    bool
	bombExplosion bool
	cannonHit     bool
}

// Player turns simulation sound events into beep streamers. Events
// queue until Update flushes them into the mixer, so the simulation
// never touches the speaker directly. A Player that was never
// initialized, or whose Init failed, swallows every event; the game
// runs silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
	soundOn     bool
	musicOn     bool
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVol    *effects.Volume
	musicVolume float64
	lastLaser   time.Time
	queued      events
}

// NewPlayer creates a Player with effects enabled and music stopped.
// No speaker is attached until Init.
func NewPlayer() *Player {
	return &Player{
		mixer:       &beep.Mixer{},
		soundOn:     true,
		musicVolume: 1.0,
	}
}

// Init opens the speaker and attaches the mixer. Failure is not fatal
// to the game; the caller logs it and plays on without audio.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true

	if p.musicOn {
		p.startMusicLocked()
	}
	return nil
}

// Cleanup stops all sounds. Beep has no speaker close, clearing the
// mixer is what keeps the device quiet.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	p.music = nil
	p.musicVol = nil
	p.initialized = false
}

// Laser queues the laser zap.
func (p *Player) Laser() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.laser = true
}

// Explosion queues the break-up burst.
func (p *Player) Explosion() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.explosion = true
}

// LaserBombLaunch queues the bomb launch whine.
func (p *Player) LaserBombLaunch() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.bombLaunch = true
}

// LaserBombExplosion queues the bomb fission thud.
func (p *Player) LaserBombExplosion() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.bombExplosion = true
}

// PlayerLaserHitsLaserCannon queues the cannon ping.
func (p *Player) PlayerLaserHitsLaserCannon() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.cannonHit = true
}

// Update flushes the queued events into the mixer. The driver calls it
// once per frame. The laser zap is rate limited to its own duration;
// a stream of volleys reads as one continuous fire sound instead of a
// stack of overlapping zaps.
func (p *Player) Update(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	queued := p.queued
	p.queued = events{}

	if !p.initialized || !p.soundOn {
		return
	}

	rate := beep.SampleRate(constant.AudioSampleRate)
	if queued.laser && now.Sub(p.lastLaser) >= constant.LaserSoundDuration {
		p.lastLaser = now
		p.mixer.Add(CreateLaserSound(rate))
	}
	if queued.explosion {
		p.mixer.Add(CreateExplosionSound(rate))
	}
	if queued.bombLaunch {
		p.mixer.Add(CreateBombLaunchSound(rate))
	}
	if queued.bombExplosion {
		p.mixer.Add(CreateBombExplosionSound(rate))
	}
	if queued.cannonHit {
		p.mixer.Add(CreateCannonHitSound(rate))
	}
}

// SetSoundEnabled gates effect playback. Queued events are still
// consumed while disabled, they just never reach the mixer.
func (p *Player) SetSoundEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.soundOn = on
}

// SetMusicEnabled starts or pauses the background loop. Enabling
// before Init is remembered; the loop starts once the speaker is up.
func (p *Player) SetMusicEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = on
	if !p.initialized {
		return
	}
	if on {
		p.startMusicLocked()
	} else if p.music != nil {
		p.music.Paused = true
	}
}

// SetMusicVolume sets the music loop volume on a 0 to 1 scale.
func (p *Player) SetMusicVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.musicVolume = v
	p.applyMusicVolumeLocked()
}

func (p *Player) startMusicLocked() {
	if p.music != nil {
		p.music.Paused = false
		return
	}

	loop := NewMusicGenerator(beep.SampleRate(constant.AudioSampleRate))
	p.musicVol = &effects.Volume{Streamer: loop, Base: 2}
	p.applyMusicVolumeLocked()
	p.music = &beep.Ctrl{Streamer: p.musicVol}
	p.mixer.Add(p.music)
}

func (p *Player) applyMusicVolumeLocked() {
	if p.musicVol == nil {
		return
	}
	if p.musicVolume <= 0 {
		p.musicVol.Volume = 0
		p.musicVol.Silent = true
		return
	}
	p.musicVol.Volume = math.Log2(p.musicVolume)
	p.musicVol.Silent = false
}
