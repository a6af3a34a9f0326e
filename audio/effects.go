package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-fighter/constant"
)

// Sound effect generators. Each returns a finite streamer at its mix
// volume; the Player decides when one enters the speaker mixer.

// CreateLaserSound generates the falling zap of a laser volley
func CreateLaserSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweepOscillator(constant.LaserSoundStartFreq, constant.LaserSoundEndFreq,
		constant.LaserSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.LaserSoundDuration, constant.LaserSoundAttack, constant.LaserSoundRelease, rate)

	return newVolume(shaped, 0.4)
}

// CreateExplosionSound generates the noise burst of a ship breaking up
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constant.ExplosionSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constant.ExplosionSoundDuration, constant.ExplosionSoundAttack, constant.ExplosionSoundRelease, rate)

	rumble := NewOscillator(constant.ExplosionRumbleFreq, constant.ExplosionSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constant.ExplosionSoundDuration, constant.ExplosionSoundAttack, constant.ExplosionSoundRelease, rate)

	// Crackle over a low body
	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(rumbleShaped, 0.5),
	)

	return newVolume(mixed, 0.8)
}

// CreateBombLaunchSound generates the rising whine of a bomb leaving
// its cannon
func CreateBombLaunchSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweepOscillator(constant.BombLaunchSoundStartFreq, constant.BombLaunchSoundEndFreq,
		constant.BombLaunchSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.BombLaunchSoundDuration, constant.BombLaunchSoundAttack, constant.BombLaunchSoundRelease, rate)

	return newVolume(shaped, 0.5)
}

// CreateBombExplosionSound generates the deep thud of a bomb fission
func CreateBombExplosionSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweepOscillator(constant.BombExplosionSoundStartFreq, constant.BombExplosionSoundEndFreq,
		constant.BombExplosionSoundDuration, WaveSine, rate)
	sweepShaped := NewEnvelope(sweep, constant.BombExplosionSoundDuration, constant.BombExplosionSoundAttack, constant.BombExplosionSoundRelease, rate)

	rumble := NewOscillator(constant.BombExplosionRumbleFreq, constant.BombExplosionSoundDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constant.BombExplosionSoundDuration, constant.BombExplosionSoundAttack, constant.BombExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sweepShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)

	return newVolume(mixed, 0.8)
}

// CreateCannonHitSound generates the metallic ping of a laser striking
// a cannon mount
func CreateCannonHitSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental
	fund := NewOscillator(constant.CannonHitSoundFreq, constant.CannonHitSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.CannonHitSoundDuration, constant.CannonHitSoundAttack, constant.CannonHitSoundRelease, rate)

	// Inharmonic partial, rings shorter than the fundamental
	over := NewOscillator(constant.CannonHitSoundOvertoneFreq, constant.CannonHitSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.CannonHitSoundDuration, constant.CannonHitSoundAttack, constant.CannonHitSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, 0.5)
}
