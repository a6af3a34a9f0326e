package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000
	AudioChannels   = 2
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Laser Shot Sound (falling zap)
const (
	LaserSoundDuration  = 120 * time.Millisecond
	LaserSoundAttack    = 2 * time.Millisecond
	LaserSoundRelease   = 80 * time.Millisecond
	LaserSoundStartFreq = 880.0 // Hz
	LaserSoundEndFreq   = 220.0 // Hz
)

// Explosion Sound (noise burst over a low rumble)
const (
	ExplosionSoundDuration = 600 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 450 * time.Millisecond
	ExplosionRumbleFreq    = 55.0 // Hz
)

// Laser Bomb Launch Sound (rising sweep as the bomb leaves the cannon)
const (
	BombLaunchSoundDuration  = 250 * time.Millisecond
	BombLaunchSoundAttack    = 5 * time.Millisecond
	BombLaunchSoundRelease   = 180 * time.Millisecond
	BombLaunchSoundStartFreq = 110.0 // Hz
	BombLaunchSoundEndFreq   = 440.0 // Hz
)

// Laser Bomb Explosion Sound (deeper and shorter than a ship explosion)
const (
	BombExplosionSoundDuration  = 500 * time.Millisecond
	BombExplosionSoundAttack    = 5 * time.Millisecond
	BombExplosionSoundRelease   = 400 * time.Millisecond
	BombExplosionSoundStartFreq = 196.0 // Hz
	BombExplosionSoundEndFreq   = 49.0  // Hz
	BombExplosionRumbleFreq     = 40.0  // Hz
)

// Cannon Hit Sound (player laser pings off a laser cannon)
const (
	CannonHitSoundDuration        = 90 * time.Millisecond
	CannonHitSoundAttack          = 2 * time.Millisecond
	CannonHitSoundRelease         = 60 * time.Millisecond
	CannonHitSoundFreq            = 660.0  // Hz
	CannonHitSoundOvertoneFreq    = 1780.0 // Hz, inharmonic partial for the metallic ring
	CannonHitSoundOvertoneRelease = 40 * time.Millisecond
)

// Procedural Music
const (
	MusicTempoBPM     = 96
	MusicBeatDuration = time.Minute / MusicTempoBPM
	MusicBeatsPerBar  = 4
	MusicBassFreq     = 110.0 // Hz, A2 root
	MusicBassGain     = 0.15
	MusicKickDuration = 100 * time.Millisecond
	MusicKickFreq     = 60.0 // Hz
	MusicKickGain     = 0.4
)
