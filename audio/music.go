package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/void-fighter/constant"
)

// bassline is the arpeggio stepped once per beat, as multiples of the
// root frequency. Root, minor third, fifth, octave.
var bassline = [constant.MusicBeatsPerBar]float64{1.0, 1.1892, 1.4983, 2.0}

// MusicGenerator streams an endless bass arpeggio with a kick on the
// first beat of each bar.
type MusicGenerator struct {
	sr          beep.SampleRate
	pos         int
	beatSamples int
	kickSamples int
}

// NewMusicGenerator creates the background music streamer.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:          sr,
		beatSamples: sr.N(constant.MusicBeatDuration),
		kickSamples: sr.N(constant.MusicKickDuration),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	barSamples := g.beatSamples * constant.MusicBeatsPerBar
	for i := range samples {
		barPos := g.pos % barSamples
		beat := barPos / g.beatSamples
		beatPos := barPos % g.beatSamples
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on beat 1
		kick := 0.0
		if beat == 0 && beatPos < g.kickSamples {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickSamples)
			kickFreq := constant.MusicKickFreq * (1 + 2*kickEnv)
			kick = constant.MusicKickGain * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Bass walks the arpeggio, one note per beat
		freq := constant.MusicBassFreq * bassline[beat]
		bass := constant.MusicBassGain * math.Sin(2*math.Pi*freq*t)

		sample := kick + bass

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
