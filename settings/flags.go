package settings

import (
	"flag"
	"fmt"
)

// Flags are the command-line overrides. A flag only affects the
// current run; saving settings never writes a flag value back.
type Flags struct {
	ShowFps   bool
	Debug     bool
	ColorMode string
	Mute      bool
}

// ParseFlags reads the program arguments (without the program name)
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}

	fs := flag.NewFlagSet("void-fighter", flag.ContinueOnError)
	fs.BoolVar(&f.ShowFps, "fps", false, "show the frame counter")
	fs.BoolVar(&f.Debug, "debug", false, "write a debug log to logs/void-fighter.log")
	fs.StringVar(&f.ColorMode, "color", "", "color mode: auto, truecolor or 256")
	fs.BoolVar(&f.Mute, "mute", false, "start with sound and music off")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch f.ColorMode {
	case "", ColorModeAuto, ColorModeTrueColor, ColorMode256:
	default:
		return nil, fmt.Errorf("unknown color mode %q, want auto, truecolor or 256", f.ColorMode)
	}
	return f, nil
}

// Apply overlays the run-only overrides onto loaded settings
func (f *Flags) Apply(s *Settings) {
	if f.ShowFps {
		s.Display.ShowFps = true
	}
	if f.Mute {
		s.Audio.Sound = false
		s.Audio.Music = false
	}
	if f.ColorMode != "" {
		s.Display.ColorMode = f.ColorMode
	}
}
