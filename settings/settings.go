// Package settings loads and persists the player-facing options. The
// file is plain TOML next to the binary; command-line flags override
// single options for one run without touching the file.
package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the settings file location relative to the working
// directory.
const DefaultPath = "settings.toml"

// Color mode values for DisplaySettings.ColorMode
const (
	ColorModeAuto      = "auto"
	ColorModeTrueColor = "truecolor"
	ColorMode256       = "256"
)

// Settings is the settings.toml document
type Settings struct {
	Audio   AudioSettings   `toml:"audio"`
	Display DisplaySettings `toml:"display"`
}

type AudioSettings struct {
	Sound       bool    `toml:"sound"`
	Music       bool    `toml:"music"`
	MusicVolume float64 `toml:"music_volume"` // 0.0-1.0
}

type DisplaySettings struct {
	ShowFps   bool   `toml:"show_fps"`
	ColorMode string `toml:"color_mode"` // auto, truecolor or 256
}

// Defaults returns the settings of a first run
func Defaults() *Settings {
	return &Settings{
		Audio: AudioSettings{
			Sound:       true,
			Music:       true,
			MusicVolume: 1.0,
		},
		Display: DisplaySettings{
			ShowFps:   false,
			ColorMode: ColorModeAuto,
		},
	}
}

// Load reads the settings file. A missing file is not an error: the
// defaults come back and the first save creates the file. Options
// absent from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	s := Defaults()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// normalize clamps values a hand-edited file can push out of range
func (s *Settings) normalize() {
	if s.Audio.MusicVolume < 0 {
		s.Audio.MusicVolume = 0
	}
	if s.Audio.MusicVolume > 1 {
		s.Audio.MusicVolume = 1
	}

	switch s.Display.ColorMode {
	case ColorModeAuto, ColorModeTrueColor, ColorMode256:
	default:
		s.Display.ColorMode = ColorModeAuto
	}
}
