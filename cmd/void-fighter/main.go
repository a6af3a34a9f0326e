package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/void-fighter/audio"
	"github.com/lixenwraith/void-fighter/settings"
	"github.com/lixenwraith/void-fighter/timing"
)

func main() {
	flags, err := settings.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(flags.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts, err := settings.Load(settings.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	flags.Apply(opts)
	applyColorMode(opts.Display.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Reset the terminal on both normal exit and panic; on panic the
	// error and stack go to stderr where they are visible again.
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\nvoid-fighter crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		// The game stays playable without a speaker.
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer player.Cleanup()
	}
	player.SetSoundEnabled(opts.Audio.Sound)
	player.SetMusicEnabled(opts.Audio.Music)
	player.SetMusicVolume(opts.Audio.MusicVolume)

	logger.Info("starting",
		zap.Bool("sound", opts.Audio.Sound),
		zap.Bool("music", opts.Audio.Music),
		zap.String("color_mode", opts.Display.ColorMode))

	game := newGame(screen, player, logger, opts, timing.NewMonotonicTimeProvider())
	game.run()

	if err := opts.Save(settings.DefaultPath); err != nil {
		logger.Error("failed to save settings", zap.Error(err))
	}
	logger.Info("exiting")
}

// applyColorMode steers tcell's color depth before screen creation.
// tcell upgrades to 24-bit color when COLORTERM says so and honors
// TCELL_TRUECOLOR=disable as the opt-out; auto leaves the environment
// alone.
func applyColorMode(mode string) {
	switch mode {
	case settings.ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	case settings.ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
