package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/void-fighter/audio"
	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/gui"
	"github.com/lixenwraith/void-fighter/input"
	"github.com/lixenwraith/void-fighter/logic"
	"github.com/lixenwraith/void-fighter/render"
	"github.com/lixenwraith/void-fighter/settings"
	"github.com/lixenwraith/void-fighter/timing"
)

// Game wires the simulation, the UI state machine, the renderer, and
// the audio player to one terminal screen and drives them from a
// single loop.
type Game struct {
	screen tcell.Screen
	logger *zap.Logger
	opts   *settings.Settings
	time   timing.TimeProvider

	logic    *logic.Logic
	ui       *gui.GUI
	hud      *gui.HUD
	renderer *render.Renderer
	audio    *audio.Player

	keyboard *input.Keyboard
	clock    *timing.GameTimeManager
	loop     *timing.GameLoopTimer
	fps      *timing.FpsCounter
}

// newGame assembles a game around an initialized screen. The
// simulation is constructed at the zero instant because it runs on the
// pause-insensitive game clock, which starts there; every other
// component runs on wall time.
func newGame(screen tcell.Screen, player *audio.Player, logger *zap.Logger, opts *settings.Settings, tp timing.TimeProvider) *Game {
	now := tp.Now()
	rng := rand.New(rand.NewSource(now.UnixNano()))

	g := &Game{
		screen: screen,
		logger: logger,
		opts:   opts,
		time:   tp,

		logic:    logic.NewLogic(time.Time{}, player, rng),
		ui:       gui.NewGUI(),
		hud:      gui.NewHUD(),
		renderer: render.NewRenderer(screen),
		audio:    player,

		keyboard: input.NewKeyboard(now),
		clock:    timing.NewGameTimeManager(now),
		loop:     timing.NewGameLoopTimer(now, constant.LogicUpdateInterval),
		fps:      timing.NewFpsCounter(now),
	}
	g.syncSettingsLabels()
	return g
}

// run owns the driver loop until the player quits. Terminal events
// arrive over a channel from the poller goroutine; a ticker paces the
// frames.
func (g *Game) run() {
	events := make(chan tcell.Event, constant.EventChannelSize)
	go g.pollEvents(events)

	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !g.frame() {
				return
			}
		}
	}
}

// pollEvents forwards terminal events to the driver loop. It carries
// its own recovery so a poller crash still resets the terminal.
func (g *Game) pollEvents(events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			g.screen.Fini()
			fmt.Fprintf(os.Stderr, "\nevent poller crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// handleEvent records one terminal event. Ctrl-C quits from anywhere;
// everything else feeds the keyboard and is consumed on the next
// frame.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			g.logger.Info("quit on ctrl-c")
			return false
		}
		g.keyboard.HandleKey(g.time.Now(), ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// frame runs one driver iteration: menu input, clocks, at most one
// logic tick, audio flush, render. Returns false when the game should
// exit.
func (g *Game) frame() bool {
	now := g.time.Now()

	g.keyboard.Update(now)
	cmd := g.ui.HandleInput(g.keyboard)

	// The clock update comes before the command so a game started from
	// a menu is reset with the just-resumed game time.
	g.clock.Update(now, g.ui.UpdateGame())
	if !g.applyCommand(cmd) {
		return false
	}

	g.loop.Update(now)
	if g.ui.UpdateGame() && g.loop.UpdateLogic() {
		g.logic.Update(g.clock.GameTime(), g.clock.Delta(), g.keyboard.State())
		g.ui.ApplyLogicEvent(g.logic.TakeEvent())
	}
	g.hud.Poll(g.logic)

	g.audio.Update(now)

	if g.loop.DropFrame() {
		g.fps.FrameDrop()
	} else {
		g.renderer.RenderFrame(g.logic, g.ui, g.hud, g.fps.Fps(), g.opts.Display.ShowFps)
		g.fps.Frame()
	}
	if g.fps.Update(now) {
		g.logger.Debug("fps",
			zap.Int("fps", g.fps.Fps()),
			zap.Int("drops", g.fps.FrameDrops()))
	}
	return true
}

// applyCommand executes one menu command. Returns false on quit.
func (g *Game) applyCommand(cmd gui.Command) bool {
	switch cmd {
	case gui.CommandNone:

	case gui.CommandQuit:
		g.logger.Info("quit from menu")
		return false

	case gui.CommandNewGame:
		if err := g.logic.ResetGame(g.clock.GameTime(), g.ui.Difficulty(), 0); err != nil {
			g.logger.Error("new game reset failed", zap.Error(err))
			return true
		}
		g.logger.Info("new game", zap.Stringer("difficulty", g.ui.Difficulty()))

	case gui.CommandNextLevel:
		if err := g.logic.ResetToNextLevel(g.clock.GameTime()); err != nil {
			g.logger.Error("next level reset failed", zap.Error(err))
			return true
		}
		g.logger.Info("next level", zap.Int("level", g.logic.Level()))

	case gui.CommandToggleSound:
		g.opts.Audio.Sound = !g.opts.Audio.Sound
		g.audio.SetSoundEnabled(g.opts.Audio.Sound)
		g.syncSettingsLabels()
		g.logger.Info("sound toggled", zap.Bool("enabled", g.opts.Audio.Sound))

	case gui.CommandToggleMusic:
		g.opts.Audio.Music = !g.opts.Audio.Music
		g.audio.SetMusicEnabled(g.opts.Audio.Music)
		g.syncSettingsLabels()
		g.logger.Info("music toggled", zap.Bool("enabled", g.opts.Audio.Music))

	case gui.CommandToggleFps:
		g.opts.Display.ShowFps = !g.opts.Display.ShowFps
		g.syncSettingsLabels()
	}
	return true
}

func (g *Game) syncSettingsLabels() {
	g.ui.SetSettingsLabels(g.opts.Audio.Sound, g.opts.Audio.Music, g.opts.Display.ShowFps)
}
