// Package gui owns the screen state machine and the menu widgets:
// which screen is up, which button is selected, and what the driver
// should do about the player's choices. It draws nothing; the render
// package turns its state into cells.
package gui

import (
	"github.com/lixenwraith/void-fighter/logic"
)

// Screen identifies the active UI layer.
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenDifficultyMenu
	ScreenSettingsMenu
	ScreenGame
	ScreenPauseMenu
	ScreenGameOver
	ScreenNextLevel
	ScreenPlayerWins
)

func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main menu"
	case ScreenDifficultyMenu:
		return "difficulty menu"
	case ScreenSettingsMenu:
		return "settings menu"
	case ScreenGame:
		return "game"
	case ScreenPauseMenu:
		return "pause menu"
	case ScreenGameOver:
		return "game over"
	case ScreenNextLevel:
		return "next level"
	case ScreenPlayerWins:
		return "player wins"
	default:
		return "unknown"
	}
}

// Command is what a menu activation asks the driver to do. Screen
// changes happen inside the GUI; commands cover the parts only the
// driver can execute.
type Command int

const (
	CommandNone Command = iota
	CommandNewGame
	CommandNextLevel
	CommandQuit
	CommandToggleSound
	CommandToggleMusic
	CommandToggleFps
)

// MenuInput is the read-once hit surface the menus consume.
type MenuInput interface {
	HitUp() bool
	HitDown() bool
	HitEnter() bool
	HitBack() bool
}

// Main menu entries
const (
	mainNewGame = iota
	mainSettings
	mainExit
)

// Difficulty menu: entries 0..2 map directly onto logic.Difficulty.
const difficultyBack = 3

// Settings menu entries
const (
	settingSound = iota
	settingMusic
	settingFps
	settingBack
)

// Pause menu entries
const (
	pauseContinue = iota
	pauseMainMenu
)

// Game over / next level entries
const (
	endPrimary = iota
	endMainMenu
)

// GUI is the screen state machine. Per frame it decides whether the
// simulation advances and whether the world is drawn; the menus cover
// everything else.
type GUI struct {
	mainMenu       *Group
	difficultyMenu *Group
	settingsMenu   *Group
	pauseMenu      *Group
	gameOverMenu   *Group
	nextLevelMenu  *Group
	playerWinsMenu *Group

	screen     Screen
	renderGame bool
	updateGame bool
	difficulty logic.Difficulty
}

// NewGUI starts at the main menu with nothing running.
func NewGUI() *GUI {
	return &GUI{
		mainMenu:       NewGroup("New game", "Settings", "Exit"),
		difficultyMenu: NewGroup("Easy", "Normal", "Hard", "Back"),
		settingsMenu:   NewGroup("Sound", "Music", "FPS counter", "Back"),
		pauseMenu:      NewGroup("Continue", "Main menu"),
		gameOverMenu:   NewGroup("Try again", "Main menu"),
		nextLevelMenu:  NewGroup("Continue", "Main menu"),
		playerWinsMenu: NewGroup("Main menu"),
		screen:         ScreenMainMenu,
		difficulty:     logic.DifficultyNormal,
	}
}

// HandleInput consumes this frame's key hits and walks the state
// machine. All four hits are drained every frame so none can go stale
// in the input layer; priority is up, down, enter, back.
func (g *GUI) HandleInput(keys MenuInput) Command {
	up := keys.HitUp()
	down := keys.HitDown()
	enter := keys.HitEnter()
	back := keys.HitBack()

	if menu := g.Menu(); menu != nil {
		if up {
			menu.SelectionUp()
			return CommandNone
		}
		if down {
			menu.SelectionDown()
			return CommandNone
		}
	}
	if enter {
		return g.activate()
	}
	if back {
		g.escape()
	}
	return CommandNone
}

// activate runs the selected entry of the active screen.
func (g *GUI) activate() Command {
	switch g.screen {
	case ScreenMainMenu:
		switch g.mainMenu.SelectionIndex() {
		case mainNewGame:
			g.setScreen(ScreenDifficultyMenu)
		case mainSettings:
			g.setScreen(ScreenSettingsMenu)
		case mainExit:
			return CommandQuit
		}

	case ScreenDifficultyMenu:
		i := g.difficultyMenu.SelectionIndex()
		if i == difficultyBack {
			g.setScreen(ScreenMainMenu)
			return CommandNone
		}
		g.difficulty = logic.Difficulty(i)
		g.setScreen(ScreenGame)
		return CommandNewGame

	case ScreenSettingsMenu:
		switch g.settingsMenu.SelectionIndex() {
		case settingSound:
			return CommandToggleSound
		case settingMusic:
			return CommandToggleMusic
		case settingFps:
			return CommandToggleFps
		case settingBack:
			g.setScreen(ScreenMainMenu)
		}

	case ScreenPauseMenu:
		switch g.pauseMenu.SelectionIndex() {
		case pauseContinue:
			g.setScreen(ScreenGame)
		case pauseMainMenu:
			g.pauseMenu.ResetSelection()
			g.setScreen(ScreenMainMenu)
		}

	case ScreenGameOver:
		switch g.gameOverMenu.SelectionIndex() {
		case endPrimary:
			g.gameOverMenu.ResetSelection()
			g.setScreen(ScreenGame)
			return CommandNewGame
		case endMainMenu:
			g.gameOverMenu.ResetSelection()
			g.setScreen(ScreenMainMenu)
		}

	case ScreenNextLevel:
		switch g.nextLevelMenu.SelectionIndex() {
		case endPrimary:
			g.nextLevelMenu.ResetSelection()
			g.setScreen(ScreenGame)
			return CommandNextLevel
		case endMainMenu:
			g.nextLevelMenu.ResetSelection()
			g.setScreen(ScreenMainMenu)
		}

	case ScreenPlayerWins:
		g.setScreen(ScreenMainMenu)
	}
	return CommandNone
}

// escape handles the back key: pause toggling in play, otherwise one
// level up toward the main menu.
func (g *GUI) escape() {
	switch g.screen {
	case ScreenGame:
		g.setScreen(ScreenPauseMenu)
	case ScreenPauseMenu:
		g.setScreen(ScreenGame)
	case ScreenDifficultyMenu, ScreenSettingsMenu:
		g.setScreen(ScreenMainMenu)
	case ScreenGameOver:
		g.gameOverMenu.ResetSelection()
		g.setScreen(ScreenMainMenu)
	case ScreenNextLevel:
		g.nextLevelMenu.ResetSelection()
		g.setScreen(ScreenMainMenu)
	case ScreenPlayerWins:
		g.setScreen(ScreenMainMenu)
	}
}

// ApplyLogicEvent maps a simulation transition to its banner screen.
func (g *GUI) ApplyLogicEvent(ev logic.Event) {
	switch ev {
	case logic.EventGameOverScreen:
		g.setScreen(ScreenGameOver)
	case logic.EventNextLevelScreen:
		g.setScreen(ScreenNextLevel)
	case logic.EventPlayerWinsScreen:
		g.setScreen(ScreenPlayerWins)
	}
}

// setScreen switches layers and the per-screen game flags: the world
// keeps drawing under the pause and banner screens, but only the game
// screen advances the simulation.
func (g *GUI) setScreen(s Screen) {
	g.screen = s
	switch s {
	case ScreenGame:
		g.renderGame = true
		g.updateGame = true
	case ScreenPauseMenu, ScreenGameOver, ScreenNextLevel, ScreenPlayerWins:
		g.renderGame = true
		g.updateGame = false
	default:
		g.renderGame = false
		g.updateGame = false
	}
}

// Menu returns the group the active screen scrolls, nil during play.
func (g *GUI) Menu() *Group {
	switch g.screen {
	case ScreenMainMenu:
		return g.mainMenu
	case ScreenDifficultyMenu:
		return g.difficultyMenu
	case ScreenSettingsMenu:
		return g.settingsMenu
	case ScreenPauseMenu:
		return g.pauseMenu
	case ScreenGameOver:
		return g.gameOverMenu
	case ScreenNextLevel:
		return g.nextLevelMenu
	case ScreenPlayerWins:
		return g.playerWinsMenu
	default:
		return nil
	}
}

// SetSettingsLabels rewrites the settings entries with live values.
func (g *GUI) SetSettingsLabels(sound, music, fps bool) {
	g.settingsMenu.SetLabel(settingSound, "Sound: "+onOff(sound))
	g.settingsMenu.SetLabel(settingMusic, "Music: "+onOff(music))
	g.settingsMenu.SetLabel(settingFps, "FPS counter: "+onOff(fps))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (g *GUI) Screen() Screen { return g.screen }

// RenderGame reports whether the world should be drawn this frame.
func (g *GUI) RenderGame() bool { return g.renderGame }

// UpdateGame reports whether the simulation should advance this frame.
// The driver also feeds it to the game clock, so pausing freezes game
// time.
func (g *GUI) UpdateGame() bool { return g.updateGame }

// Difficulty returns the last difficulty chosen in the menu; a retry
// after game over reuses it.
func (g *GUI) Difficulty() logic.Difficulty { return g.difficulty }
