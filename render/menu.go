package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/gui"
)

// screenTitle returns the headline drawn above the active menu
func screenTitle(s gui.Screen) string {
	switch s {
	case gui.ScreenMainMenu:
		return "VOID FIGHTER"
	case gui.ScreenDifficultyMenu:
		return "DIFFICULTY"
	case gui.ScreenSettingsMenu:
		return "SETTINGS"
	case gui.ScreenPauseMenu:
		return "PAUSED"
	case gui.ScreenGameOver:
		return "GAME OVER"
	case gui.ScreenNextLevel:
		return "LEVEL CLEARED"
	case gui.ScreenPlayerWins:
		return "YOU WIN"
	default:
		return ""
	}
}

// drawMenu draws the headline and the button column centered on the
// screen. On the pause and end screens this lands on top of the frozen
// world, which is the intended overlay look.
func (r *Renderer) drawMenu(s gui.Screen, menu *gui.Group, defaultStyle tcell.Style) {
	titleStyle := defaultStyle.Foreground(RgbTitle).Bold(true)
	textStyle := defaultStyle.Foreground(RgbMenuText)
	selectedStyle := defaultStyle.Foreground(tcell.ColorBlack).Background(RgbMenuSelected)

	buttons := menu.Buttons()
	top := r.height/2 - (len(buttons)+2)/2
	if top < 0 {
		top = 0
	}

	r.drawTextCentered(top, screenTitle(s), titleStyle)
	for i, b := range buttons {
		row := top + 2 + i
		if b.State() == gui.ButtonSelected {
			r.drawTextCentered(row, "> "+b.Label()+" <", selectedStyle)
		} else {
			r.drawTextCentered(row, b.Label(), textStyle)
		}
	}
}

// drawTextCentered writes a line centered horizontally, clipped to the
// screen.
func (r *Renderer) drawTextCentered(row int, text string, style tcell.Style) {
	if row < 0 || row >= r.height {
		return
	}
	runes := []rune(text)
	x := (r.width - len(runes)) / 2
	for i, ch := range runes {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, row, ch, nil, style)
		}
	}
}
