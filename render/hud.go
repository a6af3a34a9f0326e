package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/gui"
)

// drawHud draws both health bars on the reserved rows: the boss bar on
// the top row, the player bar on the bottom one.
func (r *Renderer) drawHud(hud *gui.HUD, defaultStyle tcell.Style) {
	r.drawHealthBar(0, "BOSS", hud.EnemyHealth(), constant.EnemyMaxHealth, RgbBossNormal, defaultStyle)
	r.drawHealthBar(r.height-1, "HP", hud.PlayerHealth(), constant.PlayerMaxHealth, RgbShip, defaultStyle)
}

// drawHealthBar draws one HUD row: padded label, fixed-width block
// bar, numeric readout. Labels pad to a common width so both bars
// start on the same column.
func (r *Renderer) drawHealthBar(row int, label string, value, max int, barColor tcell.Color, defaultStyle tcell.Style) {
	textStyle := defaultStyle.Foreground(RgbHudText)

	x := 0
	for _, ch := range fmt.Sprintf("%-5s", label) {
		if x < r.width {
			r.screen.SetContent(x, row, ch, nil, textStyle)
		}
		x++
	}

	filled := barFill(value, max, constant.HealthBarWidth)
	fillStyle := defaultStyle.Foreground(barColor)
	emptyStyle := defaultStyle.Foreground(RgbBarEmpty)
	for i := 0; i < constant.HealthBarWidth; i++ {
		style := fillStyle
		if i >= filled {
			style = emptyStyle
		}
		if x+i < r.width {
			r.screen.SetContent(x+i, row, '█', nil, style)
		}
	}
	x += constant.HealthBarWidth

	for i, ch := range fmt.Sprintf(" %4d", value) {
		if x+i < r.width {
			r.screen.SetContent(x+i, row, ch, nil, textStyle)
		}
	}
}

// drawFps draws the frame counter right-aligned on the top row
func (r *Renderer) drawFps(fps int, defaultStyle tcell.Style) {
	text := fmt.Sprintf("%*d fps", constant.FpsDigits, fps)
	style := defaultStyle.Foreground(RgbHudText)

	x := r.width - len(text)
	for i, ch := range text {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, 0, ch, nil, style)
		}
	}
}

// barFill maps a value in [0,max] onto the filled cell count of a bar
func barFill(value, max, width int) int {
	if value <= 0 || max <= 0 {
		return 0
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	return filled
}
