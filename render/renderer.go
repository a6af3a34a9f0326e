// Package render draws the simulation onto a tcell screen. World
// coordinates project onto a playfield of terminal cells: x scales
// across the columns, y flips so world-up is screen-up. The top and
// bottom rows stay reserved for the HUD.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
	"github.com/lixenwraith/void-fighter/gui"
	"github.com/lixenwraith/void-fighter/logic"
)

// Renderer composes terminal frames from the simulation state and the
// active menu. It re-reads the screen size every frame, so a terminal
// resize only needs a screen Sync from the driver.
type Renderer struct {
	screen tcell.Screen

	width  int
	height int

	gameX      int
	gameY      int
	gameWidth  int
	gameHeight int
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.syncSize()
	return r
}

// syncSize refreshes the cached dimensions and carves the playfield
// out of the full screen: everything except the two HUD rows.
func (r *Renderer) syncSize() {
	r.width, r.height = r.screen.Size()

	r.gameX = 0
	r.gameY = 1
	r.gameWidth = r.width
	r.gameHeight = r.height - 2
	if r.gameWidth < 1 {
		r.gameWidth = 1
	}
	if r.gameHeight < 1 {
		r.gameHeight = 1
	}
}

// RenderFrame composes and shows one frame: the world and HUD when the
// active screen displays the game, then whichever menu is up, then the
// fps readout.
func (r *Renderer) RenderFrame(l *logic.Logic, ui *gui.GUI, hud *gui.HUD, fps int, showFps bool) {
	r.syncSize()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if ui.RenderGame() {
		r.drawBackground(l.Background(), defaultStyle)
		r.drawLasers(l, defaultStyle)
		r.drawPlayer(l.Player(), defaultStyle)
		r.drawEnemy(l.Enemy(), defaultStyle)
		r.drawExplosion(l.Explosion(), defaultStyle)
		r.drawHud(hud, defaultStyle)
	}
	if menu := ui.Menu(); menu != nil {
		r.drawMenu(ui.Screen(), menu, defaultStyle)
	}
	if showFps {
		r.drawFps(fps, defaultStyle)
	}

	r.screen.Show()
}

// cell projects a world position to a screen cell
func (r *Renderer) cell(p core.Vec) (int, int) {
	col := r.gameX + int((p.X+constant.WorldHalfWidth)/(2*constant.WorldHalfWidth)*float64(r.gameWidth))
	row := r.gameY + int((constant.WorldHalfHeight-p.Y)/(2*constant.WorldHalfHeight)*float64(r.gameHeight))
	return col, row
}

// spanX converts a world width to a cell count, at least one cell
func (r *Renderer) spanX(w float64) int {
	n := int(w / (2 * constant.WorldHalfWidth) * float64(r.gameWidth))
	if n < 1 {
		n = 1
	}
	return n
}

// spanY converts a world height to a cell count, at least one cell
func (r *Renderer) spanY(h float64) int {
	n := int(h / (2 * constant.WorldHalfHeight) * float64(r.gameHeight))
	if n < 1 {
		n = 1
	}
	return n
}

// setGameCell writes one cell, clipped to the playfield. Projectiles
// straddle the playfield edge while despawning, so clipping here keeps
// every draw method free of bounds checks.
func (r *Renderer) setGameCell(x, y int, ch rune, style tcell.Style) {
	if x < r.gameX || x >= r.gameX+r.gameWidth {
		return
	}
	if y < r.gameY || y >= r.gameY+r.gameHeight {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillData draws an entity's rectangle as a block of glyphs centered
// on its position. Rotation is ignored; cells are too coarse for it.
func (r *Renderer) fillData(d *core.Data, ch rune, style tcell.Style) {
	col, row := r.cell(d.Position)
	w := r.spanX(d.Width)
	h := r.spanY(d.Height)

	for y := row - h/2; y < row-h/2+h; y++ {
		for x := col - w/2; x < col-w/2+w; x++ {
			r.setGameCell(x, y, ch, style)
		}
	}
}

// starOffsets places the dots of one background tile, in world units
// from the tile's lower-left corner. The same pattern repeats on every
// tile; the repetition is what makes the scroll read as movement.
var starOffsets = [...]core.Vec{
	{X: 0.7, Y: 0.9}, {X: 2.1, Y: 3.2}, {X: 3.6, Y: 1.4}, {X: 1.2, Y: 6.8},
	{X: 4.3, Y: 5.5}, {X: 0.4, Y: 4.1}, {X: 2.9, Y: 7.3}, {X: 3.9, Y: 6.2},
	{X: 1.8, Y: 0.6}, {X: 4.6, Y: 2.7}, {X: 2.4, Y: 5.0}, {X: 0.9, Y: 2.2},
}

func (r *Renderer) drawBackground(b *logic.MovingBackground, defaultStyle tcell.Style) {
	starStyle := defaultStyle.Foreground(RgbStar)
	for _, tile := range b.Tiles() {
		originX := tile.Position.X - tile.Width/2
		originY := tile.Position.Y - tile.Height/2
		for _, off := range starOffsets {
			col, row := r.cell(core.Vec{X: originX + off.X, Y: originY + off.Y})
			r.setGameCell(col, row, '·', starStyle)
		}
	}
}

func (r *Renderer) drawLasers(l *logic.Logic, defaultStyle tcell.Style) {
	for _, shot := range l.Player().Lasers() {
		r.fillData(&shot.Data, '█', defaultStyle.Foreground(GetLaserColor(shot.Color())))
	}
	for _, shot := range l.Enemy().Lasers() {
		r.fillData(&shot.Data, '█', defaultStyle.Foreground(GetLaserColor(shot.Color())))
	}
	for _, bomb := range l.Enemy().Bombs() {
		r.fillData(&bomb.Data, '▓', defaultStyle.Foreground(GetLaserColor(bomb.Color())))
	}
}

func (r *Renderer) drawPlayer(p *logic.Player, defaultStyle tcell.Style) {
	if !p.Visible() {
		return
	}
	r.fillData(&p.Data, '█', defaultStyle.Foreground(RgbShip))
}

func (r *Renderer) drawEnemy(e *logic.Enemy, defaultStyle tcell.Style) {
	if !e.Visible() {
		return
	}
	r.fillData(&e.Data, '█', defaultStyle.Foreground(GetEnemyColor(e.Kind())))
	if s := e.Shield(); s.Visible() {
		r.fillData(&s.Data, '░', defaultStyle.Foreground(RgbShield))
	}
	r.drawCannon(e.CannonTop(), defaultStyle)
	r.drawCannon(e.CannonBottom(), defaultStyle)
}

// drawCannon hides an exposed cannon during the off phase of its
// warning blink.
func (r *Renderer) drawCannon(c *logic.LaserCannon, defaultStyle tcell.Style) {
	if !c.Visible() {
		return
	}
	if !c.Protected() && !c.BlinkOn() {
		return
	}
	r.fillData(&c.Data, '█', defaultStyle.Foreground(RgbCannon))
}

func (r *Renderer) drawExplosion(e *logic.Explosion, defaultStyle tcell.Style) {
	if !e.Visible() {
		return
	}
	style := defaultStyle.Foreground(RgbExplosion)
	for _, p := range e.Particles() {
		col, row := r.cell(p.Position)
		r.setGameCell(col, row, '*', style)
	}
}
