package logic

import (
	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
)

// MovingBackground fakes an infinite starfield scroll with a fixed set
// of tiles: each tile drifts left and wraps to the right edge of the
// strip once it leaves the view. Purely visual, no gameplay state.
type MovingBackground struct {
	tiles [constant.BackgroundTileCount]core.Data
	speed float64
}

// NewMovingBackground lays the tiles out in a strip starting at the
// left screen edge
func NewMovingBackground() *MovingBackground {
	b := &MovingBackground{speed: constant.BackgroundSpeed}
	for i := range b.tiles {
		x := -constant.WorldHalfWidth + (float64(i)+0.5)*constant.BackgroundTileWidth
		b.tiles[i] = core.NewData(x, 0, constant.BackgroundTileWidth, constant.BackgroundTileHeight)
	}
	return b
}

// Update scrolls the strip and wraps tiles that left the view
func (b *MovingBackground) Update(delta float64) {
	wrapAt := -(constant.WorldHalfWidth + constant.BackgroundTileWidth/2)
	stripWidth := float64(constant.BackgroundTileCount) * constant.BackgroundTileWidth

	for i := range b.tiles {
		t := &b.tiles[i]
		t.MovePosition(-b.speed*delta, 0)
		if t.Position.X < wrapAt {
			t.MovePosition(stripWidth, 0)
		}
	}
}

// Tiles returns the tile transforms for rendering
func (b *MovingBackground) Tiles() []core.Data {
	return b.tiles[:]
}
