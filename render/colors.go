package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/logic"
)

// RGB color definitions for the playfield and the HUD
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 24)  // Deep space blue-black
	RgbStar       = tcell.NewRGBColor(90, 95, 120) // Dim starfield gray

	RgbShip         = tcell.NewRGBColor(0, 200, 0)     // Player hull green
	RgbBossNormal   = tcell.NewRGBColor(255, 80, 80)   // Plain boss red
	RgbBossShielded = tcell.NewRGBColor(170, 60, 220)  // Shielded boss purple
	RgbShield       = tcell.NewRGBColor(100, 150, 255) // Shield bubble blue
	RgbCannon       = tcell.NewRGBColor(255, 210, 0)   // Cannon pod yellow
	RgbExplosion    = tcell.NewRGBColor(255, 140, 0)   // Particle orange

	RgbLaserGreen = tcell.NewRGBColor(50, 255, 50)   // Player shots
	RgbLaserRed   = tcell.NewRGBColor(255, 80, 80)   // Enemy shots
	RgbLaserBlue  = tcell.NewRGBColor(100, 150, 255) // Laser bombs

	RgbHudText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbBarEmpty = tcell.NewRGBColor(45, 48, 60)    // Drained bar cells

	RgbTitle        = tcell.NewRGBColor(255, 215, 0)   // Menu headline gold
	RgbMenuText     = tcell.NewRGBColor(200, 200, 200) // Idle entry gray
	RgbMenuSelected = tcell.NewRGBColor(255, 165, 0)   // Selection backdrop orange
)

// GetLaserColor maps a projectile's render tag to its terminal color
func GetLaserColor(c logic.LaserColor) tcell.Color {
	switch c {
	case logic.LaserGreen:
		return RgbLaserGreen
	case logic.LaserRed:
		return RgbLaserRed
	case logic.LaserBlue:
		return RgbLaserBlue
	default:
		return tcell.ColorWhite
	}
}

// GetEnemyColor picks the boss hull color for its kind
func GetEnemyColor(kind logic.EnemyKind) tcell.Color {
	if kind == logic.EnemyShield {
		return RgbBossShielded
	}
	return RgbBossNormal
}
