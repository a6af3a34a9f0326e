package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-fighter/logic"
)

func TestGetLaserColor(t *testing.T) {
	tests := []struct {
		name  string
		color logic.LaserColor
		want  tcell.Color
	}{
		{"Player green", logic.LaserGreen, RgbLaserGreen},
		{"Enemy red", logic.LaserRed, RgbLaserRed},
		{"Bomb blue", logic.LaserBlue, RgbLaserBlue},
		{"Unknown tag falls back to white", logic.LaserColor(99), tcell.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetLaserColor(tt.color); got != tt.want {
				t.Errorf("GetLaserColor(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestGetEnemyColor(t *testing.T) {
	normal := GetEnemyColor(logic.EnemyNormal)
	shielded := GetEnemyColor(logic.EnemyShield)

	if normal != RgbBossNormal {
		t.Errorf("Expected plain boss color %v, got %v", RgbBossNormal, normal)
	}
	if shielded != RgbBossShielded {
		t.Errorf("Expected shielded boss color %v, got %v", RgbBossShielded, shielded)
	}
	if normal == shielded {
		t.Error("Boss kinds must render in distinct colors")
	}
}
