package logic

import (
	"time"

	"github.com/lixenwraith/void-fighter/constant"
)

// Difficulty selects the combat tuning for a whole game
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// LogicSettings holds the difficulty-derived combat constants. It is
// immutable once a level starts and replaced wholesale on reset.
type LogicSettings struct {
	Difficulty Difficulty

	PlayerLaserDamage int
	EnemyLaserDamage  int
	ContactDamage     int

	EnemyLaserCooldown time.Duration
	LaserBombCooldown  time.Duration
}

// SettingsForDifficulty returns the tuning table entry for the
// difficulty. Unknown values fall back to normal.
func SettingsForDifficulty(d Difficulty) LogicSettings {
	switch d {
	case DifficultyEasy:
		return LogicSettings{
			Difficulty:         d,
			PlayerLaserDamage:  10,
			EnemyLaserDamage:   5,
			ContactDamage:      5,
			EnemyLaserCooldown: 1000 * time.Millisecond,
			LaserBombCooldown:  5000 * time.Millisecond,
		}
	case DifficultyHard:
		return LogicSettings{
			Difficulty:         d,
			PlayerLaserDamage:  3,
			EnemyLaserDamage:   15,
			ContactDamage:      15,
			EnemyLaserCooldown: 400 * time.Millisecond,
			LaserBombCooldown:  3000 * time.Millisecond,
		}
	default:
		return LogicSettings{
			Difficulty:         DifficultyNormal,
			PlayerLaserDamage:  5,
			EnemyLaserDamage:   10,
			ContactDamage:      10,
			EnemyLaserCooldown: 700 * time.Millisecond,
			LaserBombCooldown:  4000 * time.Millisecond,
		}
	}
}

// LevelConfig describes one level's enemy: its kind, whether it
// launches laser bombs, and its vertical speed.
type LevelConfig struct {
	Kind       EnemyKind
	LaserBombs bool
	Speed      float64
}

// levelTable maps level index to configuration. Levels escalate by
// alternating the enemy kind and enabling bombs in the back half.
var levelTable = [constant.LevelCount]LevelConfig{
	{Kind: EnemyNormal, LaserBombs: false, Speed: constant.EnemySpeedSlow},
	{Kind: EnemyShield, LaserBombs: false, Speed: constant.EnemySpeedSlow},
	{Kind: EnemyNormal, LaserBombs: true, Speed: constant.EnemySpeedFast},
	{Kind: EnemyShield, LaserBombs: true, Speed: constant.EnemySpeedFast},
}
