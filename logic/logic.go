package logic

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/void-fighter/constant"
	"github.com/lixenwraith/void-fighter/core"
)

// State is the orchestrator's phase within one level
type State int

const (
	// StateRunning has both entities alive and updating.
	StateRunning State = iota
	// StateEntityDestroyed freezes combat while the death explosion
	// plays out.
	StateEntityDestroyed
	// StateLevelResolved waits for the UI to act on the emitted event.
	StateLevelResolved
)

// Event is a one-shot screen-transition request for the UI layer
type Event int

const (
	EventNone Event = iota
	EventGameOverScreen
	EventNextLevelScreen
	EventPlayerWinsScreen
)

// ErrLevelOutOfRange rejects a reset to a level index outside the
// level table.
var ErrLevelOutOfRange = errors.New("level index out of range")

// Logic owns every simulated entity and steps them once per fixed
// tick. Its only mutating entry points are Update, ResetGame, and
// ResetToNextLevel; everything else is a read-only view for the UI
// and renderer.
type Logic struct {
	player     *Player
	enemy      *Enemy
	explosion  *Explosion
	background *MovingBackground

	state        State
	pendingEvent Event
	playerDied   bool

	level      int
	difficulty Difficulty
	settings   LogicSettings

	sounds SoundPlayer
	rng    *rand.Rand
}

// NewLogic creates the simulation with all entities in their level 0
// normal-difficulty state. The random source drives explosion particle
// spread only.
func NewLogic(now time.Time, sounds SoundPlayer, rng *rand.Rand) *Logic {
	l := &Logic{
		player:     NewPlayer(now),
		enemy:      NewEnemy(now),
		explosion:  NewExplosion(now, rng),
		background: NewMovingBackground(),
		sounds:     sounds,
		rng:        rng,
	}
	// A fresh Logic is immediately playable; the UI normally resets it
	// again when a game starts.
	l.resetGame(now, DifficultyNormal, 0)
	return l
}

// Update runs one simulation tick at the given game time. The delta
// multiplier scales all movement; input is this tick's key snapshot.
func (l *Logic) Update(now time.Time, delta float64, input InputState) {
	l.background.Update(delta)

	switch l.state {
	case StateRunning:
		l.player.Update(now, delta, input, l.enemy, l.sounds)
		l.enemy.Update(now, delta, l.player, l.sounds)
		l.checkDestruction(now)

	case StateEntityDestroyed:
		l.explosion.Update(now, delta, l.sounds)
		if l.explosion.Finished(now) {
			l.resolveLevel()
		}

	case StateLevelResolved:
		// Waiting for the UI to reset or leave the game.
	}
}

// checkDestruction transitions out of Running when a health pool hits
// zero: the dead entity disappears, all projectiles are dropped, and
// the explosion starts at the corpse. A tick that kills both counts as
// a player death.
func (l *Logic) checkDestruction(now time.Time) {
	playerDead := l.player.health.dead()
	enemyDead := l.enemy.health.dead()
	if !playerDead && !enemyDead {
		return
	}

	l.playerDied = playerDead

	var at core.Vec
	if playerDead {
		at = l.player.Position
		l.player.visible = false
	} else {
		at = l.enemy.Position
		l.enemy.visible = false
	}

	l.player.clearLasers()
	l.enemy.clearProjectiles()
	l.explosion.Start(now, at.X, at.Y)
	l.sounds.Explosion()
	l.state = StateEntityDestroyed
}

// resolveLevel emits the screen transition once the explosion is done
func (l *Logic) resolveLevel() {
	l.state = StateLevelResolved
	switch {
	case l.playerDied:
		l.pendingEvent = EventGameOverScreen
	case l.level == constant.LevelCount-1:
		l.pendingEvent = EventPlayerWinsScreen
	default:
		l.pendingEvent = EventNextLevelScreen
	}
}

// ResetGame starts a level with settings derived from the difficulty.
// A level index outside the table is rejected with ErrLevelOutOfRange
// and the simulation state is left untouched.
func (l *Logic) ResetGame(now time.Time, difficulty Difficulty, level int) error {
	if level < 0 || level >= constant.LevelCount {
		return fmt.Errorf("reset to level %d: %w", level, ErrLevelOutOfRange)
	}
	l.resetGame(now, difficulty, level)
	return nil
}

func (l *Logic) resetGame(now time.Time, difficulty Difficulty, level int) {
	l.difficulty = difficulty
	l.level = level
	l.settings = SettingsForDifficulty(difficulty)

	l.player.Reset(now, l.settings)
	l.enemy.Reset(now, levelTable[level], l.settings)
	l.explosion.visible = false
	l.explosion.particles = nil

	l.state = StateRunning
	l.pendingEvent = EventNone
	l.playerDied = false
}

// ResetToNextLevel advances to the level after the current one,
// keeping the difficulty.
func (l *Logic) ResetToNextLevel(now time.Time) error {
	return l.ResetGame(now, l.difficulty, l.level+1)
}

// TakeEvent returns the pending screen transition exactly once;
// subsequent calls return EventNone until the next transition.
func (l *Logic) TakeEvent() Event {
	ev := l.pendingEvent
	l.pendingEvent = EventNone
	return ev
}

// State returns the orchestrator phase
func (l *Logic) State() State {
	return l.state
}

// Level returns the current level index
func (l *Logic) Level() int {
	return l.level
}

// Difficulty returns the difficulty selected at the last ResetGame
func (l *Logic) Difficulty() Difficulty {
	return l.difficulty
}

// Player returns the player for read-only consumption
func (l *Logic) Player() *Player {
	return l.player
}

// Enemy returns the boss for read-only consumption
func (l *Logic) Enemy() *Enemy {
	return l.enemy
}

// Explosion returns the death effect for read-only consumption
func (l *Logic) Explosion() *Explosion {
	return l.explosion
}

// Background returns the starfield for read-only consumption
func (l *Logic) Background() *MovingBackground {
	return l.background
}
