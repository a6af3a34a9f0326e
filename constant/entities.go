package constant

// World geometry. The simulation runs in abstract world units with the
// origin at screen center, x growing right and y growing up. The
// renderer owns the projection to terminal cells.
const (
	// WorldHalfWidth is half the playfield width in world units.
	WorldHalfWidth = 5.0

	// WorldHalfHeight is half the playfield height in world units.
	WorldHalfHeight = 4.0

	// DespawnPadding extends the playfield on every side; transient
	// entities are destroyed once their position leaves the padded
	// area.
	DespawnPadding = 1.0
)

// Player
const (
	PlayerWidth  = 1.0
	PlayerHeight = 1.0

	// PlayerSpeed is movement in world units per logic frame (scaled
	// by the delta multiplier each tick).
	PlayerSpeed = 0.05

	// PlayerStartX / PlayerStartY is the reset position.
	PlayerStartX = -3.0
	PlayerStartY = 0.0

	// PlayerAreaMargin shrinks the playfield for player clamping so
	// the ship stays fully on screen.
	PlayerAreaMargin = 0.5
)

// Lasers and laser bombs
const (
	LaserWidth  = 0.3
	LaserHeight = 0.1

	// LaserSpeed applies to both player and enemy lasers, in world
	// units per logic frame.
	LaserSpeed = 0.08

	// LaserSpawnOffset is how far in front of the firing entity a new
	// laser appears, along the fire direction.
	LaserSpawnOffset = 1.0

	LaserBombWidth  = 0.4
	LaserBombHeight = 0.25

	// LaserBombSpeed is slower than a plain laser so the fuse matters.
	LaserBombSpeed = 0.05
)

// Enemy and sub-objects
const (
	EnemyWidth  = 1.8
	EnemyHeight = 1.8

	// EnemyStartX places the boss on the right edge of the playfield.
	EnemyStartX = 3.5
	EnemyStartY = 0.0

	// EnemyAreaMargin shrinks the vertical bounce range.
	EnemyAreaMargin = 1.0

	// EnemySpeedSlow / EnemySpeedFast are the vertical bounce speeds
	// used by the level table, in world units per logic frame.
	EnemySpeedSlow = 0.02
	EnemySpeedFast = 0.03

	// ShieldWidth/ShieldHeight give an inscribed circle matching the
	// enemy body circle exactly: every laser that could reach the body
	// overlaps the shield, while both cannons stay exposed beyond it.
	ShieldWidth  = 1.8
	ShieldHeight = 1.8

	CannonWidth  = 0.8
	CannonHeight = 0.4

	// CannonOffsetY is the cannon center's distance from the enemy
	// center, above for the top cannon and below for the bottom one.
	CannonOffsetY = 1.2
)

// Explosion particles
const (
	ParticleWidth  = 0.1
	ParticleHeight = 0.1
)

// Scrolling background
const (
	// BackgroundTileWidth is one starfield tile; four tiles cycle to
	// fake an infinite scroll.
	BackgroundTileWidth  = 5.0
	BackgroundTileHeight = 8.0

	// BackgroundTileCount is fixed by the cycling scheme.
	BackgroundTileCount = 4

	// BackgroundSpeed is the leftward scroll in units per logic frame.
	BackgroundSpeed = 0.01
)
