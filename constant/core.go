package constant

import "time"

// Logic tick rate
const (
	// LogicTargetFPS is the logic update rate the game is tuned for.
	// A delta multiplier of 1.0 corresponds to one frame at this rate.
	LogicTargetFPS = 60

	// LogicMaxFPS caps how fast logic updates may be scaled. Updates
	// arriving faster than this rate use DeltaFloor instead of the
	// measured ratio.
	LogicMaxFPS = 1000

	// LogicFrameMillis is the whole-millisecond length of one logic
	// frame at LogicTargetFPS. Movement constants are expressed in
	// units per frame of this length.
	LogicFrameMillis = 16

	// LogicUpdateInterval is the fixed gate between logic ticks.
	LogicUpdateInterval = LogicFrameMillis * time.Millisecond

	// MinFrameTime is the shortest elapsed time treated as a real
	// frame (1/LogicMaxFPS). Anything shorter clamps to DeltaFloor.
	MinFrameTime = time.Second / LogicMaxFPS

	// DeltaFloor is the smallest delta multiplier the time manager
	// will produce: LogicTargetFPS/LogicMaxFPS.
	DeltaFloor = float64(LogicTargetFPS) / float64(LogicMaxFPS)
)

// Driver loop
const (
	// FrameUpdateInterval is the driver ticker period. Two samples per
	// logic frame keeps the 16 ms gate from drifting.
	FrameUpdateInterval = 8 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller
	// goroutine and the driver loop.
	EventChannelSize = 256

	// FpsUpdateInterval is how often the fps counter latches a value.
	FpsUpdateInterval = time.Second
)
