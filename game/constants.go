package game

const (
	DefaultPlayerHalfWidth = 0.3
	DefaultPlayerHeight    = 1.8

	DefaultGravity          = 20.0
	DefaultTerminalVelocity = 50.0
	DefaultJumpVelocity     = 8.5

	DefaultCollisionEpsilon = 0.001
	DefaultStepHeight       = 0.6
	DefaultGroundTolerance  = 0.05

	DefaultWorldSize = 128
	DefaultSubSteps  = 8

	TicksPerSecond = 20
	TickDuration   = 1.0 / TicksPerSecond
)
