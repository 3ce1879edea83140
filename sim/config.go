package sim

import (
	"github.com/hackolite/cv-minecraft-sub000/game"
)

// DetectionMode selects the collision predicate used by the Detector.
type DetectionMode uint8

const (
	// DetectionModeStrictAABB tests volumetric AABB overlap, inclusive at
	// boundaries.
	DetectionModeStrictAABB DetectionMode = iota
	// DetectionModeIOU treats any positive intersection-over-union value as
	// a collision.
	DetectionModeIOU
)

// PhysicsConfig carries every tunable of the physics core. A config is
// immutable once passed to a constructor; there is no process-wide mutable
// state.
type PhysicsConfig struct {
	PlayerHalfWidth float64
	PlayerHeight    float64

	Gravity          float64
	TerminalVelocity float64
	JumpVelocity     float64

	// Epsilon is the offset applied to snap targets so that a resting
	// coordinate sits strictly outside the block it collided with.
	Epsilon float64
	// StepHeight is the maximum vertical delta CanStepUp permits.
	StepHeight float64
	// GroundTolerance is the probing distance below the feet used to confirm
	// ground contact without exact floating-point equality.
	GroundTolerance float64

	WorldSize int
	// SubSteps is the number of equal subdivisions a tick's displacement is
	// split into. Each sub-step stays below the smallest world feature, so a
	// fast entity cannot tunnel through thin geometry.
	SubSteps int

	Mode DetectionMode
	// IOUThreshold is the minimum IOU considered a collision in
	// DetectionModeIOU. The default of 0 collides on any positive overlap.
	IOUThreshold float64
}

// DefaultConfig returns a config with the default movement constants.
func DefaultConfig() PhysicsConfig {
	return PhysicsConfig{
		PlayerHalfWidth:  game.DefaultPlayerHalfWidth,
		PlayerHeight:     game.DefaultPlayerHeight,
		Gravity:          game.DefaultGravity,
		TerminalVelocity: game.DefaultTerminalVelocity,
		JumpVelocity:     game.DefaultJumpVelocity,
		Epsilon:          game.DefaultCollisionEpsilon,
		StepHeight:       game.DefaultStepHeight,
		GroundTolerance:  game.DefaultGroundTolerance,
		WorldSize:        game.DefaultWorldSize,
		SubSteps:         game.DefaultSubSteps,
		Mode:             DetectionModeStrictAABB,
	}
}

// norm fills unset fields with defaults so that a zero-value config cannot
// divide by zero or disable sub-stepping.
func (c PhysicsConfig) norm() PhysicsConfig {
	def := DefaultConfig()
	if c.PlayerHalfWidth <= 0 {
		c.PlayerHalfWidth = def.PlayerHalfWidth
	}
	if c.PlayerHeight <= 0 {
		c.PlayerHeight = def.PlayerHeight
	}
	if c.Epsilon <= 0 {
		c.Epsilon = def.Epsilon
	}
	if c.GroundTolerance <= 0 {
		c.GroundTolerance = def.GroundTolerance
	}
	if c.WorldSize <= 0 {
		c.WorldSize = def.WorldSize
	}
	if c.SubSteps <= 0 {
		c.SubSteps = def.SubSteps
	}
	return c
}
