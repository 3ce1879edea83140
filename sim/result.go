package sim

import "github.com/go-gl/mathgl/mgl64"

// CollisionInfo reports which axes were blocked during a resolution and
// whether the entity ended it in ground contact. It is produced fresh by
// every Resolve call and never persisted as entity state.
type CollisionInfo struct {
	X, Y, Z bool
	Ground  bool
}

// Any reports whether any axis was blocked.
func (c CollisionInfo) Any() bool {
	return c.X || c.Y || c.Z
}

func (c *CollisionInfo) merge(other CollisionInfo) {
	c.X = c.X || other.X
	c.Y = c.Y || other.Y
	c.Z = c.Z || other.Z
	c.Ground = c.Ground || other.Ground
}

// ResetFlags tells the caller which velocity components to zero after a
// server-side collision check.
type ResetFlags struct {
	ResetVX, ResetVY, ResetVZ bool
}

// TickOutcome describes which path the integrator took for the current tick.
type TickOutcome uint8

const (
	TickOutcomeNormal TickOutcome = iota
	// TickOutcomeInvalidInput means a non-finite position, velocity or dt
	// was rejected and the entity kept its last valid state.
	TickOutcomeInvalidInput
	// TickOutcomeDegenerate means the tick had no displacement to resolve.
	TickOutcomeDegenerate
)

// TickResult captures the outcome of a single integration tick.
type TickResult struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	Collisions CollisionInfo
	OnGround   bool

	Outcome TickOutcome
}
