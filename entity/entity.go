package entity

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/hackolite/cv-minecraft-sub000/sim"
	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// Entity is a movable actor in the world. Its movement state is advanced
// exclusively by the tick processing it; everything else reads snapshots.
type Entity struct {
	id uuid.UUID

	// mu protects all the following fields.
	mu sync.Mutex
	// state is the authoritative movement state.
	state sim.State
	// lastPos is the position before the most recent committed tick.
	lastPos mgl64.Vec3
	// halfWidth and height define the collision volume.
	halfWidth, height float64
	// jump is the pending jump request for the next tick.
	jump bool
}

// New creates an entity at the position passed with the given dimensions.
func New(pos mgl64.Vec3, halfWidth, height float64) *Entity {
	return &Entity{
		id:        uuid.New(),
		state:     sim.State{Pos: pos},
		lastPos:   pos,
		halfWidth: halfWidth,
		height:    height,
	}
}

// ID returns the entity's unique id.
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Position returns the entity's current position.
func (e *Entity) Position() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Pos
}

// LastPosition returns the position before the most recent committed tick.
func (e *Entity) LastPosition() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastPos
}

// Velocity returns the entity's current velocity.
func (e *Entity) Velocity() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Vel
}

// SetVelocity replaces the entity's velocity immediately, e.g. for input
// driven horizontal movement.
func (e *Entity) SetVelocity(vel mgl64.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Vel = vel
}

// OnGround reports whether the entity ended its last tick grounded.
func (e *Entity) OnGround() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.OnGround
}

// Jump requests a jump impulse for the next tick. The request is consumed
// whether or not the entity was grounded.
func (e *Entity) Jump() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.jump = true
}

// Box returns the entity's bounding box at its current position.
func (e *Entity) Box() voxel.BBox {
	e.mu.Lock()
	defer e.mu.Unlock()

	return voxel.EntityBox(e.state.Pos, e.halfWidth, e.height)
}

// Obstacle returns the entity's frozen collision volume for other entities'
// resolutions this tick.
func (e *Entity) Obstacle() sim.Obstacle {
	e.mu.Lock()
	defer e.mu.Unlock()

	return sim.Obstacle{
		ID:  e.id.String(),
		Box: voxel.EntityBox(e.state.Pos, e.halfWidth, e.height),
	}
}

// TickState copies the movement state and consumes the pending jump flag.
// The tick runs on the copy; Commit applies the outcome.
func (e *Entity) TickState() (sim.State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	jump := e.jump
	e.jump = false
	return e.state, jump
}

// Commit applies a completed tick's state. All entities commit after every
// per-entity tick of the round has finished, so no resolution can observe a
// same-tick mutation.
func (e *Entity) Commit(state sim.State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastPos = e.state.Pos
	e.state = state
}
