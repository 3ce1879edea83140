package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hackolite/cv-minecraft-sub000/game"
)

// State is the movement state of a single entity between ticks. Position X/Z
// is the horizontal centre, Y the feet elevation. The tick loop advancing an
// entity exclusively owns its State.
type State struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	// OnGround tracks the Grounded/Airborne state machine: Grounded goes
	// Airborne on a jump or on losing ground support, Airborne goes Grounded
	// when a downward Y collision or the ground probe succeeds.
	OnGround bool
}

// Input is a single tick's input for one entity.
type Input struct {
	// Dt is the simulated duration of the tick in seconds.
	Dt float64
	// Jump requests a jump impulse; it only applies while grounded.
	Jump bool
	// Obstacles is the frozen snapshot of other entities, taken before the
	// tick began.
	Obstacles []Obstacle
}

// Integrator advances entity movement over discrete ticks: gravity and jump
// impulses on velocity, sub-stepped displacement through the resolver,
// ground state tracking.
type Integrator struct {
	res  *Resolver
	conf PhysicsConfig
}

// NewIntegrator creates an Integrator driving the resolver passed.
func NewIntegrator(res *Resolver) *Integrator {
	return &Integrator{res: res, conf: res.det.Config()}
}

// Validate reports malformed numeric state that a tick must reject.
func (s *State) Validate() error {
	if !game.Vec3Finite(s.Pos) {
		return &InputError{Field: "position", Value: s.Pos}
	}
	if !game.Vec3Finite(s.Vel) {
		return &InputError{Field: "velocity", Value: s.Vel}
	}
	return nil
}

// UpdateTick advances state by one tick and returns the result. On
// TickOutcomeInvalidInput the state is left untouched; the entity keeps its
// last known valid state and simply skips the tick.
func (i *Integrator) UpdateTick(state *State, in Input) TickResult {
	if state.Validate() != nil || !game.Finite(in.Dt) {
		return TickResult{
			Position: state.Pos,
			Velocity: state.Vel,
			OnGround: state.OnGround,
			Outcome:  TickOutcomeInvalidInput,
		}
	}

	if in.Jump && state.OnGround {
		state.Vel[1] = i.conf.JumpVelocity
		state.OnGround = false
	}

	state.Vel[1] = math.Max(state.Vel[1]-i.conf.Gravity*in.Dt, -i.conf.TerminalVelocity)

	var info CollisionInfo
	outcome := TickOutcomeNormal

	delta := state.Vel.Mul(in.Dt)
	if delta == (mgl64.Vec3{}) {
		// Nothing to move; the ground flag is still worth confirming.
		outcome = TickOutcomeDegenerate
	} else {
		// Sub-stepping bounds each step's displacement below one block, so a
		// fast entity cannot clear thin geometry between two checks.
		step := delta.Mul(1 / float64(i.conf.SubSteps))
		for range i.conf.SubSteps {
			target := state.Pos.Add(step)
			pos, ci := i.res.Resolve(state.Pos, target, in.Obstacles)
			state.Pos = pos
			info.merge(ci)

			// A blocked axis stops contributing for the rest of the tick.
			if ci.X {
				state.Vel[0], step[0] = 0, 0
			}
			if ci.Y {
				state.Vel[1], step[1] = 0, 0
			}
			if ci.Z {
				state.Vel[2], step[2] = 0, 0
			}
			if step == (mgl64.Vec3{}) {
				break
			}
		}
	}

	state.OnGround = info.Ground || i.res.det.OnGround(state.Pos)

	return TickResult{
		Position:   state.Pos,
		Velocity:   state.Vel,
		Collisions: info,
		OnGround:   state.OnGround,
		Outcome:    outcome,
	}
}

// Resolver returns the resolver the integrator drives.
func (i *Integrator) Resolver() *Resolver {
	return i.res
}
