package sim

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hackolite/cv-minecraft-sub000/game"
	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// Resolver turns a requested movement into a safe one. Movement is resolved
// one axis at a time in the fixed order X, Y, Z; resolving the combined 3D
// destination instead lets a diagonal move cut a block corner no single
// axis would pass ("corner slip") and lets an entity straddle a block face
// when only the end state is checked.
type Resolver struct {
	det  *Detector
	conf PhysicsConfig
	sink EventSink
}

// NewResolver creates a Resolver backed by the detector passed. The sink may
// be nil; collision events are purely observational and never affect
// resolution.
func NewResolver(det *Detector, sink EventSink) *Resolver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Resolver{det: det, conf: det.Config(), sink: sink}
}

// Resolve computes the safe position closest to newPos that an entity at
// oldPos may occupy, together with the axes that had to be corrected.
// obstacles is the frozen snapshot of other entities; it may be nil.
func (r *Resolver) Resolve(oldPos, newPos mgl64.Vec3, obstacles []Obstacle) (mgl64.Vec3, CollisionInfo) {
	var info CollisionInfo

	if !game.Vec3Finite(newPos) || !game.Vec3Finite(oldPos) {
		// Malformed input never moves the entity.
		return oldPos, info
	}

	if newPos == oldPos {
		// Degenerate movement: nothing to resolve, but the ground flag is
		// still meaningful for a stationary entity.
		info.Ground = r.det.OnGround(oldPos)
		return oldPos, info
	}

	pos := oldPos
	pos = r.resolveAxis(axisX, pos, newPos[axisX], obstacles, &info)
	pos = r.resolveAxis(axisY, pos, newPos[axisY], obstacles, &info)
	pos = r.resolveAxis(axisZ, pos, newPos[axisZ], obstacles, &info)

	pos = r.clampToWorld(pos, &info)
	pos = r.verify(oldPos, pos, obstacles, &info)

	info.Ground = info.Ground || r.det.OnGround(pos)
	return pos, info
}

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// resolveAxis applies the requested coordinate on one axis, holding the
// other two at the accumulated safe position, and snaps back analytically
// on collision.
func (r *Resolver) resolveAxis(axis int, pos mgl64.Vec3, want float64, obstacles []Obstacle, info *CollisionInfo) mgl64.Vec3 {
	if want == pos[axis] {
		return pos
	}

	cand := pos
	cand[axis] = want
	bb := r.entityBox(cand)
	dir := want - pos[axis]

	snapped := want
	blocked := false

	// Enumeration extends one epsilon past the leading face: floor() alone
	// misses the block a negative-direction move lands exactly flush with,
	// and flush contact must count as a collision.
	var lead mgl64.Vec3
	lead[axis] = math.Copysign(r.conf.Epsilon, dir)

	candidates := voxel.BlocksWithin(bb.Extend(lead))
	for _, p := range candidates {
		if !r.det.source.Collidable(p) || !r.det.pred.Collides(bb, p.Box()) {
			continue
		}
		blocked = true
		snapped = tighten(snapped, r.snapTarget(axis, dir, p.Box()), dir)
	}
	voxel.PutScratch(candidates)

	for _, ob := range obstacles {
		if !bb.Intersects(ob.Box) {
			continue
		}
		blocked = true
		snapped = tighten(snapped, r.snapTarget(axis, dir, ob.Box), dir)
	}

	if !blocked {
		return cand
	}

	if axis == axisY && dir < 0 {
		info.Ground = true
	}
	if math.Abs(snapped-want) > r.conf.Epsilon {
		r.setAxisFlag(axis, info)
	}

	pos[axis] = snapped
	return pos
}

// snapTarget returns the entity coordinate that rests the bounding box just
// outside the blocking box, on the face facing against the movement
// direction. Moving up on Y resolves against the ceiling with the entity
// height; all other cases offset by the half-width.
func (r *Resolver) snapTarget(axis int, dir float64, block voxel.BBox) float64 {
	eps := r.conf.Epsilon
	if axis == axisY {
		if dir > 0 {
			return block.Min()[axisY] - r.conf.PlayerHeight - eps
		}
		return block.Max()[axisY] + eps
	}
	if dir > 0 {
		return block.Min()[axis] - r.conf.PlayerHalfWidth - eps
	}
	return block.Max()[axis] + r.conf.PlayerHalfWidth + eps
}

// tighten keeps the most restrictive of two snap coordinates for the
// direction of travel.
func tighten(current, candidate, dir float64) float64 {
	if dir > 0 {
		return math.Min(current, candidate)
	}
	return math.Max(current, candidate)
}

func (r *Resolver) setAxisFlag(axis int, info *CollisionInfo) {
	switch axis {
	case axisX:
		info.X = true
	case axisY:
		info.Y = true
	case axisZ:
		info.Z = true
	}
}

// clampToWorld keeps the entity centre inside [halfWidth, size-halfWidth] on
// X and Z. Clamping sets the axis flag even without a block.
func (r *Resolver) clampToWorld(pos mgl64.Vec3, info *CollisionInfo) mgl64.Vec3 {
	hw := r.conf.PlayerHalfWidth
	bound := float64(r.conf.WorldSize) - hw

	if clamped := game.ClampFloat(pos[axisX], hw, bound); clamped != pos[axisX] {
		pos[axisX] = clamped
		info.X = true
	}
	if clamped := game.ClampFloat(pos[axisZ], hw, bound); clamped != pos[axisZ] {
		pos[axisZ] = clamped
		info.Z = true
	}
	return pos
}

// verify re-tests the fully resolved box and, on a pathological multi-axis
// overlap, reverts axes to their pre-movement values one at a time until the
// box is clear. Resolution never errors: the worst case is staying at
// oldPos for one tick.
func (r *Resolver) verify(oldPos, pos mgl64.Vec3, obstacles []Obstacle, info *CollisionInfo) mgl64.Vec3 {
	if !r.penetrates(pos, obstacles) {
		return pos
	}

	for axis := axisX; axis <= axisZ; axis++ {
		if pos[axis] == oldPos[axis] {
			continue
		}
		reverted := pos
		reverted[axis] = oldPos[axis]
		if !r.penetrates(reverted, obstacles) {
			r.setAxisFlag(axis, info)
			return reverted
		}
	}

	info.X, info.Y, info.Z = true, true, true
	return oldPos
}

// penetrates tests strict volumetric overlap, the no-penetration invariant.
// Touching within epsilon is contact, not penetration.
func (r *Resolver) penetrates(pos mgl64.Vec3, obstacles []Obstacle) bool {
	bb := r.entityBox(pos)

	candidates := voxel.BlocksWithin(bb)
	defer voxel.PutScratch(candidates)
	for _, p := range candidates {
		if r.det.source.Collidable(p) && bb.Overlaps(p.Box()) {
			return true
		}
	}
	for _, ob := range obstacles {
		if bb.Overlaps(ob.Box) {
			return true
		}
	}
	return false
}

// CheckBlockCollision reports whether the entity box at pos intersects a
// collidable block, pushing a collision event to the sink. Detection is
// unchanged by the sink; the event is observability only.
func (r *Resolver) CheckBlockCollision(id string, pos mgl64.Vec3) bool {
	bb := r.entityBox(pos)
	blockPos, hit := r.det.collidingBlock(pos)

	ev := Event{
		Kind:      EventBlock,
		Time:      time.Now(),
		EntityID:  id,
		EntityBox: bb,
		Collision: hit,
	}
	if hit {
		ev.OtherBox = blockPos.Box()
		ev.BlockPos = blockPos
	}
	r.sink.Push(ev)
	return hit
}

// CheckPlayerCollision reports whether the entity box at pos intersects any
// of the other entities' boxes, pushing one event per hit pair.
func (r *Resolver) CheckPlayerCollision(id string, pos mgl64.Vec3, obstacles []Obstacle) bool {
	bb := r.entityBox(pos)
	hit := false
	for _, ob := range obstacles {
		if ob.ID == id || !bb.Intersects(ob.Box) {
			continue
		}
		hit = true
		r.sink.Push(Event{
			Kind:      EventPlayer,
			Time:      time.Now(),
			EntityID:  id,
			OtherID:   ob.ID,
			EntityBox: bb,
			OtherBox:  ob.Box,
			Collision: true,
		})
	}
	if !hit {
		r.sink.Push(Event{
			Kind:      EventPlayer,
			Time:      time.Now(),
			EntityID:  id,
			EntityBox: bb,
		})
	}
	return hit
}

// ServerSideCollisionCheck resolves pos+delta and tells the caller which
// velocity components must reset. The integrator consumes this composition
// on the server tick path.
func (r *Resolver) ServerSideCollisionCheck(id string, pos, delta mgl64.Vec3, obstacles []Obstacle) (mgl64.Vec3, ResetFlags) {
	resolved, info := r.Resolve(pos, pos.Add(delta), obstacles)
	if info.Any() {
		r.CheckBlockCollision(id, resolved)
	}
	return resolved, ResetFlags{ResetVX: info.X, ResetVY: info.Y, ResetVZ: info.Z}
}

// Detector returns the detector the resolver resolves against.
func (r *Resolver) Detector() *Detector {
	return r.det
}

func (r *Resolver) entityBox(pos mgl64.Vec3) voxel.BBox {
	return voxel.EntityBox(pos, r.conf.PlayerHalfWidth, r.conf.PlayerHeight)
}
