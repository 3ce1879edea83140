package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// Detector answers point-in-world collision queries against a block source.
// Every query enumerates only the voxels that could intersect the entity's
// bounding box, so its cost is bounded by entity volume, never world size.
type Detector struct {
	source BlockSource
	conf   PhysicsConfig
	pred   CollisionPredicate
}

// NewDetector creates a Detector reading from the block source passed.
func NewDetector(source BlockSource, conf PhysicsConfig) *Detector {
	conf = conf.norm()
	return &Detector{
		source: source,
		conf:   conf,
		pred:   predicateFor(conf),
	}
}

// CheckCollision reports whether the entity bounding box at pos intersects
// any collidable block. The first collidable hit wins.
func (d *Detector) CheckCollision(pos mgl64.Vec3) bool {
	return d.boxCollides(d.entityBox(pos))
}

// boxCollides runs the configured predicate over the candidate voxels of bb.
func (d *Detector) boxCollides(bb voxel.BBox) bool {
	candidates := voxel.BlocksWithin(bb)
	defer voxel.PutScratch(candidates)

	for _, pos := range candidates {
		if d.source.Collidable(pos) && d.pred.Collides(bb, pos.Box()) {
			return true
		}
	}
	return false
}

// OnGround reports whether the entity at pos has a collidable block within
// GroundTolerance below its feet. A stationary, already-resting entity is
// recognised as grounded without relying on motion-triggered snapping.
func (d *Detector) OnGround(pos mgl64.Vec3) bool {
	probe := d.entityBox(pos.Sub(mgl64.Vec3{0, d.conf.GroundTolerance, 0}))
	// Only the slab below the feet matters for ground contact.
	probe = voxel.Box(
		probe.Min().X(), probe.Min().Y(), probe.Min().Z(),
		probe.Max().X(), pos[1], probe.Max().Z(),
	)
	return d.boxCollides(probe)
}

// FindGroundLevel scans the column at (x, z) downward from fromY for the
// topmost collidable block and returns its standing surface, block top + 1.
// The second return value is false when no block exists above the world
// floor.
func (d *Detector) FindGroundLevel(x, z, fromY float64) (float64, bool) {
	bx, bz := int(math.Floor(x)), int(math.Floor(z))
	for by := int(math.Floor(fromY)); by >= 0; by-- {
		if d.source.Collidable(voxel.Pos{bx, by, bz}) {
			return float64(by) + 1, true
		}
	}
	return 0, false
}

// RayCast samples the segment from start to end at a resolution proportional
// to its length, testing the entity bounding box at each sample. It returns
// the first collidable block hit. RayCast is a supplementary diagnostic for
// long single-shot checks; the resolver's per-axis sub-stepped path is the
// resolution authority.
func (d *Detector) RayCast(start, end mgl64.Vec3) (voxel.Pos, bool) {
	delta := end.Sub(start)
	length := delta.Len()

	steps := int(math.Ceil(length/rayCastResolution)) + 1
	for i := 0; i <= steps; i++ {
		sample := start.Add(delta.Mul(float64(i) / float64(steps)))
		if pos, ok := d.collidingBlock(sample); ok {
			return pos, true
		}
	}
	return voxel.Pos{}, false
}

// rayCastResolution is the sampling distance of RayCast, kept below the
// player half-width so that a sample cannot skip a block the box would
// touch.
const rayCastResolution = 0.25

func (d *Detector) collidingBlock(pos mgl64.Vec3) (voxel.Pos, bool) {
	bb := d.entityBox(pos)
	candidates := voxel.BlocksWithin(bb)
	defer voxel.PutScratch(candidates)

	for _, p := range candidates {
		if d.source.Collidable(p) && d.pred.Collides(bb, p.Box()) {
			return p, true
		}
	}
	return voxel.Pos{}, false
}

// CanStepUp reports whether the vertical delta from from to to is a
// permissible step: positive, within the step-height limit, and with the
// destination footprint free. Full-height obstacles cannot be climbed this
// way.
func (d *Detector) CanStepUp(from, to mgl64.Vec3) bool {
	dy := to[1] - from[1]
	if dy <= 0 || dy > d.conf.StepHeight+d.conf.Epsilon {
		return false
	}
	return !d.CheckCollision(to)
}

func (d *Detector) entityBox(pos mgl64.Vec3) voxel.BBox {
	return voxel.EntityBox(pos, d.conf.PlayerHalfWidth, d.conf.PlayerHeight)
}

// Config returns the immutable config the detector was built with.
func (d *Detector) Config() PhysicsConfig {
	return d.conf
}

// Source returns the block source the detector reads from.
func (d *Detector) Source() BlockSource {
	return d.source
}
