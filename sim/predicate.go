package sim

import "github.com/hackolite/cv-minecraft-sub000/voxel"

// CollisionPredicate decides whether an entity box collides with a block
// box. The strict-AABB and IOU-threshold detection modes are two
// implementations of this single interface, selected by configuration
// rather than duplicated at call sites.
type CollisionPredicate interface {
	Collides(entity, block voxel.BBox) bool
}

// strictPredicate is the default volumetric overlap test. It is inclusive at
// boundaries: a player edge exactly coincident with a block edge counts as a
// collision. A strict </> test here allowed single-axis traversal exactly at
// integer boundaries.
type strictPredicate struct{}

func (strictPredicate) Collides(entity, block voxel.BBox) bool {
	return entity.Intersects(block)
}

// iouPredicate collides when the intersection-over-union of both boxes
// exceeds the threshold. IOU is exactly 0 for touching boxes, so a zero
// threshold still distinguishes contact from penetration.
type iouPredicate struct {
	threshold float64
}

func (p iouPredicate) Collides(entity, block voxel.BBox) bool {
	return entity.IOU(block) > p.threshold
}

func predicateFor(conf PhysicsConfig) CollisionPredicate {
	if conf.Mode == DetectionModeIOU {
		return iouPredicate{threshold: conf.IOUThreshold}
	}
	return strictPredicate{}
}
