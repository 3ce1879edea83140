package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox is an axis-aligned bounding box in world space, defined by a minimum
// and a maximum corner.
type BBox struct {
	min, max mgl64.Vec3
}

// Box creates a new bounding box from the two corners passed. The coordinates
// are expected in min/max order.
func Box(x0, y0, z0, x1, y1, z1 float64) BBox {
	return BBox{min: mgl64.Vec3{x0, y0, z0}, max: mgl64.Vec3{x1, y1, z1}}
}

// EntityBox returns the bounding box of an entity standing at pos: pos X/Z is
// the horizontal centre of the box and pos Y is the feet elevation.
func EntityBox(pos mgl64.Vec3, halfWidth, height float64) BBox {
	return Box(
		pos[0]-halfWidth, pos[1], pos[2]-halfWidth,
		pos[0]+halfWidth, pos[1]+height, pos[2]+halfWidth,
	)
}

// Min returns the minimum corner of the bounding box.
func (bb BBox) Min() mgl64.Vec3 {
	return bb.min
}

// Max returns the maximum corner of the bounding box.
func (bb BBox) Max() mgl64.Vec3 {
	return bb.max
}

// Extend expands the bounding box in the direction of vec, so that the
// returned box covers both the original volume and the volume after moving
// by vec.
func (bb BBox) Extend(vec mgl64.Vec3) BBox {
	res := bb
	for i := range 3 {
		if vec[i] < 0 {
			res.min[i] += vec[i]
		} else {
			res.max[i] += vec[i]
		}
	}
	return res
}

// Overlaps checks if the bounding box strictly overlaps another. Boxes that
// merely touch at a face, edge or corner do not overlap.
func (bb BBox) Overlaps(other BBox) bool {
	return bb.min[0] < other.max[0] && bb.max[0] > other.min[0] &&
		bb.min[1] < other.max[1] && bb.max[1] > other.min[1] &&
		bb.min[2] < other.max[2] && bb.max[2] > other.min[2]
}

// Intersects is the inclusive variant of Overlaps: boxes that touch exactly
// at a boundary intersect. Resolution boundaries use this variant, as a
// strict test lets an entity slide through geometry when an edge lands on an
// exact block boundary.
func (bb BBox) Intersects(other BBox) bool {
	return bb.min[0] <= other.max[0] && bb.max[0] >= other.min[0] &&
		bb.min[1] <= other.max[1] && bb.max[1] >= other.min[1] &&
		bb.min[2] <= other.max[2] && bb.max[2] >= other.min[2]
}

// Volume returns the volume of the bounding box.
func (bb BBox) Volume() float64 {
	d := bb.max.Sub(bb.min)
	return d[0] * d[1] * d[2]
}

// IntersectionVolume returns the volume shared by both bounding boxes, or 0
// if the boxes are disjoint or only touching.
func (bb BBox) IntersectionVolume(other BBox) float64 {
	v := 1.0
	for i := range 3 {
		d := math.Min(bb.max[i], other.max[i]) - math.Max(bb.min[i], other.min[i])
		if d <= 0 {
			return 0
		}
		v *= d
	}
	return v
}

// IOU returns the intersection-over-union of both bounding boxes, a value in
// [0,1]. Face, edge and corner contact yields exactly 0, which distinguishes
// touching from overlapping.
func (bb BBox) IOU(other BBox) float64 {
	inter := bb.IntersectionVolume(other)
	if inter == 0 {
		return 0
	}
	union := bb.Volume() + other.Volume() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// Width returns the extent of the bounding box on the X axis.
func (bb BBox) Width() float64 {
	return bb.max[0] - bb.min[0]
}

// Height returns the extent of the bounding box on the Y axis.
func (bb BBox) Height() float64 {
	return bb.max[1] - bb.min[1]
}
