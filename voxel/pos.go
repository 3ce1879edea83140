package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos is the position of a block in the world grid. The block at a Pos
// occupies the unit cube [X,X+1)x[Y,Y+1)x[Z,Z+1).
type Pos [3]int

// X returns the X coordinate of the block position.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int {
	return p[2]
}

// Vec3 returns the position of the block's minimum corner as a vector.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// PosFromVec3 returns the Pos of the block that contains the point passed.
func PosFromVec3(vec mgl64.Vec3) Pos {
	return Pos{
		int(math.Floor(vec[0])),
		int(math.Floor(vec[1])),
		int(math.Floor(vec[2])),
	}
}

// Box returns the bounding box of the unit cube occupied by the block at p.
func (p Pos) Box() BBox {
	min := p.Vec3()
	return Box(min[0], min[1], min[2], min[0]+1, min[1]+1, min[2]+1)
}
