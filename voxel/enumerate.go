package voxel

import "math"

// BlocksWithin returns the positions of all blocks whose unit cubes could
// intersect the bounding box passed, floor(min) through floor(max) inclusive
// per axis. The search is bounded by the volume of bb, never by world size.
// The returned slice may be recycled through PutScratch.
func BlocksWithin(bb BBox) []Pos {
	min, max := bb.Min(), bb.Max()
	x0, y0, z0 := int(math.Floor(min[0])), int(math.Floor(min[1])), int(math.Floor(min[2]))
	x1, y1, z1 := int(math.Floor(max[0])), int(math.Floor(max[1])), int(math.Floor(max[2]))

	out := getScratch()
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				out = append(out, Pos{x, y, z})
			}
		}
	}
	return out
}
