package sim

import (
	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// blockMap is a minimal BlockSource for tests: a set of collidable blocks
// and a world-size bound.
type blockMap struct {
	size   int
	blocks map[voxel.Pos]bool
}

func newBlockMap(size int, blocks ...voxel.Pos) blockMap {
	m := blockMap{size: size, blocks: make(map[voxel.Pos]bool, len(blocks))}
	for _, p := range blocks {
		m.blocks[p] = true
	}
	return m
}

func (m blockMap) Collidable(pos voxel.Pos) bool {
	return m.blocks[pos]
}

func (m blockMap) Size() int {
	return m.size
}

// groundPlane adds a solid plane at the given Y level covering the square
// [x0,x1]x[z0,z1].
func (m blockMap) groundPlane(y, x0, x1, z0, z1 int) blockMap {
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			m.blocks[voxel.Pos{x, y, z}] = true
		}
	}
	return m
}
