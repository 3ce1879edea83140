package world

import (
	"math/rand"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// GenerateFlat fills the world with the default starting terrain: a
// flat ground plane at groundY (stone bedrock under a grass/sand surface)
// and a brick wall around the perimeter so entities cannot reach the world
// edge at ground level.
func GenerateFlat(w *World, groundY int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	size := w.Size()

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			w.SetBlock(voxel.Pos{x, groundY - 1, z}, Stone)

			surface := Grass
			if rng.Intn(4) == 0 {
				surface = Sand
			}
			w.SetBlock(voxel.Pos{x, groundY, z}, surface)

			onEdge := x == 0 || z == 0 || x == size-1 || z == size-1
			if onEdge {
				for y := groundY + 1; y <= groundY+2; y++ {
					w.SetBlock(voxel.Pos{x, y, z}, Brick)
				}
			}
		}
	}
}
