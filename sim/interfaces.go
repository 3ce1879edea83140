package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// BlockSource bridges the world for block lookups. The core reads it for the
// duration of a tick and never writes to it; callers pass a snapshot frozen
// before the tick begins. *world.Snapshot and *world.World both satisfy it.
type BlockSource interface {
	// Collidable reports whether a collidable block occupies the position.
	Collidable(pos voxel.Pos) bool
	// Size returns the world-size bound on the X and Z axes.
	Size() int
}

// Obstacle is another entity's frozen collision volume, captured before the
// tick begins so that resolution never observes an in-progress, same-tick
// mutation of that entity.
type Obstacle struct {
	ID  string
	Box voxel.BBox
}

// ObstacleAt builds an Obstacle for an entity standing at pos.
func ObstacleAt(id string, pos mgl64.Vec3, halfWidth, height float64) Obstacle {
	return Obstacle{ID: id, Box: voxel.EntityBox(pos, halfWidth, height)}
}
