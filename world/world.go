package world

import (
	"github.com/sasha-s/go-deadlock"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// World is a sparse voxel world: a mapping from block positions to block
// descriptors. Positions without an entry are empty space. Block mutation
// goes through the world owner; the physics core only ever reads a frozen
// Snapshot of it.
type World struct {
	size   int
	blocks map[voxel.Pos]Block

	deadlock.RWMutex
}

// New creates an empty world bounded to [0, size) on the X and Z axes.
func New(size int) *World {
	return &World{
		size:   size,
		blocks: make(map[voxel.Pos]Block),
	}
}

// Size returns the world-size bound on the X and Z axes.
func (w *World) Size() int {
	return w.size
}

// SetBlock places a block at the position passed, replacing any previous
// block. Placing an air block removes the entry instead.
func (w *World) SetBlock(pos voxel.Pos, b Block) {
	w.Lock()
	defer w.Unlock()

	if b.Air() {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = b
}

// RemoveBlock removes the block at the position passed, if any.
func (w *World) RemoveBlock(pos voxel.Pos) {
	w.Lock()
	defer w.Unlock()

	delete(w.blocks, pos)
}

// Block returns the block at the position passed. The second return value is
// false for empty space.
func (w *World) Block(pos voxel.Pos) (Block, bool) {
	w.RLock()
	b, ok := w.blocks[pos]
	w.RUnlock()

	return b, ok
}

// Collidable reports whether a collidable block occupies the position passed.
func (w *World) Collidable(pos voxel.Pos) bool {
	w.RLock()
	b, ok := w.blocks[pos]
	w.RUnlock()

	return ok && b.Collidable
}

// Snapshot returns an immutable copy of the world for the duration of a
// tick. Ticks, including parallel per-entity ticks, resolve against the
// snapshot so that a concurrent block mutation can never be observed
// mid-tick.
func (w *World) Snapshot() *Snapshot {
	w.RLock()
	defer w.RUnlock()

	blocks := make(map[voxel.Pos]Block, len(w.blocks))
	for pos, b := range w.blocks {
		blocks[pos] = b
	}
	return &Snapshot{size: w.size, blocks: blocks}
}

// Snapshot is a frozen, read-only view of a World taken before a tick.
type Snapshot struct {
	size   int
	blocks map[voxel.Pos]Block
}

// Size returns the world-size bound on the X and Z axes.
func (s *Snapshot) Size() int {
	return s.size
}

// Block returns the block at the position passed.
func (s *Snapshot) Block(pos voxel.Pos) (Block, bool) {
	b, ok := s.blocks[pos]
	return b, ok
}

// Collidable reports whether a collidable block occupies the position passed.
func (s *Snapshot) Collidable(pos voxel.Pos) bool {
	b, ok := s.blocks[pos]
	return ok && b.Collidable
}

// Len returns the number of placed blocks.
func (s *Snapshot) Len() int {
	return len(s.blocks)
}
