package voxel

import "sync"

var scratchPool = sync.Pool{
	New: func() interface{} {
		return make([]Pos, 0, 64)
	},
}

func getScratch() []Pos {
	return scratchPool.Get().([]Pos)[:0]
}

// PutScratch returns a slice obtained from BlocksWithin to the pool. Callers
// must not retain the slice afterwards.
func PutScratch(s []Pos) {
	scratchPool.Put(s) //nolint:staticcheck
}
