package world

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Hash returns a content hash of the snapshot. Server and prediction client
// compare hashes before replaying ticks, so the hash must not depend on map
// iteration order: per-block hashes are combined commutatively.
func (s *Snapshot) Hash() uint64 {
	var sum uint64
	var buf [32]byte
	for pos, b := range s.blocks {
		binary.LittleEndian.PutUint64(buf[0:], uint64(int64(pos[0])))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(pos[1])))
		binary.LittleEndian.PutUint64(buf[16:], uint64(int64(pos[2])))
		n := copy(buf[24:], b.Name)
		sum += xxh3.Hash(buf[:24+n])
	}
	return sum
}
