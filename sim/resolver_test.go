package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

func newTestResolver(m blockMap) *Resolver {
	return NewResolver(NewDetector(m, DefaultConfig()), nil)
}

// A single block at (5,10,5) approached along each horizontal axis from both
// sides: the entity centre stops at the blocking face offset by the
// half-width and epsilon, and only that axis is flagged.
func TestResolveAxisSnapping(t *testing.T) {
	conf := DefaultConfig()
	hw, eps := conf.PlayerHalfWidth, conf.Epsilon

	cases := []struct {
		name     string
		from, to mgl64.Vec3
		want     mgl64.Vec3
		info     CollisionInfo
	}{
		{
			name: "plus X",
			from: mgl64.Vec3{4.0, 10.5, 5.5},
			to:   mgl64.Vec3{6.0, 10.5, 5.5},
			want: mgl64.Vec3{5 - hw - eps, 10.5, 5.5},
			info: CollisionInfo{X: true},
		},
		{
			name: "minus X",
			from: mgl64.Vec3{7.0, 10.5, 5.5},
			to:   mgl64.Vec3{5.0, 10.5, 5.5},
			want: mgl64.Vec3{6 + hw + eps, 10.5, 5.5},
			info: CollisionInfo{X: true},
		},
		{
			name: "plus Z",
			from: mgl64.Vec3{5.5, 10.5, 4.0},
			to:   mgl64.Vec3{5.5, 10.5, 6.0},
			want: mgl64.Vec3{5.5, 10.5, 5 - hw - eps},
			info: CollisionInfo{Z: true},
		},
		{
			name: "minus Z",
			from: mgl64.Vec3{5.5, 10.5, 7.0},
			to:   mgl64.Vec3{5.5, 10.5, 5.0},
			want: mgl64.Vec3{5.5, 10.5, 6 + hw + eps},
			info: CollisionInfo{Z: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))
			pos, info := r.Resolve(tc.from, tc.to, nil)

			assert.InDelta(t, tc.want[0], pos[0], 1e-9)
			assert.InDelta(t, tc.want[1], pos[1], 1e-9)
			assert.InDelta(t, tc.want[2], pos[2], 1e-9)
			assert.Equal(t, tc.info.X, info.X)
			assert.Equal(t, tc.info.Y, info.Y)
			assert.Equal(t, tc.info.Z, info.Z)
		})
	}
}

func TestResolveGroundSnap(t *testing.T) {
	conf := DefaultConfig()
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))

	pos, info := r.Resolve(mgl64.Vec3{5.5, 11.5, 5.5}, mgl64.Vec3{5.5, 10.5, 5.5}, nil)

	assert.InDelta(t, 11+conf.Epsilon, pos[1], 1e-9)
	assert.True(t, info.Y)
	assert.True(t, info.Ground)
	assert.False(t, info.X)
	assert.False(t, info.Z)
}

func TestResolveCeilingSnap(t *testing.T) {
	conf := DefaultConfig()
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 12, 5}))

	pos, info := r.Resolve(mgl64.Vec3{5.5, 10.0, 5.5}, mgl64.Vec3{5.5, 10.5, 5.5}, nil)

	assert.InDelta(t, 12-conf.PlayerHeight-conf.Epsilon, pos[1], 1e-9)
	assert.True(t, info.Y)
	assert.False(t, info.Ground)
}

// Scenario: world-size 128, movement far past the edge. The centre clamps to
// size minus half-width and the axis is flagged even without a block.
func TestResolveWorldClamp(t *testing.T) {
	conf := DefaultConfig()
	r := newTestResolver(newBlockMap(128))

	t.Run("high edge", func(t *testing.T) {
		pos, info := r.Resolve(mgl64.Vec3{64, 50, 64}, mgl64.Vec3{200, 50, 64}, nil)
		assert.Equal(t, 128-conf.PlayerHalfWidth, pos[0])
		assert.True(t, info.X)
		assert.False(t, info.Z)
	})

	t.Run("low edge", func(t *testing.T) {
		pos, info := r.Resolve(mgl64.Vec3{64, 50, 64}, mgl64.Vec3{64, 50, -20}, nil)
		assert.Equal(t, conf.PlayerHalfWidth, pos[2])
		assert.True(t, info.Z)
		assert.False(t, info.X)
	})
}

func TestResolveIdempotent(t *testing.T) {
	m := newBlockMap(128).groundPlane(10, 0, 20, 0, 20)
	r := newTestResolver(m)

	t.Run("airborne", func(t *testing.T) {
		p := mgl64.Vec3{8, 14, 8}
		pos, info := r.Resolve(p, p, nil)
		assert.Equal(t, p, pos)
		assert.Equal(t, CollisionInfo{}, info)
	})

	t.Run("resting keeps the ground flag", func(t *testing.T) {
		p := mgl64.Vec3{8, 11.001, 8}
		pos, info := r.Resolve(p, p, nil)
		assert.Equal(t, p, pos)
		assert.Equal(t, CollisionInfo{Ground: true}, info)
	})
}

// A diagonal move whose straight path cuts the corner of a block must not
// come out unmodified: the axis that crosses solid geometry is blocked and
// snapped, the free axis may slide.
func TestResolveDiagonalCorner(t *testing.T) {
	conf := DefaultConfig()
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))

	from := mgl64.Vec3{4.5, 10.5, 4.5}
	to := mgl64.Vec3{5.5, 10.5, 5.5}
	pos, info := r.Resolve(from, to, nil)

	assert.NotEqual(t, to, pos, "destination through the corner must be corrected")
	assert.True(t, info.Z)
	assert.InDelta(t, 5-conf.PlayerHalfWidth-conf.Epsilon, pos[2], 1e-9)
	// X resolves first while Z is still clear of the block, so it passes.
	assert.InDelta(t, to[0], pos[0], 1e-9)
}

// No position returned by Resolve may strictly overlap a collidable block:
// the no-penetration invariant, probed over a grid of movements against a
// block cluster.
func TestResolveNeverPenetrates(t *testing.T) {
	m := newBlockMap(128,
		voxel.Pos{5, 10, 5}, voxel.Pos{6, 10, 5}, voxel.Pos{5, 11, 5},
		voxel.Pos{4, 10, 6}, voxel.Pos{6, 11, 6},
	)
	r := newTestResolver(m)

	for dx := -2.0; dx <= 2.0; dx += 0.5 {
		for dy := -2.0; dy <= 2.0; dy += 1.0 {
			for dz := -2.0; dz <= 2.0; dz += 0.5 {
				from := mgl64.Vec3{3.0, 10.2, 4.0}
				to := from.Add(mgl64.Vec3{dx, dy, dz})
				pos, _ := r.Resolve(from, to, nil)

				require.False(t, r.penetrates(pos, nil),
					"penetration after resolving %v -> %v: got %v", from, to, pos)
			}
		}
	}
}

func TestResolveEntityObstacle(t *testing.T) {
	conf := DefaultConfig()
	r := newTestResolver(newBlockMap(128))

	other := ObstacleAt("other", mgl64.Vec3{8, 10, 5.5}, conf.PlayerHalfWidth, conf.PlayerHeight)
	pos, info := r.Resolve(mgl64.Vec3{5.5, 10, 5.5}, mgl64.Vec3{8, 10, 5.5}, []Obstacle{other})

	// Snaps to the obstacle's near face: obstacle min X minus half-width.
	assert.InDelta(t, (8-conf.PlayerHalfWidth)-conf.PlayerHalfWidth-conf.Epsilon, pos[0], 1e-9)
	assert.True(t, info.X)
}

// An entity hopelessly enclosed by an obstacle cannot be freed by snapping;
// the resolver reverts to the pre-movement position rather than erroring.
func TestResolveRevertsWhenStuck(t *testing.T) {
	r := newTestResolver(newBlockMap(128))

	everything := Obstacle{ID: "cage", Box: voxel.Box(-100, -100, -100, 200, 200, 200)}
	from := mgl64.Vec3{50, 50, 50}
	pos, info := r.Resolve(from, mgl64.Vec3{51, 50, 50}, []Obstacle{everything})

	assert.Equal(t, from, pos)
	assert.True(t, info.X)
	assert.True(t, info.Y)
	assert.True(t, info.Z)
}

func TestResolveNonFiniteInput(t *testing.T) {
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))

	from := mgl64.Vec3{4, 10.5, 5.5}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		pos, info := r.Resolve(from, mgl64.Vec3{bad, 10.5, 5.5}, nil)
		assert.Equal(t, from, pos)
		assert.False(t, info.Any())
	}
}

func TestServerSideCollisionCheck(t *testing.T) {
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))

	resolved, flags := r.ServerSideCollisionCheck("p1", mgl64.Vec3{4, 10.5, 5.5}, mgl64.Vec3{2, 0, 0}, nil)

	assert.Less(t, resolved[0], 5.0)
	assert.True(t, flags.ResetVX)
	assert.False(t, flags.ResetVY)
	assert.False(t, flags.ResetVZ)
}

// Axis symmetry: the same block blocks +X at bx-halfWidth and -X at
// bx+1+halfWidth, with the identical structure on Z.
func TestResolveAxisSymmetry(t *testing.T) {
	conf := DefaultConfig()
	hw, eps := conf.PlayerHalfWidth, conf.Epsilon
	r := newTestResolver(newBlockMap(128, voxel.Pos{5, 10, 5}))

	plusX, _ := r.Resolve(mgl64.Vec3{4, 10.5, 5.5}, mgl64.Vec3{5.5, 10.5, 5.5}, nil)
	minusX, _ := r.Resolve(mgl64.Vec3{7, 10.5, 5.5}, mgl64.Vec3{5.5, 10.5, 5.5}, nil)

	assert.InDelta(t, 5-hw-eps, plusX[0], 1e-9)
	assert.InDelta(t, 6+hw+eps, minusX[0], 1e-9)

	// The stopping faces are symmetric around the block centre at 5.5.
	assert.InDelta(t, 5.5-plusX[0], minusX[0]-5.5, 1e-9)
}
