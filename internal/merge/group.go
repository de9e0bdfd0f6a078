package merge

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// group accumulates all geometry drawn with one material. Its indices are
// local to the group: each one is below len(positions).
type group struct {
	material  *mesh.Material
	positions []math.Vec3
	normals   []math.Vec3
	tangents  []math.Vec4
	uvs       []math.Vec2
	indices   []uint32
}

func (g *group) vertexCount() int {
	return len(g.positions)
}

// groupSet is an ordered map from material identity to its group. Iteration
// order is the order materials were first seen.
type groupSet struct {
	index  map[*mesh.Material]int
	groups []*group
}

func newGroupSet() *groupSet {
	return &groupSet{index: make(map[*mesh.Material]int)}
}

// add appends a slice to the group of its material, creating the group on
// first sight. The slice is owned by the set afterwards.
func (gs *groupSet) add(s slice) {
	i, ok := gs.index[s.material]
	if !ok {
		gs.index[s.material] = len(gs.groups)
		gs.groups = append(gs.groups, &group{
			material:  s.material,
			positions: s.positions,
			normals:   s.normals,
			tangents:  s.tangents,
			uvs:       s.uvs,
			indices:   s.indices,
		})
		return
	}

	g := gs.groups[i]
	base := uint32(g.vertexCount())
	g.indices = appendRebased(g.indices, s.indices, base)
	g.positions = append(g.positions, s.positions...)
	g.normals = append(g.normals, s.normals...)
	g.tangents = append(g.tangents, s.tangents...)
	g.uvs = append(g.uvs, s.uvs...)
}

func (gs *groupSet) count() int {
	return len(gs.groups)
}

// appendRebased appends src to dst with base added to every index.
func appendRebased[T constraints.Integer](dst, src []T, base T) []T {
	dst = slices.Grow(dst, len(src))
	for _, idx := range src {
		dst = append(dst, idx+base)
	}
	return dst
}
