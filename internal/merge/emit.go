package merge

import (
	gomath "math"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// groupSize is the vertex and index count of one group.
type groupSize struct {
	vertices int
	indices  int
}

// layout places groups back to back in the merged buffers and returns one
// descriptor per group, plus the total vertex and index counts.
func layout(sizes []groupSize) (subMeshes []mesh.SubMesh, vertices, indices int) {
	subMeshes = make([]mesh.SubMesh, len(sizes))
	for i, s := range sizes {
		subMeshes[i] = mesh.SubMesh{
			FirstVertex: vertices,
			VertexCount: s.vertices,
			IndexStart:  indices,
			IndexCount:  s.indices,
		}
		vertices += s.vertices
		indices += s.indices
	}
	return subMeshes, vertices, indices
}

// checkVertexCount accepts up to 2^32 vertices, the most a uint32 index
// (0 to MaxUint32) can address.
func checkVertexCount(n uint64) error {
	if n > gomath.MaxUint32+1 {
		return ErrTooManyVertices
	}
	return nil
}

// emit concatenates the groups into a single mesh and returns it with the
// parallel material list.
func (gs *groupSet) emit(name string) (*mesh.Mesh, []*mesh.Material, error) {
	sizes := make([]groupSize, gs.count())
	for i, g := range gs.groups {
		sizes[i] = groupSize{vertices: g.vertexCount(), indices: len(g.indices)}
	}

	subMeshes, vertices, indices := layout(sizes)
	if err := checkVertexCount(uint64(vertices)); err != nil {
		return nil, nil, err
	}

	out := &mesh.Mesh{
		Name:      name,
		Positions: make([]math.Vec3, 0, vertices),
		Normals:   make([]math.Vec3, 0, vertices),
		Tangents:  make([]math.Vec4, 0, vertices),
		UVs:       make([]math.Vec2, 0, vertices),
		Indices:   make([]uint32, 0, indices),
		SubMeshes: subMeshes,
	}
	materials := make([]*mesh.Material, gs.count())

	for i, g := range gs.groups {
		materials[i] = g.material
		out.Indices = appendRebased(out.Indices, g.indices, uint32(subMeshes[i].FirstVertex))
		out.Positions = append(out.Positions, g.positions...)
		out.Normals = append(out.Normals, g.normals...)
		out.Tangents = append(out.Tangents, g.tangents...)
		out.UVs = append(out.UVs, g.uvs...)
	}

	out.RecalculateBounds()
	return out, materials, nil
}
