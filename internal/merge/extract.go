package merge

import (
	"fmt"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// slice is one submesh of one source, re-expressed relative to the pivot.
// Its indices are local: 0 is the first vertex of the slice.
type slice struct {
	material  *mesh.Material
	positions []math.Vec3
	normals   []math.Vec3
	tangents  []math.Vec4
	uvs       []math.Vec2
	indices   []uint32
}

func (s *slice) vertexCount() int {
	return len(s.positions)
}

// extract copies every submesh of src into pivot-relative slices.
//
// The accepted mesh format is vertex-range partitioned: each submesh's index
// range references only vertices inside its own vertex range. Meshes that
// share vertices between submeshes are rejected with ErrMalformedSourceMesh.
func extract(src Source, pivot math.Vec3) ([]slice, error) {
	m := src.Mesh()
	materials := src.Materials()
	if m == nil || materials == nil {
		return nil, fmt.Errorf("%w: node %q", ErrMissingGeometry, src.Name())
	}

	parts := m.Partition()
	if len(materials) != len(parts) {
		return nil, fmt.Errorf("%w: node %q has %d materials for %d submeshes",
			ErrMalformedSourceMesh, src.Name(), len(materials), len(parts))
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: node %q: %w", ErrMalformedSourceMesh, src.Name(), err)
	}

	offset := src.WorldPosition().Sub(pivot)
	rot := worldRotation(src)

	out := make([]slice, len(parts))
	for i, sm := range parts {
		first, end := sm.FirstVertex, sm.VertexEnd()
		s := slice{
			material:  materials[i],
			positions: make([]math.Vec3, sm.VertexCount),
			normals:   make([]math.Vec3, sm.VertexCount),
			tangents:  make([]math.Vec4, sm.VertexCount),
			uvs:       make([]math.Vec2, sm.VertexCount),
			indices:   make([]uint32, sm.IndexCount),
		}

		// Rotating about the offset point after shifting by it leaves the
		// source origin at offset and spins the geometry around it.
		for j, p := range m.Positions[first:end] {
			s.positions[j] = rot.RotateAround(p.Add(offset), offset)
		}
		// Missing optional attributes stay zero so merged arrays remain parallel.
		if len(m.Normals) > 0 {
			for j, n := range m.Normals[first:end] {
				s.normals[j] = rot.Rotate(n)
			}
		}
		if len(m.Tangents) > 0 {
			for j, t := range m.Tangents[first:end] {
				s.tangents[j] = t.WithXYZ(rot.Rotate(t.XYZ()))
			}
		}
		if len(m.UVs) > 0 {
			copy(s.uvs, m.UVs[first:end])
		}

		// Validate guaranteed every index is in [first, end).
		for j, idx := range m.Indices[sm.IndexStart:sm.IndexEnd()] {
			s.indices[j] = idx - uint32(first)
		}

		out[i] = s
	}
	return out, nil
}
