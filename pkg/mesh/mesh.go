// Package mesh defines the triangle mesh data model shared by the merge
// engine, the scene loader and the on-disk mesh format.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshmerge/pkg/math"
)

// Mesh validation errors.
var (
	ErrAttributeLength = errors.New("vertex attribute length mismatch")
	ErrSubMeshRange    = errors.New("submesh range out of bounds")
	ErrIndexRange      = errors.New("index out of submesh vertex range")
	ErrTriangleStride  = errors.New("index count is not a multiple of 3")
)

// SubMesh locates one material's geometry inside a mesh: a contiguous vertex
// range and a contiguous index range.
type SubMesh struct {
	FirstVertex int `yaml:"first_vertex"`
	VertexCount int `yaml:"vertex_count"`
	IndexStart  int `yaml:"index_start"`
	IndexCount  int `yaml:"index_count"`
}

// VertexEnd returns one past the last vertex of the submesh.
func (s SubMesh) VertexEnd() int {
	return s.FirstVertex + s.VertexCount
}

// IndexEnd returns one past the last index of the submesh.
func (s SubMesh) IndexEnd() int {
	return s.IndexStart + s.IndexCount
}

// String returns a compact description of the ranges.
func (s SubMesh) String() string {
	return fmt.Sprintf("vertices [%d,%d) indices [%d,%d)",
		s.FirstVertex, s.VertexEnd(), s.IndexStart, s.IndexEnd())
}

// Material is a render material. Materials are compared by pointer: two
// distinct *Material values are different materials even when their fields
// are equal.
type Material struct {
	Name    string
	Texture string
	Color   [4]float32
}

// Mesh holds parallel vertex attribute arrays, a triangle index list and the
// submesh partition of both.
//
// Normals, Tangents and UVs are optional: each is either empty or exactly
// as long as Positions.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec4
	UVs       []math.Vec2
	Indices   []uint32
	SubMeshes []SubMesh
	Bounds    Bounds
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Partition returns the submesh descriptors. A mesh without explicit
// submeshes is treated as one submesh covering every vertex and index.
func (m *Mesh) Partition() []SubMesh {
	if len(m.SubMeshes) > 0 {
		return m.SubMeshes
	}
	return []SubMesh{{
		VertexCount: len(m.Positions),
		IndexCount:  len(m.Indices),
	}}
}

// Validate checks attribute lengths and that every submesh is a well-formed,
// vertex-range-partitioned slice of the mesh: its ranges lie inside the
// buffers and its indices reference only its own vertices.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if l := len(m.Normals); l != 0 && l != n {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrAttributeLength, l, n)
	}
	if l := len(m.Tangents); l != 0 && l != n {
		return fmt.Errorf("%w: %d tangents for %d vertices", ErrAttributeLength, l, n)
	}
	if l := len(m.UVs); l != 0 && l != n {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrAttributeLength, l, n)
	}

	for i, sm := range m.Partition() {
		if err := m.validateSubMesh(sm); err != nil {
			return fmt.Errorf("submesh %d: %w", i, err)
		}
	}
	return nil
}

func (m *Mesh) validateSubMesh(sm SubMesh) error {
	if sm.FirstVertex < 0 || sm.VertexCount < 0 || sm.VertexEnd() > len(m.Positions) {
		return fmt.Errorf("%w: %s with %d vertices", ErrSubMeshRange, sm, len(m.Positions))
	}
	if sm.IndexStart < 0 || sm.IndexCount < 0 || sm.IndexEnd() > len(m.Indices) {
		return fmt.Errorf("%w: %s with %d indices", ErrSubMeshRange, sm, len(m.Indices))
	}
	if sm.IndexCount%3 != 0 {
		return fmt.Errorf("%w: %d", ErrTriangleStride, sm.IndexCount)
	}
	for _, idx := range m.Indices[sm.IndexStart:sm.IndexEnd()] {
		if int(idx) < sm.FirstVertex || int(idx) >= sm.VertexEnd() {
			return fmt.Errorf("%w: index %d, %s", ErrIndexRange, idx, sm)
		}
	}
	return nil
}
