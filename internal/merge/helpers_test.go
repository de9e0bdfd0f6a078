package merge

import (
	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// fakeNode is a minimal Source for tests.
type fakeNode struct {
	name      string
	pos       math.Vec3
	rot       math.Vec3
	hasMesh   bool
	mesh      *mesh.Mesh
	materials []*mesh.Material
	children  []*fakeNode
}

func (n *fakeNode) Name() string                { return n.name }
func (n *fakeNode) HasMesh() bool               { return n.hasMesh }
func (n *fakeNode) Mesh() *mesh.Mesh            { return n.mesh }
func (n *fakeNode) Materials() []*mesh.Material { return n.materials }
func (n *fakeNode) WorldPosition() math.Vec3    { return n.pos }
func (n *fakeNode) WorldEulerAngles() math.Vec3 { return n.rot }

func (n *fakeNode) Children() []Source {
	out := make([]Source, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func branch(name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{name: name, children: children}
}

func withMesh(name string, m *mesh.Mesh, mats ...*mesh.Material) *fakeNode {
	return &fakeNode{name: name, hasMesh: true, mesh: m, materials: mats}
}

func (n *fakeNode) at(pos, rot math.Vec3) *fakeNode {
	n.pos = pos
	n.rot = rot
	return n
}

// quads returns two unit quads (z=0 and z=1), one per submesh, with
// normals, tangents and uvs.
func quads() *mesh.Mesh {
	m := &mesh.Mesh{
		Name: "quads",
		Positions: []math.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 5, 6, 4, 6, 7,
		},
		SubMeshes: []mesh.SubMesh{
			{FirstVertex: 0, VertexCount: 4, IndexStart: 0, IndexCount: 6},
			{FirstVertex: 4, VertexCount: 4, IndexStart: 6, IndexCount: 6},
		},
	}
	for _, p := range m.Positions {
		m.Normals = append(m.Normals, math.Vec3{0, 0, 1})
		m.Tangents = append(m.Tangents, math.Vec4{1, 0, 0, 1})
		m.UVs = append(m.UVs, math.Vec2{p.X, p.Y})
	}
	return m
}

// triangle returns a single triangle without explicit submeshes or
// optional attributes.
func triangle() *mesh.Mesh {
	return &mesh.Mesh{
		Name:      "triangle",
		Positions: []math.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
}

func material(name string) *mesh.Material {
	return &mesh.Material{Name: name}
}

func names(sources []Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Name()
	}
	return out
}
