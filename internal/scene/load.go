package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// document is the YAML layout of a scene file.
type document struct {
	Materials []materialDoc `yaml:"materials"`
	Meshes    []meshDoc     `yaml:"meshes"`
	Nodes     []nodeDoc     `yaml:"nodes"`
}

type materialDoc struct {
	Name    string      `yaml:"name"`
	Texture string      `yaml:"texture"`
	Color   *[4]float32 `yaml:"color"` // absent: opaque white
}

type meshDoc struct {
	Name      string         `yaml:"name"`
	Positions [][3]float32   `yaml:"positions"`
	Normals   [][3]float32   `yaml:"normals"`
	Tangents  [][4]float32   `yaml:"tangents"`
	UVs       [][2]float32   `yaml:"uvs"`
	Indices   []uint32       `yaml:"indices"`
	SubMeshes []mesh.SubMesh `yaml:"submeshes"`
}

type nodeDoc struct {
	Name      string     `yaml:"name"`
	Position  [3]float32 `yaml:"position"`
	Rotation  [3]float32 `yaml:"rotation"` // Euler degrees
	Mesh      *string    `yaml:"mesh"`     // present but empty: component without a mesh
	Materials []string   `yaml:"materials"`
	Children  []nodeDoc  `yaml:"children"`
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML data. Mesh and material references are
// resolved by name; mesh contents are not validated here.
func Parse(data []byte) (*Scene, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := New()

	for _, md := range doc.Materials {
		if _, ok := s.Materials[md.Name]; ok {
			return nil, fmt.Errorf("%w: material %q", ErrDuplicateName, md.Name)
		}
		color := [4]float32{1, 1, 1, 1}
		if md.Color != nil {
			color = *md.Color
		}
		s.Materials[md.Name] = &mesh.Material{Name: md.Name, Texture: md.Texture, Color: color}
	}

	for _, md := range doc.Meshes {
		if _, ok := s.Meshes[md.Name]; ok {
			return nil, fmt.Errorf("%w: mesh %q", ErrDuplicateName, md.Name)
		}
		s.Meshes[md.Name] = md.build()
	}

	for _, nd := range doc.Nodes {
		n, err := s.buildNode(nd)
		if err != nil {
			return nil, err
		}
		s.AddRoot(n)
	}

	return s, nil
}

func (md meshDoc) build() *mesh.Mesh {
	m := &mesh.Mesh{
		Name:      md.Name,
		Indices:   md.Indices,
		SubMeshes: md.SubMeshes,
	}
	if len(md.Positions) > 0 {
		m.Positions = make([]math.Vec3, len(md.Positions))
		for i, p := range md.Positions {
			m.Positions[i] = math.Vec3FromArray(p)
		}
	}
	if len(md.Normals) > 0 {
		m.Normals = make([]math.Vec3, len(md.Normals))
		for i, n := range md.Normals {
			m.Normals[i] = math.Vec3FromArray(n)
		}
	}
	if len(md.Tangents) > 0 {
		m.Tangents = make([]math.Vec4, len(md.Tangents))
		for i, t := range md.Tangents {
			m.Tangents[i] = math.Vec4FromArray(t)
		}
	}
	if len(md.UVs) > 0 {
		m.UVs = make([]math.Vec2, len(md.UVs))
		for i, uv := range md.UVs {
			m.UVs[i] = math.Vec2FromArray(uv)
		}
	}
	m.RecalculateBounds()
	return m
}

func (s *Scene) buildNode(nd nodeDoc) (*Node, error) {
	n := NewNode(nd.Name).
		SetLocalPosition(math.Vec3FromArray(nd.Position)).
		SetLocalEulerAngles(math.Vec3FromArray(nd.Rotation))

	if nd.Mesh != nil {
		var m *mesh.Mesh
		if *nd.Mesh != "" {
			var ok bool
			if m, ok = s.Meshes[*nd.Mesh]; !ok {
				return nil, fmt.Errorf("%w: %q on node %q", ErrUnknownMesh, *nd.Mesh, nd.Name)
			}
		}

		materials := make([]*mesh.Material, len(nd.Materials))
		for i, name := range nd.Materials {
			mat, ok := s.Materials[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q on node %q", ErrUnknownMaterial, name, nd.Name)
			}
			materials[i] = mat
		}
		n.SetGeometry(m, materials)
	}

	for _, cd := range nd.Children {
		child, err := s.buildNode(cd)
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}
