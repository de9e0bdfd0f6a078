package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// Scene lookup errors.
var (
	ErrNodeNotFound    = errors.New("node not found")
	ErrUnknownMesh     = errors.New("unknown mesh")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrDuplicateName   = errors.New("duplicate name")
)

// Scene is a forest of nodes plus the shared meshes and materials they
// reference by name.
type Scene struct {
	Roots     []*Node
	Meshes    map[string]*mesh.Mesh
	Materials map[string]*mesh.Material
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		Meshes:    make(map[string]*mesh.Mesh),
		Materials: make(map[string]*mesh.Material),
	}
}

// AddRoot appends a root node.
func (s *Scene) AddRoot(n *Node) {
	s.Roots = append(s.Roots, n)
}

// Find resolves a slash-separated node path such as "House/Roof". The first
// segment names a root; each following segment names a child of the previous
// node. With duplicate sibling names the first match wins.
func (s *Scene) Find(path string) (*Node, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNodeNotFound)
	}

	cur := findByName(s.Roots, parts[0])
	for _, name := range parts[1:] {
		if cur == nil {
			break
		}
		cur = findByName(cur.children, name)
	}
	if cur == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, path)
	}
	return cur, nil
}

// FindAll resolves several paths, failing on the first miss.
func (s *Scene) FindAll(paths []string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(paths))
	for _, p := range paths {
		n, err := s.Find(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// NodeCount returns the number of nodes in the scene.
func (s *Scene) NodeCount() int {
	count := 0
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			count++
			walk(n.children)
		}
	}
	walk(s.Roots)
	return count
}

func findByName(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}
