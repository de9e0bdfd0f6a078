// Package scene provides the transform hierarchy that meshes are merged from:
// named nodes with local position and rotation, optional mesh geometry and
// materials, loaded from YAML scene documents.
package scene

import (
	"errors"
	"strings"

	"github.com/Faultbox/meshmerge/internal/merge"
	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// ErrCyclicHierarchy is returned when attaching a node under itself or one of
// its descendants.
var ErrCyclicHierarchy = errors.New("node cannot be attached under its own subtree")

// Node is a transform in the scene tree. Position and rotation are local to
// the parent; rotation is Euler angles in degrees.
type Node struct {
	name     string
	position math.Vec3
	rotation math.Vec3

	// hasGeometry mirrors a mesh component being attached. The mesh itself
	// can still be nil, which the merge engine reports as missing geometry.
	hasGeometry bool
	mesh        *mesh.Mesh
	materials   []*mesh.Material

	parent   *Node
	children []*Node
}

// NewNode creates a detached node at the origin with no rotation.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Path returns the slash-separated names from the root down to n.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// SetLocalPosition sets the position relative to the parent.
func (n *Node) SetLocalPosition(p math.Vec3) *Node {
	n.position = p
	return n
}

// SetLocalEulerAngles sets the rotation relative to the parent, in degrees.
func (n *Node) SetLocalEulerAngles(deg math.Vec3) *Node {
	n.rotation = deg
	return n
}

// LocalPosition returns the position relative to the parent.
func (n *Node) LocalPosition() math.Vec3 {
	return n.position
}

// LocalEulerAngles returns the rotation relative to the parent, in degrees.
func (n *Node) LocalEulerAngles() math.Vec3 {
	return n.rotation
}

// SetGeometry attaches a mesh and its materials (one per submesh).
func (n *Node) SetGeometry(m *mesh.Mesh, materials []*mesh.Material) *Node {
	n.hasGeometry = true
	n.mesh = m
	n.materials = materials
	return n
}

// ClearGeometry removes the mesh component.
func (n *Node) ClearGeometry() *Node {
	n.hasGeometry = false
	n.mesh = nil
	n.materials = nil
	return n
}

// HasMesh reports whether a mesh component is attached.
func (n *Node) HasMesh() bool {
	return n.hasGeometry
}

// Mesh returns the attached mesh, or nil.
func (n *Node) Mesh() *mesh.Mesh {
	return n.mesh
}

// Materials returns the attached materials.
func (n *Node) Materials() []*mesh.Material {
	return n.materials
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildNodes returns the direct children in order.
func (n *Node) ChildNodes() []*Node {
	return n.children
}

// Children returns the direct children as merge sources.
func (n *Node) Children() []merge.Source {
	out := make([]merge.Source, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// AddChild attaches child as the last child of n, detaching it from any
// previous parent.
func (n *Node) AddChild(child *Node) error {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return ErrCyclicHierarchy
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// WorldRotation returns the accumulated rotation from the root down to n.
func (n *Node) WorldRotation() math.Quat {
	q := math.QuatFromEuler(n.rotation)
	if n.parent != nil {
		return n.parent.WorldRotation().Mul(q)
	}
	return q
}

// WorldEulerAngles returns WorldRotation as Euler angles in degrees.
func (n *Node) WorldEulerAngles() math.Vec3 {
	if n.parent == nil {
		return n.rotation
	}
	return n.WorldRotation().EulerAngles()
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	if n.parent == nil {
		return n.position
	}
	return n.parent.WorldPosition().Add(n.parent.WorldRotation().Rotate(n.position))
}

var (
	_ merge.Source  = (*Node)(nil)
	_ merge.Rotator = (*Node)(nil)
)
