// Package merge combines the meshes of a transform hierarchy into one mesh
// with one submesh per distinct material.
//
// The work happens in three steps: Collect walks the hierarchy and picks the
// nodes that carry geometry, extraction re-expresses every submesh of those
// nodes relative to a pivot, and accumulation groups the extracted geometry
// by material before it is laid out into the final buffers.
package merge

import (
	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// Source is a node of the hierarchy being merged.
//
// Implementations must be comparable (typically pointer types): node
// identity is used to drop duplicates and to stop on cycles.
type Source interface {
	// Name identifies the node in logs and errors.
	Name() string
	// HasMesh reports whether the node carries a mesh component.
	HasMesh() bool
	// Mesh returns the node geometry. It may be nil even when HasMesh is
	// true; such nodes are skipped during collection.
	Mesh() *mesh.Mesh
	// Materials returns one material per submesh of Mesh.
	Materials() []*mesh.Material
	// Children returns the direct children in document order.
	Children() []Source
	// WorldPosition returns the node origin in world space.
	WorldPosition() math.Vec3
	// WorldEulerAngles returns the node world rotation in degrees.
	WorldEulerAngles() math.Vec3
}

// Rotator is implemented by sources that can report their world rotation as
// a quaternion. Extraction prefers it over WorldEulerAngles, which loses the
// composed rotation's precision when converted through Euler angles.
type Rotator interface {
	WorldRotation() math.Quat
}

// worldRotation returns the world rotation of src.
func worldRotation(src Source) math.Quat {
	if r, ok := src.(Rotator); ok {
		return r.WorldRotation()
	}
	return math.QuatFromEuler(src.WorldEulerAngles())
}
