package merge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// MeshNameSuffix is appended to the object name to form the merged mesh name.
const MeshNameSuffix = "Mesh"

// Merger runs collection and merging. The zero value is not usable; use New.
type Merger struct {
	log *zap.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(m *Merger) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Merger. Without WithLogger it logs nothing.
func New(opts ...Option) *Merger {
	m := &Merger{log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stats summarizes one merge.
type Stats struct {
	Sources   int // nodes merged
	SubMeshes int // source submeshes consumed
	Vertices  int
	Indices   int
	Materials int // distinct materials, one submesh each in the result
}

// Result is the outcome of a merge. Mesh.SubMeshes[i] is drawn with
// Materials[i]. Nothing in Result aliases source data.
type Result struct {
	Mesh      *mesh.Mesh
	Materials []*mesh.Material
	Stats     Stats
}

// Merge combines sources, in order, into one mesh whose positions are
// relative to pivot. The mesh is named name+MeshNameSuffix.
//
// Geometry sharing a material (by pointer identity) ends up in one submesh;
// submeshes follow the order materials were first seen. An empty source list
// yields an empty mesh, not an error. Any extraction error aborts the whole
// merge.
func (m *Merger) Merge(sources []Source, pivot math.Vec3, name string) (*Result, error) {
	groups := newGroupSet()
	stats := Stats{Sources: len(sources)}

	for _, src := range sources {
		parts, err := extract(src, pivot)
		if err != nil {
			return nil, err
		}
		for _, p := range parts {
			groups.add(p)
		}
		stats.SubMeshes += len(parts)

		m.log.Debug("extracted source",
			zap.String("node", src.Name()),
			zap.Int("submeshes", len(parts)))
	}

	merged, materials, err := groups.emit(name + MeshNameSuffix)
	if err != nil {
		return nil, fmt.Errorf("merging %d sources: %w", len(sources), err)
	}

	stats.Vertices = merged.VertexCount()
	stats.Indices = len(merged.Indices)
	stats.Materials = len(materials)

	if stats.Sources == 0 {
		m.log.Warn("no mesh sources to merge, result is empty", zap.String("name", name))
	}
	m.log.Info("merged meshes",
		zap.String("mesh", merged.Name),
		zap.Int("sources", stats.Sources),
		zap.Int("submeshes_in", stats.SubMeshes),
		zap.Int("submeshes_out", stats.Materials),
		zap.Int("vertices", stats.Vertices),
		zap.Int("indices", stats.Indices))

	return &Result{Mesh: merged, Materials: materials, Stats: stats}, nil
}

// MergeHierarchy collects the geometry under roots and merges it relative to
// the world position of pivot.
func (m *Merger) MergeHierarchy(roots []Source, pivot Source, name string) (*Result, error) {
	return m.Merge(m.Collect(roots...), pivot.WorldPosition(), name)
}
