// Package pipeline runs a full merge against a scene: resolve the configured
// nodes, merge their geometry, build the merged entity and optionally save
// the mesh.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshmerge/internal/entity"
	"github.com/Faultbox/meshmerge/internal/merge"
	"github.com/Faultbox/meshmerge/internal/scene"
	"github.com/Faultbox/meshmerge/internal/storage"
	"github.com/Faultbox/meshmerge/pkg/math"
)

// Options selects what to merge and where the result goes.
type Options struct {
	Roots      []string // node paths whose subtrees are merged; empty means every scene root
	Pivot      string   // node path of the pivot; empty means the world origin
	ObjectName string
	SavePath   string
	SaveMesh   bool
}

// Outcome is everything a run produced.
type Outcome struct {
	Result   *merge.Result
	Entity   *entity.Entity
	SavedTo  string // empty unless the mesh was saved
	Sources  []merge.Source
	PivotPos math.Vec3
}

// Runner holds the collaborators a run uses.
type Runner struct {
	Merger  *merge.Merger
	Builder entity.Builder
	Sink    storage.Sink
	Log     *zap.Logger
}

// NewRunner returns a runner with a file sink, a fresh world and the given
// logger (nil logs nothing).
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		Merger:  merge.New(merge.WithLogger(log)),
		Builder: entity.NewWorld(),
		Sink:    storage.FileSink{},
		Log:     log,
	}
}

// Run merges the configured roots of s.
//
// Lookup and merge errors abort before anything is built. A save failure
// still returns the outcome, together with an error wrapping
// merge.ErrPersistence.
func (r *Runner) Run(s *scene.Scene, opts Options) (*Outcome, error) {
	roots := s.Roots
	if len(opts.Roots) > 0 {
		var err error
		if roots, err = s.FindAll(opts.Roots); err != nil {
			return nil, fmt.Errorf("resolving roots: %w", err)
		}
	}

	var pivot math.Vec3
	if opts.Pivot != "" {
		p, err := s.Find(opts.Pivot)
		if err != nil {
			return nil, fmt.Errorf("resolving pivot: %w", err)
		}
		pivot = p.WorldPosition()
	}

	sources := make([]merge.Source, len(roots))
	for i, n := range roots {
		sources[i] = n
	}
	collected := r.Merger.Collect(sources...)

	res, err := r.Merger.Merge(collected, pivot, opts.ObjectName)
	if err != nil {
		return nil, fmt.Errorf("merging %s: %w", opts.ObjectName, err)
	}

	ent, err := r.Builder.Build(res.Mesh, res.Materials, opts.ObjectName)
	if err != nil {
		return nil, fmt.Errorf("building entity %s: %w", opts.ObjectName, err)
	}

	out := &Outcome{
		Result:   res,
		Entity:   ent,
		Sources:  collected,
		PivotPos: pivot,
	}

	if !opts.SaveMesh {
		return out, nil
	}

	path, err := r.Sink.Save(res.Mesh, opts.SavePath)
	if err != nil {
		r.Log.Error("saving merged mesh failed",
			zap.String("mesh", res.Mesh.Name),
			zap.String("dir", opts.SavePath),
			zap.Error(err))
		return out, fmt.Errorf("%w: %w", merge.ErrPersistence, err)
	}
	out.SavedTo = path
	r.Log.Info("saved merged mesh", zap.String("path", path))

	return out, nil
}

// Run merges with a default runner.
func Run(s *scene.Scene, opts Options, log *zap.Logger) (*Outcome, error) {
	return NewRunner(log).Run(s, opts)
}
