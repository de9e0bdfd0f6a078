package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/meshmerge/internal/config"
	"github.com/Faultbox/meshmerge/internal/logger"
	"github.com/Faultbox/meshmerge/internal/merge"
	"github.com/Faultbox/meshmerge/internal/pipeline"
	"github.com/Faultbox/meshmerge/internal/scene"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

var errUsage = errors.New("invalid usage")

func cmdMerge(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cfg.Merge.Scene = fs.Arg(0)
	}
	if cfg.Merge.Scene == "" {
		fmt.Fprintln(stdout, "Usage: meshmerge merge [flags] <scene.yaml>")
		return errUsage
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	s, err := scene.Load(cfg.Merge.Scene)
	if err != nil {
		logger.Error("loading scene failed", zap.String("scene", cfg.Merge.Scene), zap.Error(err))
		return err
	}
	logger.Info("loaded scene",
		zap.String("scene", cfg.Merge.Scene),
		zap.Int("roots", len(s.Roots)),
		zap.Int("materials", len(s.Materials)))

	out, err := pipeline.Run(s, pipeline.Options{
		Roots:      cfg.Merge.Roots,
		Pivot:      cfg.Merge.Pivot,
		ObjectName: cfg.Merge.ObjectName,
		SavePath:   cfg.Merge.SavePath,
		SaveMesh:   cfg.Merge.SaveMesh,
	}, logger.Named("merge"))
	if out != nil {
		printOutcome(stdout, out)
	}
	if err != nil {
		if errors.Is(err, merge.ErrPersistence) {
			logger.Warn("merge finished but the mesh was not saved", zap.Error(err))
		} else {
			logger.Error("merge failed", zap.Error(err))
		}
		return err
	}
	logger.Debug("merge finished",
		zap.String("mesh", out.Result.Mesh.Name),
		zap.Int("vertices", out.Result.Mesh.VertexCount()))
	return nil
}

// cmdConfig resolves the config exactly as merge would and writes it out.
func cmdConfig(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, "Usage: meshmerge config [flags] <out.yaml|out.toml>")
		return errUsage
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(fs.Arg(0)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote:     %s\n", fs.Arg(0))
	return nil
}

func printOutcome(w io.Writer, out *pipeline.Outcome) {
	res := out.Result
	fmt.Fprintf(w, "Entity:    %s (%s)\n", out.Entity.Name, out.Entity.ID)
	fmt.Fprintf(w, "Sources:   %d nodes, %d submeshes\n", res.Stats.Sources, res.Stats.SubMeshes)
	printMesh(w, res.Mesh, res.Materials)
	if out.SavedTo != "" {
		fmt.Fprintf(w, "Saved:     %s\n", out.SavedTo)
	}
}

func cmdCollect(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(stdout, "Usage: meshmerge collect <scene.yaml> [root...]")
		return errUsage
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}

	roots := s.Roots
	if len(args) > 1 {
		if roots, err = s.FindAll(args[1:]); err != nil {
			return err
		}
	}

	sources := make([]merge.Source, len(roots))
	for i, n := range roots {
		sources[i] = n
	}

	for _, src := range merge.Collect(sources...) {
		n := src.(*scene.Node)
		fmt.Fprintf(stdout, "%-40s %d submeshes\n", n.Path(), len(n.Mesh().Partition()))
	}
	return nil
}

func cmdInfo(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(stdout, "Usage: meshmerge info <file.mmsh>")
		return errUsage
	}

	m, err := mesh.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "File:      %s\n", args[0])
	printMesh(stdout, m, nil)
	return nil
}

// printMesh writes a mesh summary. materials may be nil.
func printMesh(w io.Writer, m *mesh.Mesh, materials []*mesh.Material) {
	fmt.Fprintf(w, "Mesh:      %s\n", m.Name)
	fmt.Fprintf(w, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(w, "Triangles: %d\n", len(m.Indices)/3)
	fmt.Fprintf(w, "Bounds:    %v - %v\n", m.Bounds.Min, m.Bounds.Max)
	fmt.Fprintf(w, "Size:      %v center %v\n", m.Bounds.Size(), m.Bounds.Center())
	fmt.Fprintf(w, "Submeshes: %d\n", len(m.SubMeshes))
	for i, sm := range m.SubMeshes {
		name := ""
		if i < len(materials) && materials[i] != nil {
			name = materials[i].Name
		}
		fmt.Fprintf(w, "  [%d] %-16s %s\n", i, name, sm)
	}
}
