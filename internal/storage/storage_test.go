package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

func testMesh() *mesh.Mesh {
	m := &mesh.Mesh{
		Name:      "HouseMesh",
		Positions: []math.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
		SubMeshes: []mesh.SubMesh{{VertexCount: 3, IndexCount: 3}},
	}
	m.RecalculateBounds()
	return m
}

func TestFileSinkSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Assets", "SavedMeshes")
	m := testMesh()

	path, err := FileSink{}.Save(m, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "HouseMesh.mmsh"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	got, err := Load(dir, "HouseMesh")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("saved mesh mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSinkSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	m := testMesh()
	if _, err := (FileSink{}).Save(m, dir); err != nil {
		t.Fatal(err)
	}

	m.Positions[1] = math.Vec3{5, 0, 0}
	m.RecalculateBounds()
	if _, err := (FileSink{}).Save(m, dir); err != nil {
		t.Fatal(err)
	}

	got, err := Load(dir, m.Name)
	if err != nil {
		t.Fatal(err)
	}
	if got.Positions[1] != (math.Vec3{5, 0, 0}) {
		t.Errorf("expected overwritten position, got %v", got.Positions[1])
	}
}

func TestFileSinkSaveErrors(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the directory should be.
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileSink{}).Save(testMesh(), blocker); err == nil {
		t.Error("expected error when target directory is a file")
	}

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		m := testMesh()
		m.Name = name
		if _, err := (FileSink{}).Save(m, dir); !errors.Is(err, ErrInvalidName) {
			t.Errorf("name %q: got %v, want ErrInvalidName", name, err)
		}
	}
}
