package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/Faultbox/meshmerge/internal/config"
)

const villageYAML = `
materials:
  - name: brick
  - name: glass
meshes:
  - name: quad
    positions: [[0,0,0], [1,0,0], [1,1,0], [0,1,0]]
    indices: [0,1,2, 0,2,3]
nodes:
  - name: House
    children:
      - name: Wall
        mesh: quad
        materials: [brick]
      - name: Window
        position: [0, 0, 1]
        mesh: quad
        materials: [glass]
  - name: Shed
    position: [5, 0, 0]
    mesh: quad
    materials: [brick]
`

func writeScene(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "village.yaml")
	if err := os.WriteFile(path, []byte(villageYAML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMergeAndInfo(t *testing.T) {
	scenePath := writeScene(t)
	outDir := t.TempDir()

	var stdout bytes.Buffer
	err := run([]string{"merge", "-root", "House", "-pivot", "House", "-name", "House", "-out", outDir, "-save", scenePath}, &stdout)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"Mesh:      HouseMesh", "Vertices:  8", "Submeshes: 2", "brick", "glass", "Saved:"} {
		if !strings.Contains(out, want) {
			t.Errorf("merge output missing %q:\n%s", want, out)
		}
	}

	stdout.Reset()
	if err := run([]string{"info", filepath.Join(outDir, "HouseMesh.mmsh")}, &stdout); err != nil {
		t.Fatalf("info: %v", err)
	}
	info := stdout.String()
	// Relative to the House pivot: Wall spans (0,0,0)-(1,1,0), Window sits at z=1.
	for _, want := range []string{"Triangles: 4", "Size:      {1 1 1} center {0.5 0.5 0.5}"} {
		if !strings.Contains(info, want) {
			t.Errorf("info output missing %q:\n%s", want, info)
		}
	}
}

func TestConfigWritesResolvedSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	if err := os.WriteFile(base, []byte("merge:\n  save_mesh: true\n  pivot: House\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "resolved.toml")

	var stdout bytes.Buffer
	err := run([]string{"config", "-config", base, "-root", "House", "-save=false", out}, &stdout)
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got config.Config
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("written config is not TOML: %v", err)
	}
	if got.Merge.SaveMesh || got.Merge.Pivot != "House" || strings.Join(got.Merge.Roots, ",") != "House" {
		t.Errorf("unexpected resolved config: %+v", got.Merge)
	}
}

func TestMergeDefaultsToAllRoots(t *testing.T) {
	scenePath := writeScene(t)

	var stdout bytes.Buffer
	if err := run([]string{"merge", scenePath}, &stdout); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !strings.Contains(stdout.String(), "MergedObjectMesh") || !strings.Contains(stdout.String(), "Vertices:  12") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestMergeKeepsSameNamedRoots(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "walls.yaml")
	walls := `
materials:
  - name: brick
meshes:
  - name: tri
    positions: [[0,0,0], [1,0,0], [0,1,0]]
    indices: [0,1,2]
nodes:
  - name: Wall
    mesh: tri
    materials: [brick]
  - name: Wall
    position: [5, 0, 0]
    mesh: tri
    materials: [brick]
`
	if err := os.WriteFile(path, []byte(walls), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{"merge", path}, &stdout); err != nil {
		t.Fatalf("merge: %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "Sources:   2 nodes") || !strings.Contains(out, "Vertices:  6") {
		t.Errorf("both walls should be merged:\n%s", out)
	}
}

func TestCollect(t *testing.T) {
	scenePath := writeScene(t)

	var stdout bytes.Buffer
	if err := run([]string{"collect", scenePath, "Shed", "House"}, &stdout); err != nil {
		t.Fatalf("collect: %v", err)
	}

	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
		paths = append(paths, strings.Fields(line)[0])
	}
	want := []string{"Shed", "House/Wall", "House/Window"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", paths, want)
	}
}

func TestRunErrors(t *testing.T) {
	scenePath := writeScene(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"weld"}},
		{"merge without scene", []string{"merge"}},
		{"collect without scene", []string{"collect"}},
		{"info without file", []string{"info"}},
		{"config without output", []string{"config"}},
		{"unknown root", []string{"merge", "-root", "Castle", scenePath}},
		{"missing mesh file", []string{"info", filepath.Join(t.TempDir(), "none.mmsh")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := run(tt.args, &stdout); err == nil {
				t.Error("expected error")
			}
		})
	}

	var stdout bytes.Buffer
	if err := run([]string{"merge"}, &stdout); !errors.Is(err, errUsage) {
		t.Errorf("got %v, want errUsage", err)
	}
}

func TestHelp(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"help"}, &stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Commands:") {
		t.Error("help should print usage")
	}
}
