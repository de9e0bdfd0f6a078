package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Faultbox/meshmerge/pkg/math"
	"github.com/Faultbox/meshmerge/pkg/mesh"
)

func testMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Name:      "HouseMesh",
		Positions: []math.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
		SubMeshes: []mesh.SubMesh{{VertexCount: 3, IndexCount: 3}},
	}
}

func TestBuild(t *testing.T) {
	w := NewWorld()
	mat := &mesh.Material{Name: "brick"}
	mats := []*mesh.Material{mat}

	e, err := w.Build(testMesh(), mats, "House")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if e.ID == uuid.Nil {
		t.Error("entity should get a non-nil ID")
	}
	if e.Name != "House" {
		t.Errorf("expected name House, got %s", e.Name)
	}
	if e.DrawCalls() != 1 {
		t.Errorf("expected 1 draw call, got %d", e.DrawCalls())
	}

	// The material list is copied.
	mats[0] = nil
	if e.Materials[0] != mat {
		t.Error("entity materials should not alias the caller slice")
	}

	got, ok := w.Get(e.ID)
	if !ok || got != e {
		t.Error("Get should return the built entity")
	}
	if w.Len() != 1 {
		t.Errorf("expected 1 entity, got %d", w.Len())
	}
}

func TestBuildErrors(t *testing.T) {
	w := NewWorld()

	tests := []struct {
		name    string
		mesh    *mesh.Mesh
		mats    []*mesh.Material
		wantErr error
	}{
		{"nil mesh", nil, nil, ErrNilMesh},
		{"missing material", testMesh(), nil, ErrMaterialMismatch},
		{"extra material", testMesh(), []*mesh.Material{{}, {}}, ErrMaterialMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.Build(tt.mesh, tt.mats, "x")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
	if w.Len() != 0 {
		t.Errorf("failed builds should not register entities, got %d", w.Len())
	}
}

func TestEntitiesOrder(t *testing.T) {
	w := NewWorld()
	var ids []uuid.UUID
	for _, name := range []string{"a", "b", "c"} {
		e, err := w.Build(testMesh(), []*mesh.Material{{Name: name}}, name)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		ids = append(ids, e.ID)
	}

	got := w.Entities()
	for i, e := range got {
		if e.ID != ids[i] {
			t.Errorf("entity %d: got %s, want %s", i, e.ID, ids[i])
		}
	}
}

func TestBuildEmptyMesh(t *testing.T) {
	w := NewWorld()
	e, err := w.Build(&mesh.Mesh{Name: "EmptyMesh"}, nil, "Empty")
	if err != nil {
		t.Fatalf("empty mesh with no materials should build: %v", err)
	}
	if e.DrawCalls() != 0 {
		t.Errorf("expected 0 draw calls, got %d", e.DrawCalls())
	}
}
