// Package entity builds renderable entities from merged meshes.
package entity

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// Entity build errors.
var (
	ErrNilMesh          = errors.New("entity mesh is nil")
	ErrMaterialMismatch = errors.New("material count does not match submesh count")
)

// Entity is a renderable object: one mesh drawn with one material per submesh.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Mesh      *mesh.Mesh
	Materials []*mesh.Material
}

// DrawCalls returns the number of draw groups the entity renders with.
func (e *Entity) DrawCalls() int {
	return len(e.Mesh.SubMeshes)
}

// Builder turns a mesh and its materials into an entity.
type Builder interface {
	Build(m *mesh.Mesh, materials []*mesh.Material, name string) (*Entity, error)
}

// World owns the entities it builds.
type World struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]*Entity
	order    []uuid.UUID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{entities: make(map[uuid.UUID]*Entity)}
}

// Build creates and registers a new entity.
func (w *World) Build(m *mesh.Mesh, materials []*mesh.Material, name string) (*Entity, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(materials) != len(m.SubMeshes) {
		return nil, fmt.Errorf("%w: %d materials, %d submeshes",
			ErrMaterialMismatch, len(materials), len(m.SubMeshes))
	}

	e := &Entity{
		ID:        uuid.New(),
		Name:      name,
		Mesh:      m,
		Materials: append([]*mesh.Material(nil), materials...),
	}

	w.mu.Lock()
	w.entities[e.ID] = e
	w.order = append(w.order, e.ID)
	w.mu.Unlock()

	return e, nil
}

// Get returns an entity by ID.
func (w *World) Get(id uuid.UUID) (*Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// Entities returns all entities in creation order.
func (w *World) Entities() []*Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Entity, len(w.order))
	for i, id := range w.order {
		out[i] = w.entities[id]
	}
	return out
}

// Len returns the number of entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

var _ Builder = (*World)(nil)
