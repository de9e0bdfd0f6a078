package mesh

import "github.com/Faultbox/meshmerge/pkg/math"

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box dimensions.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundsOf returns the bounding box of points. An empty set yields a zero box.
func BoundsOf(points []math.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// RecalculateBounds recomputes Bounds from the current positions.
func (m *Mesh) RecalculateBounds() {
	m.Bounds = BoundsOf(m.Positions)
}
