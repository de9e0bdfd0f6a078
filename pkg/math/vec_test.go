package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 5, 3}

	if got, want := a.Min(b), (Vec3{-1, -2, 3}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 5, 3}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVecArrays(t *testing.T) {
	if got := Vec3FromArray([3]float32{1, 2, 3}); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec3FromArray = %v", got)
	}
	if got := Vec2FromArray([2]float32{1, 2}); got != (Vec2{1, 2}) {
		t.Errorf("Vec2FromArray = %v", got)
	}
	if got := Vec4FromArray([4]float32{1, 2, 3, -1}); got != (Vec4{1, 2, 3, -1}) {
		t.Errorf("Vec4FromArray = %v", got)
	}
}

func TestVec4WithXYZ(t *testing.T) {
	tangent := Vec4{1, 0, 0, -1}
	got := tangent.WithXYZ(Vec3{0, 0, 1})
	want := Vec4{0, 0, 1, -1}
	if got != want {
		t.Errorf("Vec4.WithXYZ() = %v, want %v", got, want)
	}
	if tangent.XYZ() != (Vec3{1, 0, 0}) {
		t.Errorf("Vec4.XYZ() = %v", tangent.XYZ())
	}
}
