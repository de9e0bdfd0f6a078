package math

// Vec4 is a 4-component vector. Mesh tangents store the direction in XYZ
// and the bitangent sign (handedness) in W.
type Vec4 struct {
	X, Y, Z, W float32
}

// XYZ returns the first three components.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// WithXYZ returns a copy of v with XYZ replaced and W kept.
func (v Vec4) WithXYZ(xyz Vec3) Vec4 {
	return Vec4{xyz.X, xyz.Y, xyz.Z, v.W}
}

// Vec4FromArray builds a Vec4 from [X, Y, Z, W].
func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}
