package math

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec2FromArray builds a Vec2 from [X, Y].
func Vec2FromArray(a [2]float32) Vec2 {
	return Vec2{a[0], a[1]}
}
