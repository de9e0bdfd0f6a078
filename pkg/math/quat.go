package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// QuatFromEuler creates a quaternion from Euler angles in degrees.
// The rotation is applied around Z first, then X, then Y, the convention
// scene editors use for transform "eulerAngles".
func QuatFromEuler(degrees Vec3) Quat {
	qx := QuatFromAxisAngle(Vec3{X: 1}, degToRad(degrees.X))
	qy := QuatFromAxisAngle(Vec3{Y: 1}, degToRad(degrees.Y))
	qz := QuatFromAxisAngle(Vec3{Z: 1}, degToRad(degrees.Z))
	return qy.Mul(qx).Mul(qz)
}

// EulerAngles returns the Z-X-Y Euler angles of q in degrees, each wrapped
// to [0, 360). It is the inverse of QuatFromEuler up to equivalent angles.
//
// The angles are recovered from half-angle sums and differences rather than
// from rotation matrix elements, so pitches near +-90 degrees keep full
// precision. At exactly +-90 only yaw minus (or plus) roll is defined and
// the split between the two is arbitrary.
func (q Quat) EulerAngles() Vec3 {
	q = q.Normalize()
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)

	// For q = qy * qx * qz with half angles p, h, r:
	//   w+x = (cos p + sin p) cos(h-r)   y-z = (cos p + sin p) sin(h-r)
	//   w-x = (cos p - sin p) cos(h+r)   y+z = (cos p - sin p) sin(h+r)
	plus := math.Hypot(w+x, y-z)
	minus := math.Hypot(w-x, y+z)
	pitch := 2 * math.Atan2(plus-minus, plus+minus)

	sum := math.Atan2(y+z, w-x)
	diff := math.Atan2(y-z, w+x)

	return Vec3{
		X: wrapDegrees(radToDeg(pitch)),
		Y: wrapDegrees(radToDeg(sum + diff)),
		Z: wrapDegrees(radToDeg(sum - diff)),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate rotates v by q. q is expected to be a unit quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotateAround rotates point p by q about pivot.
func (q Quat) RotateAround(p, pivot Vec3) Vec3 {
	return q.Rotate(p.Sub(pivot)).Add(pivot)
}

func degToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}

func radToDeg(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

func wrapDegrees(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	// Mod of a tiny negative value can round up to exactly 360.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
