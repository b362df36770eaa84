package geom3

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Scale creates a transform representing non-uniform scaling about the origin.
func Scale(x, y, z float32) Mat4 {
	m := Identity
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Translate creates a transform representing translation by v.
func Translate(v Vec3) Mat4 {
	m := Identity
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// RotateX creates a transform representing a rotation of th radians about the
// x axis. A positive angle rotates the positive y axis into positive z.
func RotateX(th float32) Mat4 {
	sin, cos := math32.Sincos(th)
	m := Identity
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotateY creates a transform representing a rotation of th radians about the
// y axis. A positive angle rotates the positive z axis into positive x.
func RotateY(th float32) Mat4 {
	sin, cos := math32.Sincos(th)
	m := Identity
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotateZ creates a transform representing a rotation of th radians about the
// z axis. A positive angle rotates the positive x axis into positive y.
//
// In a y-up coordinate system this is an anti-clockwise rotation when looking
// down the z axis towards the origin.
func RotateZ(th float32) Mat4 {
	sin, cos := math32.Sincos(th)
	m := Identity
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Perspective creates a right-handed perspective projection.
//
// Unlike the rotation constructors, fov is the vertical field of view in
// degrees. aspect is width divided by height. Points on the near plane
// (z = -near) map to a depth of -1, points on the far plane (z = -far) to +1.
// The projection produces w = -z, so applying it to points with z = 0 skips
// the perspective divide.
func Perspective(fov, aspect, near, far float32) Mat4 {
	tanHalf := math32.Tan(DegToRad(fov) / 2)
	depth := far - near

	m := Identity
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = -(far + near) / depth
	m[2][3] = -2 * far * near / depth
	m[3][2] = -1
	m[3][3] = 0
	return m
}
