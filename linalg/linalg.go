// Package linalg is the vector and matrix kernel shared by the scene systems
// and the render front-ends.
//
// Every function is pure. Matrices are column-major flat 16-element arrays,
// the layout the render collaborators upload as-is. The world is Z-up.
package linalg

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type (
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
	Mat4 = mgl32.Mat4
)

// WorldUp is the fixed up axis used by LookAt and the camera basis.
var WorldUp = Vec3{0, 0, 1}

// ErrDegenerateProjection is returned by CheckedPerspective for inputs that
// would divide by zero.
var ErrDegenerateProjection = errors.New("linalg: degenerate projection")

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return mgl32.DegToRad(degrees)
}

func Dot(a, b Vec3) float32 {
	return a.Dot(b)
}

func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

func Length(v Vec3) float32 {
	return v.Len()
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// zero length.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Identity() Mat4 {
	return mgl32.Ident4()
}

// Translation returns the identity matrix with its translation column set to t.
func Translation(t Vec3) Mat4 {
	return mgl32.Translate3D(t.X(), t.Y(), t.Z())
}

// RotationZ rotates about the up axis by the given angle in degrees.
func RotationZ(degrees float32) Mat4 {
	return mgl32.HomogRotate3DZ(Radians(degrees))
}

// Model rotates about the up axis by yaw degrees, then translates by t.
func Model(t Vec3, yawDegrees float32) Mat4 {
	return Translation(t).Mul4(RotationZ(yawDegrees))
}

// LookAt builds a right-handed view matrix looking from eye towards target
// with WorldUp as the reference up axis.
//
// When target-eye is zero or parallel to WorldUp the basis collapses to zero
// vectors. The result is still a matrix but it is not a usable view.
func LookAt(eye, target Vec3) Mat4 {
	forward := Normalize(target.Sub(eye))
	right := Normalize(Cross(forward, WorldUp))
	up := Cross(right, forward)

	return Mat4{
		right[0], up[0], -forward[0], 0,
		right[1], up[1], -forward[1], 0,
		right[2], up[2], -forward[2], 0,
		-Dot(right, eye), -Dot(up, eye), Dot(forward, eye), 1,
	}
}

// Perspective builds a symmetric frustum projection. fovDegrees is the
// vertical field of view. A zero aspect or field of view yields Inf/NaN
// entries; use CheckedPerspective at input boundaries.
func Perspective(fovDegrees, aspect, near, far float32) Mat4 {
	return mgl32.Perspective(Radians(fovDegrees), aspect, near, far)
}

// CheckedPerspective is Perspective with the degenerate inputs rejected.
func CheckedPerspective(fovDegrees, aspect, near, far float32) (Mat4, error) {
	if aspect == 0 || near == far || math.Tan(float64(Radians(fovDegrees))/2) == 0 {
		return Mat4{}, ErrDegenerateProjection
	}
	return Perspective(fovDegrees, aspect, near, far), nil
}

// TransformPoint multiplies m by the homogeneous point (p, 1).
func TransformPoint(m Mat4, p Vec3) Vec4 {
	return m.Mul4x1(p.Vec4(1))
}
