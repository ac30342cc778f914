// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 transformation matrix in homogeneous coordinates,
// stored in column-major order: the element at row r and column c is
// at index c*4+r. This is the layout expected verbatim by
// glUniformMatrix4fv with transpose set to false.
//
// Matrix4 is a value type: every constructor and operation returns
// a new matrix and leaves its operands unchanged.
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix, the neutral element of [Matrix4.Mul].
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale4 returns a matrix that scales by x, y, z along the respective axes.
func Scale4(x, y, z float32) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a matrix that translates by x, y, z.
// The translation lives in the fourth column.
func Translation4(x, y, z float32) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotationX4 returns a right-handed rotation of theta radians about the X axis.
func RotationX4(theta float32) Matrix4 {
	s, c := Sincos(theta)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY4 returns a right-handed rotation of theta radians about the Y axis.
func RotationY4(theta float32) Matrix4 {
	s, c := Sincos(theta)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ4 returns a right-handed rotation of theta radians about the Z axis.
func RotationZ4(theta float32) Matrix4 {
	s, c := Sincos(theta)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Frustum4 returns an OpenGL style perspective projection for the view
// frustum bounded by left, right, bottom, top at the near plane, and by the
// near and far clipping distances. near and far are positive distances;
// the camera looks down -Z, so visible points lie between z = -near and z = -far.
// See http://www.songho.ca/opengl/gl_projectionmatrix.html
func Frustum4(left, right, bottom, top, near, far float32) Matrix4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Matrix4{
		2 * near / rl, 0, 0, 0,
		0, 2 * near / tb, 0, 0,
		(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1,
		0, 0, -2 * far * near / fn, 0,
	}
}

// Perspective parameters of [Perspective4].
const (
	// PerspectiveHalfSize is half the viewport width and height at the near plane.
	PerspectiveHalfSize = 0.5

	// PerspectiveNear is the distance to the near clipping plane.
	PerspectiveNear = 1

	// PerspectiveFar is the distance to the far clipping plane.
	PerspectiveFar = 5
)

// Perspective4 returns the fixed projection used to view the cube:
// a symmetric frustum with half width and height 0.5 at a near
// distance of 1, and a far distance of 5.
func Perspective4() Matrix4 {
	const h = PerspectiveHalfSize
	return Frustum4(-h, h, -h, h, PerspectiveNear, PerspectiveFar)
}

// Mul returns the matrix product m × b. Applied to a column vector,
// the result transforms by b first and then by m.
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*b[c*4] + m[4+row]*b[c*4+1] + m[8+row]*b[c*4+2] + m[12+row]*b[c*4+3]
		}
	}
	return r
}

// Mul4 composes the given matrices left to right starting from the
// identity, as result = result × next. The last matrix is the first
// transform applied to a vertex.
func Mul4(ms ...Matrix4) Matrix4 {
	r := Identity4()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// ApproxEqual returns whether every element of m is within tol of the
// corresponding element of b.
func (m Matrix4) ApproxEqual(b Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element of a copy of m, suitable
// for passing to glUniformMatrix4fv with transpose set to false.
func (m Matrix4) Ptr() *float32 {
	return &m[0]
}

// String returns the matrix in row order, one row per line.
func (m Matrix4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "[%g %g %g %g]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return b.String()
}
