// Package common contains the small matrix and byte-conversion helpers
// shared by the renderer and the demo drivers. Matrices are flat 16-element
// float32 slices in column-major order (WebGPU convention).
package common

import "github.com/chewxy/math32"

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// Result: out = a * b. out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix targeting the
// WebGPU clip space convention (depth in [0, 1]).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// Translate post-multiplies m by a translation matrix in place
// (m = m * T), so the translation applies before any transform already
// encoded in m.
//
// Parameters:
//   - m: the matrix to modify (must be at least 16 elements)
//   - tx, ty, tz: translation along each axis
func Translate(m []float32, tx, ty, tz float32) {
	m[12] += m[0]*tx + m[4]*ty + m[8]*tz
	m[13] += m[1]*tx + m[5]*ty + m[9]*tz
	m[14] += m[2]*tx + m[6]*ty + m[10]*tz
	m[15] += m[3]*tx + m[7]*ty + m[11]*tz
}

// Rotate post-multiplies m by an axis-angle rotation matrix in place
// (m = m * R). The axis need not be normalized; a zero axis leaves m
// unchanged.
//
// Parameters:
//   - m: the matrix to modify (must be at least 16 elements)
//   - angleDeg: rotation angle in degrees
//   - x, y, z: rotation axis
func Rotate(m []float32, angleDeg, x, y, z float32) {
	mag := math32.Sqrt(x*x + y*y + z*z)
	if mag == 0 {
		return
	}
	x, y, z = x/mag, y/mag, z/mag

	rad := angleDeg * math32.Pi / 180.0
	s := math32.Sin(rad)
	c := math32.Cos(rad)
	oneMinusC := 1.0 - c

	var r [16]float32
	r[0] = oneMinusC*x*x + c
	r[1] = oneMinusC*x*y + s*z
	r[2] = oneMinusC*x*z - s*y

	r[4] = oneMinusC*x*y - s*z
	r[5] = oneMinusC*y*y + c
	r[6] = oneMinusC*y*z + s*x

	r[8] = oneMinusC*x*z + s*y
	r[9] = oneMinusC*y*z - s*x
	r[10] = oneMinusC*z*z + c

	r[15] = 1

	Mul4(m, m, r[:])
}
