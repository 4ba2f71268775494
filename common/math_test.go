package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 9
	}
	Identity(m)

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			want := float32(0)
			if col == row {
				want = 1
			}
			assert.Equal(t, want, m[col*4+row])
		}
	}
}

func TestMul4Identity(t *testing.T) {
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	id := make([]float32, 16)
	Identity(id)

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)

	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4Aliasing(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Translate(m, 1, 2, 3)

	// out aliasing a left operand must still produce the right result.
	Mul4(m, m, m)
	assert.Equal(t, float32(2), m[12])
	assert.Equal(t, float32(4), m[13])
	assert.Equal(t, float32(6), m[14])
}

func TestTranslate(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Translate(m, 1, -2, 3)

	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(-2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m[15])
}

func TestRotateQuarterTurnZ(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Rotate(m, 90, 0, 0, 1)

	// A 90° rotation around Z maps +X to +Y.
	assert.InDelta(t, 0, m[0], 1e-6)
	assert.InDelta(t, 1, m[1], 1e-6)
	assert.InDelta(t, -1, m[4], 1e-6)
	assert.InDelta(t, 0, m[5], 1e-6)
}

func TestRotateZeroAxisIsNoOp(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	Translate(m, 1, 1, 1)
	before := append([]float32(nil), m...)

	Rotate(m, 45, 0, 0, 0)
	assert.Equal(t, before, m)
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	fov := float32(60.0 * math32.Pi / 180.0)
	Perspective(out, fov, 2.0, 1.0, 20.0)

	f := 1.0 / math32.Tan(fov/2.0)
	assert.InDelta(t, f/2.0, out[0], 1e-6)
	assert.InDelta(t, f, out[5], 1e-6)
	assert.Equal(t, float32(-1), out[11])
	assert.Equal(t, float32(0), out[15])

	// Depth maps near to 0 and far to 1 in WebGPU clip space.
	nearZ := out[10]*(-1.0) + out[14]
	require.InDelta(t, 0, nearZ/1.0, 1e-6)
	farZ := (out[10]*(-20.0) + out[14]) / 20.0
	assert.InDelta(t, 1, farZ, 1e-5)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Nil(t, SliceToBytes[float32](nil))
}
