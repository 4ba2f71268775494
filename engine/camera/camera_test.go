package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, float32(60.0), c.Fov())
	assert.Equal(t, float32(1.0), c.Aspect())
	assert.Equal(t, float32(1.0), c.Near())
	assert.Equal(t, float32(20.0), c.Far())
}

func TestNewCameraOptions(t *testing.T) {
	c := NewCamera(
		WithFov(45.0),
		WithAspect(16.0/9.0),
		WithNear(0.1),
		WithFar(100.0),
	)

	assert.Equal(t, float32(45.0), c.Fov())
	assert.InDelta(t, 16.0/9.0, c.Aspect(), 1e-6)
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100.0), c.Far())
}

func TestCameraSetAspect(t *testing.T) {
	c := NewCamera()

	c.SetAspect(2.0)
	assert.Equal(t, float32(2.0), c.Aspect())

	// Zero or negative aspect ratios are ignored, keeping the last valid value.
	c.SetAspect(0)
	assert.Equal(t, float32(2.0), c.Aspect())
	c.SetAspect(-1.5)
	assert.Equal(t, float32(2.0), c.Aspect())
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera(WithFov(60.0), WithAspect(1.0), WithNear(1.0), WithFar(20.0))

	proj := make([]float32, 16)
	c.Projection(proj)

	// Perspective projections zero out w passthrough and put -1 in the
	// z-to-w slot (column-major element 11).
	assert.Equal(t, float32(-1.0), proj[11])
	assert.Equal(t, float32(0.0), proj[15])

	// With aspect 1 the x and y scales match.
	assert.InDelta(t, proj[5], proj[0], 1e-6)
}
