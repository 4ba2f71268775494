package camera

import (
	"sync"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/chewxy/math32"
)

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for the perspective camera.
// The camera holds the perspective settings used to build the projection
// matrix each frame.
type Camera interface {
	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetAspect sets the aspect ratio (width / height). Called from the
	// window resize callback so the projection tracks the surface size.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Projection writes the current 4x4 perspective projection matrix into
	// out as 16 floats (column-major), mapping depth to the [0, 1] range.
	//
	// Parameters:
	//   - out: the destination slice, at least 16 elements
	Projection(out []float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the configured camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    60.0,
		aspect: 1.0,
		near:   1.0,
		far:    20.0,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect > 0 {
		c.aspect = aspect
	}
}

func (c *cameraImpl) Projection(out []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	common.Perspective(out, c.fov*math32.Pi/180.0, c.aspect, c.near, c.far)
}
