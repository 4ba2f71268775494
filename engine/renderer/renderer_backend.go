package renderer

import "github.com/Carmen-Shannon/prism-go/engine/renderer/shader"

// RendererBackendType identifies the backend API implementation a Renderer uses.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames as fast as they are produced.
	PresentModeUncapped
)

// RendererBackend is the low-level contract a backend implementation
// fulfills for the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and depth buffer for
	// the given surface size. Must be called before the first frame and on
	// every resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode. Takes effect on the
	// next ConfigureSurface call.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// InitPipeline creates the fixed-layout render pipeline, its uniform
	// buffer, and its bind group from the shader pair.
	//
	// Parameters:
	//   - vs: the vertex shader
	//   - fs: the fragment shader
	//
	// Returns:
	//   - error: an error if any GPU object could not be created
	InitPipeline(vs, fs shader.Shader) error

	// InitMeshBuffers creates the vertex and index buffers from raw bytes
	// and records the index count for draw calls.
	//
	// Parameters:
	//   - vertexData: the interleaved vertex bytes to upload
	//   - indexData: the little-endian uint32 index bytes to upload
	//   - indexCount: the number of indices represented in indexData
	//
	// Returns:
	//   - error: an error if the buffers could not be created
	InitMeshBuffers(vertexData, indexData []byte, indexCount int) error

	// WriteTransform writes the MVP matrix into the pipeline's uniform buffer.
	//
	// Parameters:
	//   - mvp: the 16-element column-major MVP matrix
	WriteTransform(mvp []float32)

	// DrawFrame encodes and submits one full frame and presents it.
	//
	// Returns:
	//   - error: an error if the frame could not be encoded
	DrawFrame() error
}
