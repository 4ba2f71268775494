package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/prism-go/engine/model"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/prism-go/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API for the single-object demo pipeline: one render
// pipeline with a fixed vertex layout (model.GPUVertex) and one uniform
// bind group holding a 4x4 MVP matrix. The Renderer wraps a backend so
// multiple backend API implementations can exist.
type Renderer interface {
	// InitPipeline creates the render pipeline from a vertex/fragment
	// shader pair. Must be called once before UploadMesh and DrawFrame.
	//
	// Parameters:
	//   - vs: the vertex shader
	//   - fs: the fragment shader
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	InitPipeline(vs, fs shader.Shader) error

	// UploadMesh creates GPU vertex and index buffers from the model's
	// interleaved data. The demo renders a single object, so a subsequent
	// upload replaces the previous mesh.
	//
	// Parameters:
	//   - m: the model whose mesh data to upload
	//
	// Returns:
	//   - error: an error if buffer creation fails
	UploadMesh(m model.Model) error

	// SetTransform stages the model-view-projection matrix for the next
	// frame by writing it into the pipeline's uniform buffer.
	//
	// Parameters:
	//   - mvp: the 16-element column-major MVP matrix
	SetTransform(mvp []float32)

	// DrawFrame renders one frame: acquires the swapchain texture, clears
	// color and depth, draws the uploaded mesh, and presents.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	//     or command encoding fails
	DrawFrame() error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type and
// options, creates the backend against the window's surface, and performs
// the initial surface configuration.
//
// Parameters:
//   - backendType: the rendering backend implementation to use
//   - win: the window supplying the surface descriptor and dimensions
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter)
	default:
		panic(fmt.Sprintf("unsupported renderer backend type: %d", backendType))
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(win.Width(), win.Height())

	return r
}

func (r *renderer) InitPipeline(vs, fs shader.Shader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.InitPipeline(vs, fs)
}

func (r *renderer) UploadMesh(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.InitMeshBuffers(m.VertexData(), m.IndexData(), m.IndexCount())
}

func (r *renderer) SetTransform(mvp []float32) {
	r.backend.WriteTransform(mvp)
}

func (r *renderer) DrawFrame() error {
	return r.backend.DrawFrame()
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}
