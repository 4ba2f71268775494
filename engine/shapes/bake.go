package shapes

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// ShapeKind identifies which generator a ShapeSpec invokes.
type ShapeKind int

const (
	// ShapeSphere selects GenSphere.
	ShapeSphere ShapeKind = iota

	// ShapeCube selects GenCube.
	ShapeCube

	// ShapeArrow selects GenArrow.
	ShapeArrow
)

// ShapeSpec describes one mesh for Bake to generate.
type ShapeSpec struct {
	// Kind selects the generator to run.
	Kind ShapeKind

	// Slices is the sphere slice count (ignored by other kinds).
	Slices int

	// Radius is the sphere radius (ignored by other kinds).
	Radius float32

	// Scale is the cube/arrow scale factor (ignored by the sphere).
	Scale float32

	// Attrs selects which attribute buffers to fill.
	Attrs Attr
}

// Generate runs the generator this spec describes.
//
// Returns:
//   - *Mesh: the generated mesh
//   - error: ErrInvalidParameter for out-of-range parameters or an unknown kind
func (s ShapeSpec) Generate() (*Mesh, error) {
	switch s.Kind {
	case ShapeSphere:
		return GenSphere(s.Slices, s.Radius, s.Attrs)
	case ShapeCube:
		return GenCube(s.Scale, s.Attrs)
	case ShapeArrow:
		return GenArrow(s.Scale, s.Attrs)
	default:
		return nil, fmt.Errorf("%w: unknown shape kind %d", ErrInvalidParameter, s.Kind)
	}
}

// Bake generates a batch of shapes concurrently through a dynamic worker
// pool, preserving input order in the result slice. Each generator call
// still allocates and owns its own buffers, so the specs never contend.
// If any spec is invalid the whole bake fails with that spec's error.
//
// Parameters:
//   - specs: the shapes to generate
//
// Returns:
//   - []*Mesh: the generated meshes, index-aligned with specs
//   - error: the first generation error encountered in spec order, or nil
func Bake(specs []ShapeSpec) ([]*Mesh, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	pool := worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), len(specs), 1*time.Second)

	meshes := make([]*Mesh, len(specs))
	errs := make([]error, len(specs))

	// A WaitGroup provides the completion barrier; pool workers idle-exit
	// on their own after the timeout.
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				meshes[i], errs[i] = spec.Generate()
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("bake spec %d: %w", i, err)
		}
	}
	return meshes, nil
}
