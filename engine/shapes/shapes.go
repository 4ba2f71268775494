// Package shapes generates procedural mesh geometry for the demo renderer.
// Three independent generators exist (sphere, cube, arrow); they share no
// state and each call allocates and fills its own buffers exactly once.
// All generators emit triangle-list indices with outward-facing winding.
package shapes

import "errors"

// ErrInvalidParameter is returned when a generator receives a shape
// parameter outside its valid range (non-positive radius or scale, sphere
// slice counts that are odd or below 4).
var ErrInvalidParameter = errors.New("invalid shape parameter")

// Attr is a bit set selecting which vertex attribute buffers a generator
// fills. Unselected buffers are left nil on the returned Mesh.
type Attr uint8

const (
	// AttrPositions requests the position buffer (3 floats per vertex).
	AttrPositions Attr = 1 << iota

	// AttrNormals requests the normal buffer (3 floats per vertex).
	AttrNormals

	// AttrTexCoords requests the texture coordinate buffer (2 floats per vertex).
	AttrTexCoords

	// AttrColors requests the color buffer (4 floats per vertex).
	// Only the arrow generator produces colors.
	AttrColors

	// AttrIndices requests the triangle-list index buffer.
	AttrIndices

	// AttrAll requests every attribute a generator can produce.
	AttrAll = AttrPositions | AttrNormals | AttrTexCoords | AttrColors | AttrIndices
)

// Has reports whether the attribute set includes all flags in want.
//
// Parameters:
//   - want: the attribute flags to test for
//
// Returns:
//   - bool: true if every flag in want is set
func (a Attr) Has(want Attr) bool {
	return a&want == want
}

// Mesh is the result of a single generator call. Slices not requested via
// the Attr set remain nil. A Mesh is filled once at construction and never
// mutated by this package afterwards; the caller owns the buffers.
type Mesh struct {
	// Positions holds 3 floats per vertex (x, y, z).
	Positions []float32

	// Normals holds 3 floats per vertex, unit length.
	Normals []float32

	// TexCoords holds 2 floats per vertex (u, v).
	TexCoords []float32

	// Colors holds 4 floats per vertex (r, g, b, a).
	Colors []float32

	// Indices holds triangle-list indices, 3 per triangle, each < VertexCount.
	Indices []uint32

	vertexCount int
	indexCount  int
}

// VertexCount returns the number of vertices in the mesh, fixed by the
// shape parameters regardless of which attribute buffers were requested.
//
// Returns:
//   - int: the vertex count
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// IndexCount returns the number of indices required to render the mesh as
// a triangle list. This is valid even when AttrIndices was not requested.
//
// Returns:
//   - int: the index count
func (m *Mesh) IndexCount() int {
	return m.indexCount
}
