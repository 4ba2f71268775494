package shapes

import "fmt"

// Per-face constant tables for the unit cube. Faces do not share vertices
// so each face carries its own flat normal and corner texcoords:
// 6 faces × 4 vertices = 24 vertices, 12 triangles = 36 indices.
var (
	cubePositions = [72]float32{
		-0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, -0.5, -0.5,
		-0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
		0.5, 0.5, -0.5,
		-0.5, -0.5, -0.5,
		-0.5, 0.5, -0.5,
		0.5, 0.5, -0.5,
		0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
		-0.5, 0.5, 0.5,
		0.5, 0.5, 0.5,
		0.5, -0.5, 0.5,
		-0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
		-0.5, 0.5, 0.5,
		-0.5, 0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		0.5, 0.5, -0.5,
	}

	cubeNormals = [72]float32{
		0, -1, 0,
		0, -1, 0,
		0, -1, 0,
		0, -1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 0, -1,
		0, 0, -1,
		0, 0, -1,
		0, 0, -1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		-1, 0, 0,
		-1, 0, 0,
		-1, 0, 0,
		-1, 0, 0,
		1, 0, 0,
		1, 0, 0,
		1, 0, 0,
		1, 0, 0,
	}

	cubeTexCoords = [48]float32{
		0, 0,
		0, 1,
		1, 1,
		1, 0,
		1, 0,
		1, 1,
		0, 1,
		0, 0,
		0, 0,
		0, 1,
		1, 1,
		1, 0,
		0, 0,
		0, 1,
		1, 1,
		1, 0,
		0, 0,
		0, 1,
		1, 1,
		1, 0,
		0, 0,
		0, 1,
		1, 1,
		1, 0,
	}

	cubeIndices = [36]uint32{
		0, 2, 1,
		0, 3, 2,
		4, 5, 6,
		4, 6, 7,
		8, 9, 10,
		8, 10, 11,
		12, 15, 14,
		12, 14, 13,
		16, 17, 18,
		16, 18, 19,
		20, 23, 22,
		20, 22, 21,
	}
)

// GenCube generates an origin-centered cube from baked constant tables,
// scaled uniformly by scale. Only positions are scaled; normals and
// texture coordinates are copied as-is.
//
// Parameters:
//   - scale: the cube edge length; must be > 0 (1.0 yields a unit cube)
//   - attrs: the attribute buffers to fill (colors are not produced)
//
// Returns:
//   - *Mesh: the generated 24-vertex, 36-index mesh
//   - error: ErrInvalidParameter if scale is out of range
func GenCube(scale float32, attrs Attr) (*Mesh, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidParameter, scale)
	}

	m := &Mesh{
		vertexCount: 24,
		indexCount:  36,
	}

	if attrs.Has(AttrPositions) {
		m.Positions = make([]float32, len(cubePositions))
		for i, p := range cubePositions {
			m.Positions[i] = p * scale
		}
	}
	if attrs.Has(AttrNormals) {
		m.Normals = make([]float32, len(cubeNormals))
		copy(m.Normals, cubeNormals[:])
	}
	if attrs.Has(AttrTexCoords) {
		m.TexCoords = make([]float32, len(cubeTexCoords))
		copy(m.TexCoords, cubeTexCoords[:])
	}
	if attrs.Has(AttrIndices) {
		m.Indices = make([]uint32, len(cubeIndices))
		copy(m.Indices, cubeIndices[:])
	}

	return m, nil
}
