package shapes

import "fmt"

// The arrow is built from four logical points:
//
//	     v1
//	     /\
//	    /  \
//	   / v4 \
//	  v2    v3
//
// v1 is the apex, v2/v3 the base corners, and v4 a center point raised
// toward the viewer. Each of the four faces is flat-colored, so the points
// are replicated per face: 4 faces × 3 vertices = 12 vertices, 12 indices.
var (
	arrowPoints = [4][3]float32{
		{0.0, 1.0, 0.0},    // v1: apex
		{-0.3, -0.3, 0.0},  // v2: left base corner
		{0.3, -0.3, 0.0},   // v3: right base corner
		{0.0, 0.0, 0.3},    // v4: raised center
	}

	// arrowFaces indexes into arrowPoints, one row per flat-colored face:
	// left side, right side, front, base.
	arrowFaces = [4][3]int{
		{0, 3, 1},
		{0, 3, 2},
		{0, 1, 2},
		{1, 2, 3},
	}

	// arrowFaceColors assigns one color per face (red, green, blue, red),
	// matching the decorative scheme of the original fixed shape.
	arrowFaceColors = [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
	}
)

// GenArrow generates the fixed decorative arrowhead shape, scaled uniformly
// by scale. Unlike the sphere and cube this generator is not parameterized
// by a shape descriptor; geometry and color tables are baked in. Normals
// and texture coordinates are not produced.
//
// Parameters:
//   - scale: uniform scale factor applied to positions; must be > 0
//   - attrs: the attribute buffers to fill (positions, colors, indices)
//
// Returns:
//   - *Mesh: the generated 12-vertex, 12-index mesh
//   - error: ErrInvalidParameter if scale is out of range
func GenArrow(scale float32, attrs Attr) (*Mesh, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidParameter, scale)
	}

	m := &Mesh{
		vertexCount: len(arrowFaces) * 3,
		indexCount:  len(arrowFaces) * 3,
	}

	if attrs.Has(AttrPositions) {
		m.Positions = make([]float32, 0, m.vertexCount*3)
		for _, face := range arrowFaces {
			for _, pt := range face {
				p := arrowPoints[pt]
				m.Positions = append(m.Positions, p[0]*scale, p[1]*scale, p[2]*scale)
			}
		}
	}
	if attrs.Has(AttrColors) {
		m.Colors = make([]float32, 0, m.vertexCount*4)
		for fi := range arrowFaces {
			c := arrowFaceColors[fi]
			for range 3 {
				m.Colors = append(m.Colors, c[0], c[1], c[2], c[3])
			}
		}
	}
	if attrs.Has(AttrIndices) {
		// Vertices are already laid out in draw order.
		m.Indices = make([]uint32, m.indexCount)
		for i := range m.Indices {
			m.Indices[i] = uint32(i)
		}
	}

	return m, nil
}
