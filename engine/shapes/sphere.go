package shapes

import (
	"fmt"

	"github.com/chewxy/math32"
)

// GenSphere generates a sphere centered at the origin by laying vertices on
// a (slices/2 + 1) × (slices + 1) latitude/longitude grid. The seam column
// is duplicated so texture coordinates can wrap cleanly.
//
// Vertex count is (slices/2 + 1)(slices + 1); index count is
// (slices/2) · slices · 6.
//
// Parameters:
//   - slices: the number of longitudinal slices; must be even and >= 4
//   - radius: the sphere radius; must be > 0
//   - attrs: the attribute buffers to fill (colors are not produced)
//
// Returns:
//   - *Mesh: the generated mesh with the requested buffers populated
//   - error: ErrInvalidParameter if slices or radius is out of range
func GenSphere(slices int, radius float32, attrs Attr) (*Mesh, error) {
	if slices < 4 || slices%2 != 0 {
		return nil, fmt.Errorf("%w: slices must be even and >= 4, got %d", ErrInvalidParameter, slices)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidParameter, radius)
	}

	parallels := slices / 2
	m := &Mesh{
		vertexCount: (parallels + 1) * (slices + 1),
		indexCount:  parallels * slices * 6,
	}
	angleStep := (2.0 * math32.Pi) / float32(slices)

	if attrs.Has(AttrPositions) {
		m.Positions = make([]float32, m.vertexCount*3)
	}
	if attrs.Has(AttrNormals) {
		m.Normals = make([]float32, m.vertexCount*3)
	}
	if attrs.Has(AttrTexCoords) {
		m.TexCoords = make([]float32, m.vertexCount*2)
	}

	for i := 0; i <= parallels; i++ {
		// sin/cos of the polar angle are shared across the whole parallel.
		sinI := math32.Sin(angleStep * float32(i))
		cosI := math32.Cos(angleStep * float32(i))

		for j := 0; j <= slices; j++ {
			v := i*(slices+1) + j

			x := radius * sinI * math32.Sin(angleStep*float32(j))
			y := radius * cosI
			z := radius * sinI * math32.Cos(angleStep*float32(j))

			if m.Positions != nil {
				m.Positions[v*3+0] = x
				m.Positions[v*3+1] = y
				m.Positions[v*3+2] = z
			}
			if m.Normals != nil {
				// The sphere is origin-centered, so position/radius is the unit normal.
				m.Normals[v*3+0] = x / radius
				m.Normals[v*3+1] = y / radius
				m.Normals[v*3+2] = z / radius
			}
			if m.TexCoords != nil {
				m.TexCoords[v*2+0] = float32(j) / float32(slices)
				m.TexCoords[v*2+1] = (1.0 - float32(i)) / float32(parallels-1)
			}
		}
	}

	if attrs.Has(AttrIndices) {
		m.Indices = make([]uint32, 0, m.indexCount)
		for i := 0; i < parallels; i++ {
			for j := 0; j < slices; j++ {
				// Two triangles per grid cell, both wound outward.
				m.Indices = append(m.Indices,
					uint32(i*(slices+1)+j),
					uint32((i+1)*(slices+1)+j),
					uint32((i+1)*(slices+1)+(j+1)),

					uint32(i*(slices+1)+j),
					uint32((i+1)*(slices+1)+(j+1)),
					uint32(i*(slices+1)+(j+1)),
				)
			}
		}
	}

	return m, nil
}
