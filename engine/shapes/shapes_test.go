package shapes

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenSphereCounts(t *testing.T) {
	for _, slices := range []int{4, 8, 16, 32} {
		m, err := GenSphere(slices, 1.0, AttrAll)
		require.NoError(t, err)

		parallels := slices / 2
		wantVertices := (parallels + 1) * (slices + 1)
		wantIndices := parallels * slices * 6

		assert.Equal(t, wantVertices, m.VertexCount())
		assert.Equal(t, wantIndices, m.IndexCount())
		assert.Len(t, m.Positions, wantVertices*3)
		assert.Len(t, m.Normals, wantVertices*3)
		assert.Len(t, m.TexCoords, wantVertices*2)
		assert.Len(t, m.Indices, wantIndices)

		for _, idx := range m.Indices {
			assert.Less(t, int(idx), wantVertices)
		}
	}
}

func TestGenSphereRadius(t *testing.T) {
	const radius = 2.5
	m, err := GenSphere(16, radius, AttrPositions)
	require.NoError(t, err)

	for v := 0; v < m.VertexCount(); v++ {
		x := m.Positions[v*3+0]
		y := m.Positions[v*3+1]
		z := m.Positions[v*3+2]
		assert.InDelta(t, radius, math32.Sqrt(x*x+y*y+z*z), 1e-5)
	}
}

func TestGenSphereNormals(t *testing.T) {
	const radius = 4.0
	m, err := GenSphere(8, radius, AttrPositions|AttrNormals)
	require.NoError(t, err)

	// Normals are position/radius by construction, so the identity is exact.
	for i, p := range m.Positions {
		assert.Equal(t, p/radius, m.Normals[i])
	}
}

func TestGenSphereFirstVertexAtPole(t *testing.T) {
	m, err := GenSphere(4, 1.0, AttrPositions|AttrIndices)
	require.NoError(t, err)

	assert.Equal(t, 15, m.VertexCount())
	assert.Equal(t, 48, m.IndexCount())

	// i = 0: sin(0) = 0, cos(0) = 1 puts vertex 0 on the +Y pole.
	assert.Equal(t, float32(0), m.Positions[0])
	assert.Equal(t, float32(1), m.Positions[1])
	assert.Equal(t, float32(0), m.Positions[2])
}

func TestGenSphereTexCoordURange(t *testing.T) {
	m, err := GenSphere(8, 1.0, AttrTexCoords)
	require.NoError(t, err)

	for v := 0; v < m.VertexCount(); v++ {
		u := m.TexCoords[v*2]
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1))
	}
}

func TestGenSphereInvalidParameters(t *testing.T) {
	for _, slices := range []int{0, 2, 3, 5, -4} {
		_, err := GenSphere(slices, 1.0, AttrAll)
		assert.ErrorIs(t, err, ErrInvalidParameter, "slices=%d", slices)
	}
	for _, radius := range []float32{0, -1} {
		_, err := GenSphere(8, radius, AttrAll)
		assert.ErrorIs(t, err, ErrInvalidParameter, "radius=%v", radius)
	}
}

func TestGenSphereSkipsUnrequestedAttributes(t *testing.T) {
	m, err := GenSphere(8, 1.0, AttrIndices)
	require.NoError(t, err)

	assert.Nil(t, m.Positions)
	assert.Nil(t, m.Normals)
	assert.Nil(t, m.TexCoords)
	assert.Nil(t, m.Colors)
	assert.Len(t, m.Indices, m.IndexCount())
}

func TestGenCubeCounts(t *testing.T) {
	for _, scale := range []float32{0.5, 1.0, 10.0} {
		m, err := GenCube(scale, AttrAll)
		require.NoError(t, err)

		assert.Equal(t, 24, m.VertexCount())
		assert.Equal(t, 36, m.IndexCount())
		assert.Len(t, m.Positions, 72)
		assert.Len(t, m.Normals, 72)
		assert.Len(t, m.TexCoords, 48)
		assert.Len(t, m.Indices, 36)

		for _, idx := range m.Indices {
			assert.Less(t, int(idx), 24)
		}
	}
}

func TestGenCubeScaling(t *testing.T) {
	unit, err := GenCube(1.0, AttrAll)
	require.NoError(t, err)
	scaled, err := GenCube(3.0, AttrAll)
	require.NoError(t, err)

	for i := range unit.Positions {
		assert.Equal(t, unit.Positions[i]*3.0, scaled.Positions[i])
	}
	// Normals and texcoords are unaffected by scale.
	assert.Equal(t, unit.Normals, scaled.Normals)
	assert.Equal(t, unit.TexCoords, scaled.TexCoords)
}

func TestGenCubeFirstVertexAndWinding(t *testing.T) {
	m, err := GenCube(2.0, AttrPositions|AttrIndices)
	require.NoError(t, err)

	assert.Equal(t, []float32{-1, -1, -1}, m.Positions[0:3])
	assert.Equal(t, []uint32{0, 2, 1}, m.Indices[0:3])
}

func TestGenCubeInvalidScale(t *testing.T) {
	_, err := GenCube(0, AttrAll)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = GenCube(-2, AttrAll)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenArrowCounts(t *testing.T) {
	m, err := GenArrow(1.0, AttrAll)
	require.NoError(t, err)

	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 12, m.IndexCount())
	assert.Len(t, m.Positions, 36)
	assert.Len(t, m.Colors, 48)
	assert.Len(t, m.Indices, 12)

	// The fixed shape carries no normals or texcoords.
	assert.Nil(t, m.Normals)
	assert.Nil(t, m.TexCoords)
}

func TestGenArrowFlatColorGroups(t *testing.T) {
	m, err := GenArrow(1.0, AttrColors)
	require.NoError(t, err)

	// 4 groups of 3 vertices, uniform color within each group.
	for group := 0; group < 4; group++ {
		first := m.Colors[group*12 : group*12+4]
		for vtx := 1; vtx < 3; vtx++ {
			off := group*12 + vtx*4
			assert.Equal(t, first, m.Colors[off:off+4], "group %d vertex %d", group, vtx)
		}
	}
}

func TestGenArrowApexAndScale(t *testing.T) {
	m, err := GenArrow(2.0, AttrPositions|AttrIndices)
	require.NoError(t, err)

	// Vertex 0 is the apex (0, 1, 0) scaled by 2.
	assert.Equal(t, []float32{0, 2, 0}, m.Positions[0:3])

	// Indices are the identity sequence over the replicated vertices.
	for i, idx := range m.Indices {
		assert.Equal(t, uint32(i), idx)
	}
}

func TestGenArrowInvalidScale(t *testing.T) {
	_, err := GenArrow(-1, AttrAll)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
