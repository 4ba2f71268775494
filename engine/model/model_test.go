package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/prism-go/engine/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.25, 0.75},
		Color:    [4]float32{1, 0, 0, 1},
	}

	require.Equal(t, 48, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 48)

	// Spot-check the std430 offsets: position at 0, texcoord at 24, color at 32.
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[24:28])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[32:36])))
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{-1, 0, 0}},
	}
	assert.InDelta(t, 5.0, ComputeBoundingRadius(vertices), 1e-6)
	assert.Equal(t, float32(0), ComputeBoundingRadius(nil))
}

func TestFromMeshInterleave(t *testing.T) {
	src, err := shapes.GenCube(2.0, shapes.AttrAll)
	require.NoError(t, err)

	m := FromMesh("cube", src)

	assert.Equal(t, "cube", m.Name())
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 24*48)
	assert.Len(t, m.IndexData(), 36*4)

	// First interleaved vertex: position (-1,-1,-1), normal (0,-1,0),
	// texcoord (0,0), default white color.
	first := m.VertexData()[:48]
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(first[0:4])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(first[4:8])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(first[8:12])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(first[16:20])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(first[32:36])))

	// A scale-2 cube has corners at (±1,±1,±1), so the radius is sqrt(3).
	assert.InDelta(t, math.Sqrt(3), float64(m.BoundingRadius()), 1e-6)

	// Index bytes are little-endian uint32: first triangle is 0, 2, 1.
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(m.IndexData()[0:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(m.IndexData()[4:8]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(m.IndexData()[8:12]))
}

func TestFromMeshArrowColors(t *testing.T) {
	src, err := shapes.GenArrow(1.0, shapes.AttrPositions|shapes.AttrColors|shapes.AttrIndices)
	require.NoError(t, err)

	m := FromMesh("arrow", src)
	require.Len(t, m.VertexData(), 12*48)

	// Vertex 0 carries the first face color (red, alpha 0).
	first := m.VertexData()[:48]
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(first[32:36])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(first[36:40])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(first[44:48])))
}
