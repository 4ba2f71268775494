package model

import (
	"encoding/binary"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/shapes"
)

// FromMesh interleaves a generator result into a GPU-ready Model. Missing
// attribute buffers fill as zero, except color which defaults to opaque
// white so uncolored shapes remain visible with the flat pipeline.
//
// Parameters:
//   - name: the model identifier
//   - src: the generated mesh to interleave
//
// Returns:
//   - Model: the GPU-ready model
func FromMesh(name string, src *shapes.Mesh) Model {
	vertices := make([]GPUVertex, src.VertexCount())
	for i := range vertices {
		v := &vertices[i]
		if src.Positions != nil {
			v.Position = [3]float32{src.Positions[i*3], src.Positions[i*3+1], src.Positions[i*3+2]}
		}
		if src.Normals != nil {
			v.Normal = [3]float32{src.Normals[i*3], src.Normals[i*3+1], src.Normals[i*3+2]}
		}
		if src.TexCoords != nil {
			v.TexCoord = [2]float32{src.TexCoords[i*2], src.TexCoords[i*2+1]}
		}
		if src.Colors != nil {
			v.Color = [4]float32{src.Colors[i*4], src.Colors[i*4+1], src.Colors[i*4+2], src.Colors[i*4+3]}
		} else {
			v.Color = [4]float32{1, 1, 1, 1}
		}
	}

	indexData := make([]byte, len(src.Indices)*4)
	for i, idx := range src.Indices {
		binary.LittleEndian.PutUint32(indexData[i*4:], idx)
	}

	return NewModel(
		WithName(name),
		WithVertexData(common.SliceToBytes(vertices)),
		WithIndexData(indexData),
		WithIndexCount(src.IndexCount()),
		WithBoundingRadius(ComputeBoundingRadius(vertices)),
	)
}
