package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBakePreservesOrder(t *testing.T) {
	specs := []ShapeSpec{
		{Kind: ShapeSphere, Slices: 8, Radius: 1.0, Attrs: AttrAll},
		{Kind: ShapeCube, Scale: 2.0, Attrs: AttrPositions | AttrIndices},
		{Kind: ShapeArrow, Scale: 1.0, Attrs: AttrPositions | AttrColors | AttrIndices},
		{Kind: ShapeSphere, Slices: 16, Radius: 0.5, Attrs: AttrPositions},
	}

	meshes, err := Bake(specs)
	require.NoError(t, err)
	require.Len(t, meshes, 4)

	assert.Equal(t, (4+1)*(8+1), meshes[0].VertexCount())
	assert.Equal(t, 24, meshes[1].VertexCount())
	assert.Equal(t, 12, meshes[2].VertexCount())
	assert.Equal(t, (8+1)*(16+1), meshes[3].VertexCount())

	// The cube spec skipped normals; its slices reflect only what was asked.
	assert.Nil(t, meshes[1].Normals)
	assert.NotNil(t, meshes[1].Positions)
}

func TestBakeEmpty(t *testing.T) {
	meshes, err := Bake(nil)
	require.NoError(t, err)
	assert.Nil(t, meshes)
}

func TestBakePropagatesErrors(t *testing.T) {
	specs := []ShapeSpec{
		{Kind: ShapeCube, Scale: 1.0, Attrs: AttrAll},
		{Kind: ShapeSphere, Slices: 3, Radius: 1.0, Attrs: AttrAll},
	}

	meshes, err := Bake(specs)
	assert.Nil(t, meshes)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestShapeSpecUnknownKind(t *testing.T) {
	_, err := ShapeSpec{Kind: ShapeKind(99)}.Generate()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
