package objmesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tetrahedronOBJ = `# a tetrahedron
v 1 1 1
v 1 -1 -1
v -1 1 -1
v -1 -1 1

f 1 2 3
f 1 4 2
f 1 3 4
f 2 4 3
`

func TestDecodeTetrahedron(t *testing.T) {
	m, err := Decode(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
	assert.Equal(t, 6, m.NumEdges())
	assert.Empty(t, m.Boundaries)
}

func TestDecodeTriangulatesNGons(t *testing.T) {
	square := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := Decode(strings.NewReader(square))
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumFaces(), "a quad face fan-triangulates into 2 triangles")
}

func TestDecodeErrors(t *testing.T) {
	t.Run("BadVertex", func(t *testing.T) {
		_, err := Decode(strings.NewReader("v 1 2\n"))
		assert.Error(t, err)
	})

	t.Run("FaceIndexOutOfRange", func(t *testing.T) {
		src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 5\n"
		_, err := Decode(strings.NewReader(src))
		assert.Error(t, err)
	})

	t.Run("FaceTooShort", func(t *testing.T) {
		src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n"
		_, err := Decode(strings.NewReader(src))
		assert.Error(t, err)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m, err := Decode(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Encode(&buf, m))

	m2, err := Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, m.NumVertices(), m2.NumVertices())
	assert.Equal(t, m.NumFaces(), m2.NumFaces())
	assert.Equal(t, m.NumEdges(), m2.NumEdges())
}

func TestEncodeEmptyMesh(t *testing.T) {
	m, err := Decode(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	m.Vertices = nil

	var buf strings.Builder
	err = Encode(&buf, m)
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestNormalizeCentersAndRescales(t *testing.T) {
	m, err := Decode(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	// Offset every vertex off-center before normalizing.
	for i := range m.Vertices {
		m.Vertices[i].Position[0] += 10
	}

	Normalize(m)

	maxLen := 0.0
	var sum [3]float64
	for _, v := range m.Vertices {
		sum[0] += v.Position[0]
		sum[1] += v.Position[1]
		sum[2] += v.Position[2]
		if l := v.Position.Len(); l > maxLen {
			maxLen = l
		}
	}

	assert.InDelta(t, 0, sum[0], 1e-9)
	assert.InDelta(t, 0, sum[1], 1e-9)
	assert.InDelta(t, 0, sum[2], 1e-9)
	assert.InDelta(t, 1.0, maxLen, 1e-9)
}
