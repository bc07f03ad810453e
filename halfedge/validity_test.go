package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidCollapseTetrahedronRejectsEverything covers spec scenario 6:
// a minimal tetrahedron has no edge whose collapse satisfies the link
// condition, since collapsing any edge would leave the two remaining
// vertices joined by two coincident edges.
func TestValidCollapseTetrahedronRejectsEverything(t *testing.T) {
	positions, triangles := tetrahedronMesh()
	m, err := NewMeshFromTriangles(positions, triangles)
	require.NoError(t, err)

	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, p := range pairs {
		e := edgeBetween(m, p[0], p[1])
		require.GreaterOrEqual(t, e, 0, "edge %v must exist in a complete graph on 4 vertices", p)
		assert.False(t, m.ValidCollapse(e), "collapsing %v must violate the link condition", p)
	}
}

// TestValidCollapseOctahedronAcceptsEquatorialEdge covers the positive
// case: an octahedron's equatorial edges share exactly the two apex
// vertices between their endpoints, so the link condition holds.
func TestValidCollapseOctahedronAcceptsEquatorialEdge(t *testing.T) {
	positions, triangles := octahedronMesh()
	m, err := NewMeshFromTriangles(positions, triangles)
	require.NoError(t, err)

	e := edgeBetween(m, 0, 2)
	require.GreaterOrEqual(t, e, 0)
	assert.True(t, m.ValidCollapse(e))
}

func TestValidCollapsePlanarQuadRejectsBoundaryEdges(t *testing.T) {
	positions, triangles := planarQuadMesh()
	m, err := NewMeshFromTriangles(positions, triangles)
	require.NoError(t, err)

	for _, e := range []int{0, 1, 2, 3, 4} {
		assert.False(t, m.ValidCollapse(e), "every edge of a single quad touches the boundary")
	}
}
