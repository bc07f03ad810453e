package halfedge

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// edgeBetween returns the index of the live edge joining vertices a and
// b, or -1 if none exists. Edge indices depend on directed-map iteration
// order in NewMeshFromTriangles, so tests must look edges up by the
// vertex pair they join rather than assuming a fixed index.
func edgeBetween(m *Mesh, a, b int) int {
	for i, e := range m.Edges {
		if e.Remove {
			continue
		}
		x := m.HalfEdges[e.He].Vertex
		y := m.target(e.He)
		if (x == a && y == b) || (x == b && y == a) {
			return i
		}
	}
	return -1
}

// tetrahedronMesh returns the 4-vertex, 4-face, 6-edge closed manifold
// from spec scenario 1.
func tetrahedronMesh() ([]mgl64.Vec3, [][3]int) {
	positions := []mgl64.Vec3{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	triangles := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return positions, triangles
}

// octahedronMesh returns the 6-vertex, 8-face, 12-edge closed manifold
// from spec scenario 2.
func octahedronMesh() ([]mgl64.Vec3, [][3]int) {
	positions := []mgl64.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	triangles := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	return positions, triangles
}

// planarQuadMesh returns a unit square split along one diagonal: two
// triangles, one interior edge, and a single boundary loop touching
// every vertex, from spec scenario 3.
func planarQuadMesh() ([]mgl64.Vec3, [][3]int) {
	positions := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	triangles := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
	}
	return positions, triangles
}

// subdividedIcosahedron repeatedly splits every triangle of a base
// icosahedron into 4 (the standard edge-midpoint subdivision), welding
// shared edge midpoints so the result stays a closed manifold. Two
// levels applied to the 12-vertex, 20-face base produce the 162-vertex,
// 320-face mesh from spec scenario 4 (V' = V+E, F' = 4F each level).
func subdividedIcosahedron(levels int) ([]mgl64.Vec3, [][3]int) {
	phi := (1 + math.Sqrt(5)) / 2
	positions := []mgl64.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	for i := range positions {
		positions[i] = positions[i].Normalize()
	}

	triangles := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for l := 0; l < levels; l++ {
		type edgeKey [2]int
		midpoint := make(map[edgeKey]int)

		getMid := func(a, b int) int {
			key := edgeKey{a, b}
			if a > b {
				key = edgeKey{b, a}
			}
			if idx, ok := midpoint[key]; ok {
				return idx
			}
			mid := positions[a].Add(positions[b]).Mul(0.5).Normalize()
			positions = append(positions, mid)
			idx := len(positions) - 1
			midpoint[key] = idx
			return idx
		}

		next := make([][3]int, 0, len(triangles)*4)
		for _, tri := range triangles {
			a, b, c := tri[0], tri[1], tri[2]
			ab := getMid(a, b)
			bc := getMid(b, c)
			ca := getMid(c, a)
			next = append(next,
				[3]int{a, ab, ca},
				[3]int{b, bc, ab},
				[3]int{c, ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		triangles = next
	}

	return positions, triangles
}
