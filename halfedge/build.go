package halfedge

import "github.com/go-gl/mathgl/mgl64"

// NewMeshFromTriangles builds a half-edge Mesh from a flat vertex position
// list and a triangle list of vertex indices, three per triangle. This is
// the "glue to external I/O" component spec.md §6 describes: it is the
// contract an external loader (see the objmesh package) must satisfy,
// turning an unconnected triangle soup into a connectivity store where
// every interior edge has two half-edges and every hole is a linked cycle
// of boundary half-edges.
//
// Each entity's Index is assigned contiguous within its array and every
// cross-reference is consistent on return, satisfying spec.md §3's
// invariants before Simplify ever runs.
func NewMeshFromTriangles(positions []mgl64.Vec3, triangles [][3]int) (*Mesh, error) {
	if len(positions) < 3 {
		return nil, ErrTooFewVertices
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(positions)),
	}
	for i, p := range positions {
		m.Vertices[i] = Vertex{Position: p, He: IsolatedHalfEdge, Index: i}
	}

	m.HalfEdges = make([]HalfEdge, 0, 3*len(triangles))
	m.Faces = make([]Face, 0, len(triangles))
	m.Edges = make([]Edge, 0, 3*len(triangles)/2)

	// directed[a][b] holds the half-edge index for the directed edge a->b
	// until its twin (b->a, interior or boundary) is found.
	type dkey struct{ a, b int }
	directed := make(map[dkey]int, 3*len(triangles))

	for _, tri := range triangles {
		for _, vi := range tri {
			if vi < 0 || vi >= len(positions) {
				return nil, ErrVertexIndexRange
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return nil, ErrDegenerateTriangle
		}

		faceIndex := len(m.Faces)
		base := len(m.HalfEdges)

		m.Faces = append(m.Faces, Face{He: base, Index: faceIndex})

		for i := 0; i < 3; i++ {
			origin := tri[i]
			target := tri[(i+1)%3]

			he := HalfEdge{
				Vertex: origin,
				Face:   faceIndex,
				Next:   base + (i+1)%3,
				Flip:   -1,
				Edge:   -1,
				Index:  base + i,
			}
			m.HalfEdges = append(m.HalfEdges, he)

			if m.Vertices[origin].He == IsolatedHalfEdge {
				m.Vertices[origin].He = base + i
			}

			key := dkey{origin, target}
			if _, exists := directed[key]; exists {
				return nil, ErrNonManifoldEdge
			}
			directed[key] = base + i
		}
	}

	// Match interior half-edges with their flip, creating an Edge for
	// each matched pair.
	for key, heIdx := range directed {
		if m.HalfEdges[heIdx].Flip != -1 {
			continue // already matched from the other side
		}
		twinKey := dkey{key.b, key.a}
		twinIdx, ok := directed[twinKey]
		if !ok {
			continue // boundary-adjacent, handled below
		}

		edgeIndex := len(m.Edges)
		m.Edges = append(m.Edges, Edge{He: heIdx, Index: edgeIndex})

		m.HalfEdges[heIdx].Flip = twinIdx
		m.HalfEdges[heIdx].Edge = edgeIndex
		m.HalfEdges[twinIdx].Flip = heIdx
		m.HalfEdges[twinIdx].Edge = edgeIndex
	}

	// Any directed half-edge still missing a flip borders a hole. Create
	// its boundary twin and an Edge joining the two.
	boundaryOrigin := make(map[int]int) // vertex -> outgoing boundary half-edge index
	for key, heIdx := range directed {
		if m.HalfEdges[heIdx].Flip != -1 {
			continue
		}

		bIdx := len(m.HalfEdges)
		bh := HalfEdge{
			Vertex:     key.b,
			Face:       NoFace,
			Flip:       heIdx,
			OnBoundary: true,
			Index:      bIdx,
		}
		m.HalfEdges = append(m.HalfEdges, bh)

		edgeIndex := len(m.Edges)
		m.Edges = append(m.Edges, Edge{He: heIdx, Index: edgeIndex})

		m.HalfEdges[heIdx].Flip = bIdx
		m.HalfEdges[heIdx].Edge = edgeIndex
		m.HalfEdges[bIdx].Edge = edgeIndex

		boundaryOrigin[key.b] = bIdx
	}

	// Stitch boundary half-edges into cycles around each hole: the next
	// boundary half-edge along a loop is the one originating where this
	// one's twin originates, since that is where this one ends
	// (TestNewMeshFromTrianglesPlanarQuad checks that the loop closes).
	for heIdx, he := range m.HalfEdges {
		if !he.OnBoundary {
			continue
		}
		interior := m.HalfEdges[he.Flip]
		m.HalfEdges[heIdx].Next = boundaryOrigin[interior.Vertex]
	}

	m.Boundaries = findBoundaryLoops(m)

	return m, nil
}

// findBoundaryLoops returns one representative half-edge index per
// boundary loop, mirroring Mesh::boundaries in the original implementation.
func findBoundaryLoops(m *Mesh) []int {
	visited := make([]bool, len(m.HalfEdges))
	var loops []int

	for i, he := range m.HalfEdges {
		if !he.OnBoundary || visited[i] {
			continue
		}
		loops = append(loops, i)

		h := i
		for {
			visited[h] = true
			h = m.HalfEdges[h].Next
			if h == i {
				break
			}
		}
	}

	return loops
}
