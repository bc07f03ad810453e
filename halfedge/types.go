package halfedge

import "github.com/go-gl/mathgl/mgl64"

// NoFace marks a half-edge that bounds a hole rather than a triangle.
const NoFace = -1

// IsolatedHalfEdge is the process-wide sentinel outgoing half-edge of a
// vertex that belongs to no edge or face. Rather than pointing every
// isolated vertex at a shared empty half-edge list (as the original
// implementation does with a single process-wide std::vector<HalfEdge>),
// isolation is recognized by comparing Vertex.He against this reserved
// index value.
const IsolatedHalfEdge = -1

// Vertex is a point in 3D space together with its connectivity and
// accumulated quadric error.
type Vertex struct {
	Position mgl64.Vec3

	// He is the index, in the owning Mesh's HalfEdges slice, of one
	// half-edge outgoing from this vertex, or IsolatedHalfEdge.
	He int

	// Quadric is the accumulated 4x4 symmetric error quadric Q_v.
	Quadric mgl64.Mat4

	Index  int
	Remove bool
}

// IsIsolated reports whether v belongs to no edge or face.
func (v *Vertex) IsIsolated() bool {
	return v.He == IsolatedHalfEdge
}

// HalfEdge is one directed half of an Edge, bound to the Face it borders.
//
// Vertex is the *source* of the half-edge; the target is Flip's Vertex.
type HalfEdge struct {
	Vertex     int
	Edge       int
	Flip       int
	Next       int
	Face       int
	OnBoundary bool

	Index  int
	Remove bool
}

// Edge owns one of its two half-edges and the lazily computed collapse
// cost and proposed post-collapse position for that edge.
type Edge struct {
	He int

	Cost     float64
	Position mgl64.Vec3

	Index  int
	Remove bool

	// handle is this edge's position in the owning Mesh's collapse-cost
	// heap, maintained by Simplify. It is nil outside of a Simplify call.
	handle *edgeHeapItem
}

// Face is a triangle bound by three interior half-edges, or a hole bound
// by a cycle of boundary half-edges tracked only through its half-edges
// (Faces never holds an entry for a boundary loop; see NoFace).
type Face struct {
	He int

	Index  int
	Remove bool
}

// Mesh owns every Vertex, HalfEdge, Edge, and Face by value in flat,
// index-addressed slices. Entities refer to each other by the stable index
// into these slices, never by pointer, so Compact can rewrite every
// cross-reference after removing marked elements.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Edges     []Edge
	Faces     []Face

	// Boundaries holds one representative half-edge index per boundary
	// loop discovered when the mesh was built.
	Boundaries []int
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// NumFaces returns the number of live (non-removed) faces.
func (m *Mesh) NumFaces() int {
	n := 0
	for i := range m.Faces {
		if !m.Faces[i].Remove {
			n++
		}
	}
	return n
}

// NumVertices returns the number of live (non-removed) vertices.
func (m *Mesh) NumVertices() int {
	n := 0
	for i := range m.Vertices {
		if !m.Vertices[i].Remove {
			n++
		}
	}
	return n
}

// NumEdges returns the number of live (non-removed) edges.
func (m *Mesh) NumEdges() int {
	n := 0
	for i := range m.Edges {
		if !m.Edges[i].Remove {
			n++
		}
	}
	return n
}

// walkOutgoing calls visit for each half-edge outgoing from vertex v, in
// rotational order, stopping after a full turn. visit returns false to
// stop early. walkOutgoing does nothing for an isolated vertex.
func (m *Mesh) walkOutgoing(v int, visit func(he int) bool) {
	start := m.Vertices[v].He
	if start == IsolatedHalfEdge {
		return
	}

	h := start
	for {
		if !visit(h) {
			return
		}
		h = m.HalfEdges[m.HalfEdges[h].Flip].Next
		if h == start {
			return
		}
	}
}

// OnBoundary reports whether any half-edge outgoing from vertex v borders
// a hole rather than a triangle.
func (m *Mesh) OnBoundary(v int) bool {
	onBoundary := false
	m.walkOutgoing(v, func(he int) bool {
		if m.HalfEdges[he].OnBoundary {
			onBoundary = true
			return false
		}
		return true
	})
	return onBoundary
}

// ShareEdge reports whether vertices a and b are joined by a common edge.
func (m *Mesh) ShareEdge(a, b int) bool {
	shared := false
	m.walkOutgoing(a, func(ha int) bool {
		target := m.HalfEdges[m.HalfEdges[ha].Flip].Vertex
		if target == b {
			shared = true
			return false
		}
		return true
	})
	return shared
}

// target returns the vertex a half-edge points to.
func (m *Mesh) target(he int) int {
	return m.HalfEdges[m.HalfEdges[he].Flip].Vertex
}
