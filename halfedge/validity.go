package halfedge

// ValidCollapse reports whether collapsing edge e is valid per spec.md
// §4.2: neither endpoint may lie on the boundary, and the link condition
// must hold so the collapse cannot fold the mesh into a non-manifold
// shape.
func (m *Mesh) ValidCollapse(e int) bool {
	he := m.Edges[e].He
	flip := m.HalfEdges[he].Flip

	v1 := m.HalfEdges[he].Vertex
	v2 := m.HalfEdges[flip].Vertex

	if m.OnBoundary(v1) || m.OnBoundary(v2) {
		return false
	}

	heN := m.HalfEdges[he].Next
	heNN := m.HalfEdges[heN].Next
	v3 := m.HalfEdges[heNN].Vertex
	v4 := m.HalfEdges[m.HalfEdges[m.HalfEdges[flip].Next].Next].Vertex

	// If the triangles across heN and heNN both close over v4, the four
	// vertices form a tetrahedron and collapsing would leave v3 and v4
	// joined by two coincident edges.
	if m.target(m.HalfEdges[m.HalfEdges[heN].Flip].Next) == v4 &&
		m.target(m.HalfEdges[m.HalfEdges[heNN].Flip].Next) == v4 {
		return false
	}

	return !m.linkIntersects(he, v2, v3, v4)
}

// linkIntersects walks v1's one-ring (v1 = he's origin) and, for every
// neighbor outside {v2, v3, v4}, tests whether it already shares an edge
// with v2. Any such shared edge means collapsing he would identify two
// edges that are not already the same edge, creating a non-manifold fold.
func (m *Mesh) linkIntersects(he, v2, v3, v4 int) bool {
	v1 := m.HalfEdges[he].Vertex
	found := false

	m.walkOutgoing(v1, func(h int) bool {
		v := m.target(h)
		if v != v2 && v != v3 && v != v4 {
			if m.ShareEdge(v, v2) {
				found = true
				return false
			}
		}
		return true
	})

	return found
}
