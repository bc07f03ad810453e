package halfedge

// Collapse rewires topology in place to merge edge e's two endpoints into
// one, per spec.md §4.3. The caller must have already confirmed
// ValidCollapse(e) and must set v1's position and quadric beforehand; the
// operator only performs the topological rewiring and marks the removed
// vertex, edge, half-edges, and faces.
//
// Preconditions: e is valid per ValidCollapse and not already removed.
// Runs in time linear in the degree of the edge's two endpoints.
func (m *Mesh) Collapse(e int) {
	he := m.Edges[e].He
	heN := m.HalfEdges[he].Next
	heNN := m.HalfEdges[heN].Next

	fl := m.HalfEdges[he].Flip
	flN := m.HalfEdges[fl].Next
	flNN := m.HalfEdges[flN].Next

	v1 := m.HalfEdges[he].Vertex
	v2 := m.HalfEdges[fl].Vertex
	v3 := m.HalfEdges[heNN].Vertex
	v4 := m.HalfEdges[flNN].Vertex

	e2 := m.HalfEdges[heNN].Edge
	e3 := m.HalfEdges[flN].Edge

	f := m.HalfEdges[he].Face
	fFlip := m.HalfEdges[fl].Face

	// Reattach every half-edge outgoing from v2 to originate from v1.
	m.walkOutgoing(v2, func(h int) bool {
		m.HalfEdges[h].Vertex = v1
		return true
	})

	// Rewrite vertex -> half-edge links.
	m.Vertices[v1].He = heN
	m.Vertices[v3].He = m.HalfEdges[m.HalfEdges[heNN].Flip].Next
	m.Vertices[v4].He = flNN

	// Splice the two collapsing triangles out of the half-edge cycles,
	// keeping heN and flNN as the retained "outer" edges.
	heNNFlip := m.HalfEdges[heNN].Flip
	m.HalfEdges[heN].Face = m.HalfEdges[heNNFlip].Face
	m.Faces[m.HalfEdges[heN].Face].He = heN

	flNFlip := m.HalfEdges[flN].Flip
	m.HalfEdges[flNN].Face = m.HalfEdges[flNFlip].Face
	m.Faces[m.HalfEdges[flNN].Face].He = flNN

	m.HalfEdges[heN].Next = m.HalfEdges[heNNFlip].Next
	m.HalfEdges[m.HalfEdges[m.HalfEdges[heN].Next].Next].Next = heN

	m.HalfEdges[flNN].Next = m.HalfEdges[flNFlip].Next
	m.HalfEdges[m.HalfEdges[m.HalfEdges[flNN].Next].Next].Next = flNN

	// Mark removed: v2; the collapsing edge; e2, e3; all six half-edges;
	// both faces.
	m.Vertices[v2].Remove = true
	m.Edges[e].Remove = true
	m.Edges[e2].Remove = true
	m.Edges[e3].Remove = true
	m.HalfEdges[he].Remove = true
	m.HalfEdges[fl].Remove = true
	m.HalfEdges[heNN].Remove = true
	m.HalfEdges[heNNFlip].Remove = true
	m.HalfEdges[flN].Remove = true
	m.HalfEdges[flNFlip].Remove = true
	m.Faces[f].Remove = true
	m.Faces[fFlip].Remove = true
}
