package halfedge

import "math"

// Simplify mutates the mesh in place, collapsing edges in increasing order
// of quadric error cost until the live face count is at most target or no
// further valid collapse exists, per spec.md §4.5 and §6.
//
// Simplify requires target >= 2. It never returns a "no progress" error:
// running out of valid collapses before reaching target is a normal
// stopping condition (spec.md §7), observable afterward through
// m.NumFaces().
func (m *Mesh) Simplify(target int) error {
	if target < 2 {
		return ErrTargetTooSmall
	}

	m.ComputeQuadrics()

	h := &edgeHeap{mesh: m, items: make([]*edgeHeapItem, 0, len(m.Edges))}
	for e := range m.Edges {
		m.computeEdgeCost(e)
		h.push(e)
	}

	nF := m.NumFaces()
	for nF > target {
		top := h.top()

		if m.Edges[top].Remove {
			h.pop()
			continue
		}

		if !m.ValidCollapse(top) {
			m.Edges[top].Cost = math.Inf(1)
			h.update(top)

			if h.top() == top {
				break // no valid collapse remains
			}
			continue
		}

		m.commitCollapse(top, h)
		nF -= 2
	}

	for e := range m.Edges {
		m.Edges[e].handle = nil
	}

	m.Compact()
	return nil
}

// commitCollapse moves the surviving vertex to the edge's proposed
// position, accumulates its quadric, performs the topological collapse,
// and refreshes the cost of every edge in the surviving vertex's new
// one-ring.
func (m *Mesh) commitCollapse(e int, h *edgeHeap) {
	he := m.Edges[e].He
	v1 := m.HalfEdges[he].Vertex
	v2 := m.HalfEdges[m.HalfEdges[he].Flip].Vertex

	m.Vertices[v1].Position = m.Edges[e].Position
	m.Vertices[v1].Quadric = m.Vertices[v1].Quadric.Add(m.Vertices[v2].Quadric)

	m.Collapse(e)

	m.walkOutgoing(v1, func(oh int) bool {
		ne := m.HalfEdges[oh].Edge
		m.computeEdgeCost(ne)
		h.update(ne)
		return true
	})
}

// computeEdgeCost recomputes edge e's collapse cost and proposed position:
// +Inf if the collapse is currently invalid, otherwise the quadric-optimal
// placement (or its degenerate fallback) for the endpoints' combined
// quadric.
func (m *Mesh) computeEdgeCost(e int) {
	if !m.ValidCollapse(e) {
		m.Edges[e].Cost = math.Inf(1)
		return
	}

	he := m.Edges[e].He
	v1 := m.HalfEdges[he].Vertex
	v2 := m.HalfEdges[m.HalfEdges[he].Flip].Vertex

	q := m.Vertices[v1].Quadric.Add(m.Vertices[v2].Quadric)
	pos, cost := optimalPlacement(q, m.Vertices[v1].Position, m.Vertices[v2].Position)

	m.Edges[e].Position = pos
	m.Edges[e].Cost = cost
}
