package halfedge

// element is satisfied by *Vertex, *HalfEdge, *Edge, and *Face. Compact
// uses it to share one partition routine across all four entity arrays,
// the Go equivalent of the original implementation's
// `template <typename T> void swapMarkedRemove(vector<T>&, int&)`.
type element interface {
	removed() bool
}

func (v *Vertex) removed() bool   { return v.Remove }
func (h *HalfEdge) removed() bool { return h.Remove }
func (e *Edge) removed() bool     { return e.Remove }
func (f *Face) removed() bool     { return f.Remove }

// swapToFront partitions s in place so every removed element ends up past
// the returned live-prefix length, using two indices closing from
// opposite ends, exactly as spec.md §4.6 describes. Each element's own
// Index field travels with it through the swap, so it still identifies
// the element's pre-compaction position afterward.
func swapToFront[T any, PT interface {
	*T
	element
}](s []T) int {
	n := len(s)
	if n == 0 {
		return 0
	}

	start, end := 0, n-1
	for {
		for start < end && !PT(&s[start]).removed() {
			start++
		}
		for start < end && PT(&s[end]).removed() {
			end--
		}
		if start >= end {
			break
		}
		s[start], s[end] = s[end], s[start]
	}

	if PT(&s[start]).removed() {
		return start
	}
	return start + 1
}

// Compact reclaims every Vertex, HalfEdge, Edge, and Face marked Remove
// and rewrites every surviving cross-reference, so that afterward no
// element has Remove set and every array is indexed 0..n-1 contiguously
// (spec.md §3 invariant 9, §4.6).
//
// Isolated vertices are recognized by IsolatedHalfEdge and are left with
// their outgoing reference untouched, per spec.md §3.
func (m *Mesh) Compact() {
	nV := swapToFront[Vertex](m.Vertices)
	nE := swapToFront[Edge](m.Edges)
	nHE := swapToFront[HalfEdge](m.HalfEdges)
	nF := swapToFront[Face](m.Faces)

	newVertex := make(map[int]int, nV)
	for i := 0; i < nV; i++ {
		newVertex[m.Vertices[i].Index] = i
	}
	newEdge := make(map[int]int, nE)
	for i := 0; i < nE; i++ {
		newEdge[m.Edges[i].Index] = i
	}
	newHalfEdge := make(map[int]int, nHE)
	for i := 0; i < nHE; i++ {
		newHalfEdge[m.HalfEdges[i].Index] = i
	}
	newFace := make(map[int]int, nF)
	for i := 0; i < nF; i++ {
		newFace[m.Faces[i].Index] = i
	}

	for i := 0; i < nV; i++ {
		if !m.Vertices[i].IsIsolated() {
			m.Vertices[i].He = newHalfEdge[m.Vertices[i].He]
		}
	}
	for i := 0; i < nE; i++ {
		m.Edges[i].He = newHalfEdge[m.Edges[i].He]
	}
	for i := 0; i < nHE; i++ {
		he := &m.HalfEdges[i]
		he.Vertex = newVertex[he.Vertex]
		he.Edge = newEdge[he.Edge]
		he.Flip = newHalfEdge[he.Flip]
		he.Next = newHalfEdge[he.Next]
		if he.Face != NoFace {
			he.Face = newFace[he.Face]
		}
	}
	for i := 0; i < nF; i++ {
		m.Faces[i].He = newHalfEdge[m.Faces[i].He]
	}

	for i := 0; i < nV; i++ {
		m.Vertices[i].Index = i
	}
	for i := 0; i < nE; i++ {
		m.Edges[i].Index = i
	}
	for i := 0; i < nHE; i++ {
		m.HalfEdges[i].Index = i
	}
	for i := 0; i < nF; i++ {
		m.Faces[i].Index = i
	}

	m.Vertices = m.Vertices[:nV]
	m.Edges = m.Edges[:nE]
	m.HalfEdges = m.HalfEdges[:nHE]
	m.Faces = m.Faces[:nF]

	m.Boundaries = findBoundaryLoops(m)
}
