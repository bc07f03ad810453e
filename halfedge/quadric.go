package halfedge

import "github.com/go-gl/mathgl/mgl64"

// singularThreshold is the determinant magnitude below which the
// restricted quadric Q' is treated as non-invertible and the optimal
// placement falls back to the best of the two endpoints and their
// midpoint, per spec.md §4.1.
const singularThreshold = 1e-6

// planeQuadric returns the rank-1 quadric p*p^T for the homogeneous plane
// coefficients p = (n.x, n.y, n.z, -n.dot(a)).
func planeQuadric(p mgl64.Vec4) mgl64.Mat4 {
	var q mgl64.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			q[col*4+row] = p[row] * p[col]
		}
	}
	return q
}

// facePlane returns the plane coefficients of face f, and false if the
// face is degenerate (zero area) or its representative half-edge is a
// boundary half-edge. A triangle that merely borders a hole has interior
// half-edges of its own and gets a plane.
func (m *Mesh) facePlane(f int) (mgl64.Vec4, bool) {
	he := m.Faces[f].He
	if m.HalfEdges[he].OnBoundary {
		return mgl64.Vec4{}, false
	}

	a := m.Vertices[m.HalfEdges[he].Vertex].Position
	b := m.Vertices[m.HalfEdges[m.HalfEdges[he].Next].Vertex].Position
	c := m.Vertices[m.HalfEdges[m.HalfEdges[m.HalfEdges[he].Next].Next].Vertex].Position

	n := b.Sub(a).Cross(c.Sub(a))
	length := n.Len()
	if length < 1e-10 {
		return mgl64.Vec4{}, false
	}

	n = n.Mul(1.0 / length)
	return mgl64.Vec4{n[0], n[1], n[2], -n.Dot(a)}, true
}

// ComputeQuadrics resets and recomputes every vertex's quadric as the sum
// of the face quadrics of its non-boundary incident faces (spec.md §4.1).
// Boundary faces contribute nothing, and degenerate (zero-area) faces are
// silently skipped rather than rejected, per the Design Notes.
func (m *Mesh) ComputeQuadrics() {
	for i := range m.Vertices {
		m.Vertices[i].Quadric = mgl64.Mat4{}
	}

	for f := range m.Faces {
		if m.Faces[f].Remove {
			continue
		}
		plane, ok := m.facePlane(f)
		if !ok {
			continue
		}
		fq := planeQuadric(plane)

		he := m.Faces[f].He
		for i := 0; i < 3; i++ {
			v := m.HalfEdges[he].Vertex
			m.Vertices[v].Quadric = m.Vertices[v].Quadric.Add(fq)
			he = m.HalfEdges[he].Next
		}
	}
}

// quadricError evaluates v^T Q v for v = (x, y, z, 1), expanded with
// symmetry factored as spec.md §4.1 specifies.
func quadricError(q mgl64.Mat4, p mgl64.Vec3) float64 {
	x, y, z := p[0], p[1], p[2]
	return q.At(0, 0)*x*x + 2*q.At(0, 1)*x*y + 2*q.At(0, 2)*x*z + 2*q.At(0, 3)*x +
		q.At(1, 1)*y*y + 2*q.At(1, 2)*y*z + 2*q.At(1, 3)*y +
		q.At(2, 2)*z*z + 2*q.At(2, 3)*z +
		q.At(3, 3)
}

// optimalPlacement computes the post-collapse position and clamped cost
// for the combined quadric q of two endpoints p1, p2, per spec.md §4.1:
// solve for the minimizer when the restricted quadric is invertible, else
// fall back to the cheapest of the two endpoints and their midpoint.
func optimalPlacement(q mgl64.Mat4, p1, p2 mgl64.Vec3) (mgl64.Vec3, float64) {
	qDel := q
	qDel.Set(3, 0, 0)
	qDel.Set(3, 1, 0)
	qDel.Set(3, 2, 0)
	qDel.Set(3, 3, 1)

	if det := qDel.Det(); det < -singularThreshold || det > singularThreshold {
		b := mgl64.Vec4{0, 0, 0, 1}
		x := qDel.Inv().Mul4x1(b)
		pos := mgl64.Vec3{x[0], x[1], x[2]}
		return pos, maxFloat(0, quadricError(q, pos))
	}

	mid := p1.Add(p2).Mul(0.5)
	e1 := quadricError(q, p1)
	e2 := quadricError(q, p2)
	e3 := quadricError(q, mid)

	if e1 <= e2 && e1 <= e3 {
		return p1, maxFloat(0, e1)
	}
	if e2 <= e3 {
		return p2, maxFloat(0, e2)
	}
	return mid, maxFloat(0, e3)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
