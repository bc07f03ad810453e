package halfedge

import "errors"

// Sentinel errors returned by this package, checked with errors.Is at call
// sites, following the convention of katalvlaran-lvlath/matrix's error set:
// one ErrXxx per distinct precondition violation, each prefixed with the
// package name.
var (
	// ErrTargetTooSmall is returned by Simplify when target is below the
	// minimum of 2 faces spec.md §6 requires.
	ErrTargetTooSmall = errors.New("halfedge: target face count must be >= 2")

	// ErrTooFewVertices is returned when building a mesh from fewer than
	// three vertex positions.
	ErrTooFewVertices = errors.New("halfedge: mesh needs at least 3 vertices")

	// ErrDegenerateTriangle is returned when a triangle's three indices
	// are not pairwise distinct.
	ErrDegenerateTriangle = errors.New("halfedge: triangle has repeated vertex index")

	// ErrVertexIndexRange is returned when a triangle references a vertex
	// index outside the supplied vertex slice.
	ErrVertexIndexRange = errors.New("halfedge: triangle vertex index out of range")

	// ErrNonManifoldEdge is returned when a directed edge is shared by
	// more than one face with the same winding; non-manifold input is out
	// of scope for repair, but construction fails fast rather than
	// silently corrupting connectivity.
	ErrNonManifoldEdge = errors.New("halfedge: edge shared by more than two half-edges")
)
