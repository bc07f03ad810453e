// Package halfedge implements a half-edge connectivity representation for
// triangular manifold surface meshes and a Garland-Heckbert quadric error
// metric simplification engine over it.
//
// A Mesh owns flat, index-addressed arrays of Vertex, HalfEdge, Edge, and
// Face. Every cross-reference between entities is a stable array index, not
// a pointer, so the whole connectivity graph survives the in-place
// compaction that Simplify performs when it reclaims removed elements.
//
// The package does no file I/O; callers build a Mesh (see the sibling
// objmesh package for a Wavefront OBJ reader/writer) and call Simplify on
// it directly.
package halfedge
