// Package objmesh reads and writes Wavefront OBJ files as
// halfedge.Mesh values, and provides the unit-sphere normalization
// preprocessor used ahead of simplification. It only understands the
// "v" and "f" records; materials, normals, and texture coordinates are
// neither parsed nor written.
package objmesh
