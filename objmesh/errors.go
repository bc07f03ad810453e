package objmesh

import "errors"

var (
	// ErrEmptyMesh is returned by Write when the mesh has no vertices.
	ErrEmptyMesh = errors.New("objmesh: mesh has no vertices")
)
