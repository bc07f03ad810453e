package objmesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mirstar13/meshsimplify/halfedge"
)

// Normalize recenters mesh on its center of mass and rescales it so the
// farthest vertex lies on the unit sphere. It mutates mesh in place and
// is meant to run once, right after Read, ahead of Mesh.Simplify.
//
// Normalize is a no-op on a mesh with no vertices.
func Normalize(mesh *halfedge.Mesh) {
	n := mesh.NumVertices()
	if n == 0 {
		return
	}

	cm := mgl64.Vec3{}
	for _, v := range mesh.Vertices {
		if v.Remove {
			continue
		}
		cm = cm.Add(v.Position)
	}
	cm = cm.Mul(1.0 / float64(n))

	rMax := 0.0
	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = mesh.Vertices[i].Position.Sub(cm)
		if r := mesh.Vertices[i].Position.Len(); r > rMax {
			rMax = r
		}
	}

	if rMax == 0 {
		return
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = mesh.Vertices[i].Position.Mul(1.0 / rMax)
	}
}
