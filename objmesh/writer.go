package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mirstar13/meshsimplify/halfedge"
)

// Write encodes mesh as a Wavefront OBJ file at path, one "v" record per
// live vertex followed by one triangular "f" record per live face.
func Write(mesh *halfedge.Mesh, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objmesh: cannot create file: %w", err)
	}
	defer file.Close()

	return Encode(file, mesh)
}

// Encode writes mesh to w in the same format Write uses.
func Encode(w io.Writer, mesh *halfedge.Mesh) error {
	if mesh.NumVertices() == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Generated by meshsimplify\n")
	fmt.Fprintf(bw, "# Vertices: %d\n", mesh.NumVertices())
	fmt.Fprintf(bw, "# Faces: %d\n\n", mesh.NumFaces())

	// OBJ numbers vertices by their position among the written records, so
	// skipped (removed) vertices shift the indices that faces refer to.
	objIndex := make([]int, len(mesh.Vertices))
	written := 0
	for i, v := range mesh.Vertices {
		if v.Remove {
			continue
		}
		written++
		objIndex[i] = written
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.Position[0], v.Position[1], v.Position[2])
	}
	bw.WriteString("\n")

	for _, f := range mesh.Faces {
		if f.Remove {
			continue
		}
		he := f.He
		a := mesh.HalfEdges[he].Vertex
		heN := mesh.HalfEdges[he].Next
		b := mesh.HalfEdges[heN].Vertex
		c := mesh.HalfEdges[mesh.HalfEdges[heN].Next].Vertex
		fmt.Fprintf(bw, "f %d %d %d\n", objIndex[a], objIndex[b], objIndex[c])
	}

	return bw.Flush()
}
