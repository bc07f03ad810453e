// Command simplify reads a Wavefront OBJ mesh, normalizes it to the unit
// sphere, collapses edges by quadric error cost down to a target face
// count, and writes the result back out as OBJ.
package main

import (
	"flag"
	"log"

	"github.com/mirstar13/meshsimplify/objmesh"
)

func main() {
	inPath := flag.String("in", "", "input OBJ file")
	outPath := flag.String("out", "", "output OBJ file")
	target := flag.Int("faces", 0, "target face count")
	normalize := flag.Bool("normalize", true, "recenter and rescale the mesh to the unit sphere before simplifying")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		log.Fatal("usage: simplify -in mesh.obj -out mesh.simplified.obj -faces N")
	}

	mesh, err := objmesh.Read(*inPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *inPath, err)
	}
	log.Printf("read %s: %d vertices, %d faces", *inPath, mesh.NumVertices(), mesh.NumFaces())

	if *normalize {
		objmesh.Normalize(mesh)
	}

	if err := mesh.Simplify(*target); err != nil {
		log.Fatalf("simplifying: %v", err)
	}
	log.Printf("simplified to %d faces", mesh.NumFaces())

	if err := objmesh.Write(mesh, *outPath); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
}
