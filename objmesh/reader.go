package objmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mirstar13/meshsimplify/halfedge"
)

// Read parses a Wavefront OBJ file at path and builds a halfedge.Mesh
// from its "v" and "f" records. Faces with more than three vertices are
// fan-triangulated, as the teacher's own OBJ loader does. "vt", "vn",
// and material directives are accepted and ignored.
func Read(path string) (*halfedge.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objmesh: cannot open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses OBJ records from r the same way Read does.
func Decode(r io.Reader) (*halfedge.Mesh, error) {
	var positions []mgl64.Vec3
	var triangles [][3]int

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("objmesh: line %d: invalid vertex definition", lineNum)
			}
			x, err1 := strconv.ParseFloat(parts[1], 64)
			y, err2 := strconv.ParseFloat(parts[2], 64)
			z, err3 := strconv.ParseFloat(parts[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("objmesh: line %d: invalid vertex coordinates", lineNum)
			}
			positions = append(positions, mgl64.Vec3{x, y, z})

		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("objmesh: line %d: face must have at least 3 vertices", lineNum)
			}

			faceVerts := make([]int, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				idx, err := parseFaceVertexIndex(parts[i])
				if err != nil {
					return nil, fmt.Errorf("objmesh: line %d: %w", lineNum, err)
				}

				// OBJ indices are 1-based; negative indices count back
				// from the current end of the vertex list.
				if idx < 0 {
					idx = len(positions) + idx + 1
				}
				vertexIdx := idx - 1
				if vertexIdx < 0 || vertexIdx >= len(positions) {
					return nil, fmt.Errorf("objmesh: line %d: vertex index out of range", lineNum)
				}
				faceVerts = append(faceVerts, vertexIdx)
			}

			for i := 1; i < len(faceVerts)-1; i++ {
				triangles = append(triangles, [3]int{faceVerts[0], faceVerts[i], faceVerts[i+1]})
			}

		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objmesh: reading file: %w", err)
	}

	return halfedge.NewMeshFromTriangles(positions, triangles)
}

// parseFaceVertexIndex extracts the vertex-position index from a face
// token in v, v/vt, v/vt/vn, or v//vn form.
func parseFaceVertexIndex(tok string) (int, error) {
	v := tok
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		v = tok[:i]
	}
	if v == "" {
		return 0, fmt.Errorf("invalid face index %q", tok)
	}
	idx, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", tok)
	}
	return idx, nil
}
