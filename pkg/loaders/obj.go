package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
	"github.com/tobyv/go-whitted-raytracer/pkg/shape"
)

// OBJData contains the geometry parsed from a Wavefront OBJ file. Faces are
// kept as vertex index triples and only turned into shapes by ToGroup, so a
// single parse can be instantiated with different materials and transforms.
type OBJData struct {
	Vertices []mathpkg.Point  // 1-based per OBJ convention; index 0 unused
	Normals  []mathpkg.Vector // 1-based, parallel to the vn statements

	DefaultFaces []OBJFace
	Groups       map[string][]OBJFace
	GroupOrder   []string // named groups in first-seen order

	// IgnoredLines counts statements the parser skipped (vt, usemtl, ...).
	// Unrecognized content is not an error: real-world OBJ exports are full
	// of extensions.
	IgnoredLines int
}

// OBJFace is one triangle of the parsed mesh. Normal indices are zero when
// the face had no vertex normals.
type OBJFace struct {
	Vertices [3]int
	Normals  [3]int
}

// LoadOBJ reads and parses an OBJ file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ parses OBJ geometry statements: v, vn, f and g. Polygonal faces
// are fan-triangulated around their first vertex. Anything else is counted
// and skipped.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{
		Vertices: []mathpkg.Point{{}}, // dummy entry so indices stay 1-based
		Normals:  []mathpkg.Vector{{}},
		Groups:   make(map[string][]OBJFace),
	}

	currentGroup := ""
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseTriple(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			data.Vertices = append(data.Vertices, mathpkg.NewPoint(p[0], p[1], p[2]))

		case "vn":
			n, err := parseTriple(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, mathpkg.NewVector(n[0], n[1], n[2]))

		case "g":
			if len(fields) > 1 {
				currentGroup = fields[1]
				if _, seen := data.Groups[currentGroup]; !seen {
					data.Groups[currentGroup] = nil
					data.GroupOrder = append(data.GroupOrder, currentGroup)
				}
			} else {
				currentGroup = ""
			}

		case "f":
			faces, err := data.parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}
			if currentGroup == "" {
				data.DefaultFaces = append(data.DefaultFaces, faces...)
			} else {
				data.Groups[currentGroup] = append(data.Groups[currentGroup], faces...)
			}

		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read OBJ data: %w", err)
	}

	return data, nil
}

func parseTriple(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 3 {
		return out, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, fmt.Errorf("coordinate %q: %w", fields[i], err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFace triangulates one face statement. Each vertex reference is
// "v", "v/vt", "v//vn" or "v/vt/vn"; negative indices count back from the
// end of the respective list.
func (d *OBJData) parseFace(refs []string) ([]OBJFace, error) {
	if len(refs) < 3 {
		return nil, fmt.Errorf("needs at least 3 vertices, got %d", len(refs))
	}

	type ref struct{ v, n int }
	parsed := make([]ref, len(refs))
	for i, r := range refs {
		parts := strings.Split(r, "/")

		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("vertex reference %q: %w", r, err)
		}
		v, err = d.resolveIndex(v, len(d.Vertices))
		if err != nil {
			return nil, fmt.Errorf("vertex reference %q: %w", r, err)
		}
		parsed[i].v = v

		if len(parts) == 3 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("normal reference %q: %w", r, err)
			}
			n, err = d.resolveIndex(n, len(d.Normals))
			if err != nil {
				return nil, fmt.Errorf("normal reference %q: %w", r, err)
			}
			parsed[i].n = n
		}
	}

	faces := make([]OBJFace, 0, len(parsed)-2)
	for i := 1; i < len(parsed)-1; i++ {
		faces = append(faces, OBJFace{
			Vertices: [3]int{parsed[0].v, parsed[i].v, parsed[i+1].v},
			Normals:  [3]int{parsed[0].n, parsed[i].n, parsed[i+1].n},
		})
	}
	return faces, nil
}

func (d *OBJData) resolveIndex(idx, length int) (int, error) {
	if idx < 0 {
		idx = length + idx // -1 refers to the most recent entry
	}
	if idx < 1 || idx >= length {
		return 0, fmt.Errorf("index %d out of range", idx)
	}
	return idx, nil
}

// TriangleCount returns the total number of triangles across all groups
func (d *OBJData) TriangleCount() int {
	n := len(d.DefaultFaces)
	for _, faces := range d.Groups {
		n += len(faces)
	}
	return n
}

// ToGroup instantiates the mesh as a group of triangles with the given
// transform and material. Faces with normal references become smooth
// triangles. Named groups become nested sub-groups so the split threshold
// applies per group.
func (d *OBJData) ToGroup(transform mathpkg.Matrix, m material.Material, threshold int) (*shape.Shape, error) {
	children, err := d.buildTriangles(d.DefaultFaces, m)
	if err != nil {
		return nil, err
	}

	for _, name := range d.GroupOrder {
		tris, err := d.buildTriangles(d.Groups[name], m)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", name, err)
		}
		sub, err := shape.NewGroupWithThreshold(mathpkg.Identity(), threshold, tris)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", name, err)
		}
		children = append(children, sub)
	}

	return shape.NewGroupWithThreshold(transform, threshold, children)
}

func (d *OBJData) buildTriangles(faces []OBJFace, m material.Material) ([]*shape.Shape, error) {
	tris := make([]*shape.Shape, 0, len(faces))
	for _, f := range faces {
		p1 := d.Vertices[f.Vertices[0]]
		p2 := d.Vertices[f.Vertices[1]]
		p3 := d.Vertices[f.Vertices[2]]

		var tri *shape.Shape
		var err error
		if f.Normals[0] != 0 && f.Normals[1] != 0 && f.Normals[2] != 0 {
			tri, err = shape.NewSmoothTriangle(p1, p2, p3,
				d.Normals[f.Normals[0]], d.Normals[f.Normals[1]], d.Normals[f.Normals[2]],
				mathpkg.Identity(), m)
		} else {
			tri, err = shape.NewTriangle(p1, p2, p3, mathpkg.Identity(), m)
		}
		if err != nil {
			return nil, err
		}
		tris = append(tris, tri)
	}
	return tris, nil
}
