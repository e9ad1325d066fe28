// Package obj reads and writes the Wavefront OBJ text format. The decoder
// understands the v, vt, vn and f directives with all four face-vertex
// index syntaxes; grouping and material directives are recognized and
// skipped. The encoder produces the same subset.
//
// OBJ indices are 1-based on the wire and 0-based in a mesh.Mesh.
package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

const (
	tokenVertex   = "v"
	tokenTexCoord = "vt"
	tokenNormal   = "vn"
	tokenFace     = "f"
	tokenComment  = "#"
)

// maxReportedViolations caps how many post-decode validation problems a
// single error message lists.
const maxReportedViolations = 5

// Decoder reads OBJ text into meshes. The zero value rejects meshes whose
// faces reference indices outside the decoded stores, the same check
// Validate performs.
type Decoder struct {
	// SkipValidation disables the post-parse check, leaving any
	// out-of-range indices in the returned mesh.
	SkipValidation bool
}

// Decode reads OBJ text and returns the mesh it describes with a cleared
// modified flag. All failures are reported as *ParseError with the 1-based
// input line.
func (d *Decoder) Decode(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	scanner.Split(scanLines)

	m := mesh.New()
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, tokenComment) {
			continue
		}
		if err := parseLine(m, line, lineNumber); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrorf(lineNumber, "reading input: %v", err)
	}
	if lineNumber == 0 {
		return nil, &ParseError{Reason: "empty input"}
	}

	if !d.SkipValidation {
		if err := validateMesh(m); err != nil {
			return nil, err
		}
	}
	m.ClearModified()
	return m, nil
}

// DecodeString decodes OBJ text held in a string
func (d *Decoder) DecodeString(content string) (*mesh.Mesh, error) {
	return d.Decode(strings.NewReader(content))
}

// Decode reads OBJ text and returns the mesh it describes. The returned
// mesh passes Validate and has a cleared modified flag.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	return (&Decoder{}).Decode(r)
}

// DecodeString decodes OBJ text held in a string
func DecodeString(content string) (*mesh.Mesh, error) {
	return Decode(strings.NewReader(content))
}

// scanLines splits on \n, \r\n and bare \r so input written with any line
// convention decodes the same way.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data):
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		case atEOF:
			return i + 1, data[:i], nil
		default:
			// Need one more byte to tell \r from \r\n.
			return 0, nil, nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func parseLine(m *mesh.Mesh, line string, lineNumber int) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	args := tokens[1:]

	switch tokens[0] {
	case tokenVertex:
		return parseVertex(m, args, lineNumber)
	case tokenTexCoord:
		return parseTexCoord(m, args, lineNumber)
	case tokenNormal:
		return parseNormal(m, args, lineNumber)
	case tokenFace:
		return parseFace(m, args, lineNumber)
	case "o", "g", "mtllib", "usemtl", "s":
		// Recognized but not retained.
	default:
		// Unknown directives are skipped.
	}
	return nil
}

func parseVertex(m *mesh.Mesh, args []string, lineNumber int) error {
	if len(args) < 3 {
		return parseErrorf(lineNumber, "vertex needs at least 3 coordinates, got %d", len(args))
	}
	coords, err := parseFloatArgs(args, 3, lineNumber)
	if err != nil {
		return err
	}
	m.AddVertex(geometry.NewVector3(coords[0], coords[1], coords[2]))
	return nil
}

func parseTexCoord(m *mesh.Mesh, args []string, lineNumber int) error {
	if len(args) < 2 {
		return parseErrorf(lineNumber, "texture coordinate needs at least 2 components, got %d", len(args))
	}
	coords, err := parseFloatArgs(args, 2, lineNumber)
	if err != nil {
		return err
	}
	m.AddTexCoord(geometry.NewVector2(coords[0], coords[1]))
	return nil
}

func parseNormal(m *mesh.Mesh, args []string, lineNumber int) error {
	if len(args) < 3 {
		return parseErrorf(lineNumber, "normal needs at least 3 components, got %d", len(args))
	}
	coords, err := parseFloatArgs(args, 3, lineNumber)
	if err != nil {
		return err
	}
	m.AddNormal(geometry.NewVector3(coords[0], coords[1], coords[2]))
	return nil
}

// parseFloatArgs parses the first n arguments as float32 values. Extra
// arguments, like a w component or vertex colors, are ignored.
func parseFloatArgs(args []string, n, lineNumber int) ([]float32, error) {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, parseErrorf(lineNumber, "invalid float value %q", args[i])
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseFace(m *mesh.Mesh, args []string, lineNumber int) error {
	if len(args) < 3 {
		return parseErrorf(lineNumber, "face needs at least 3 vertices, got %d", len(args))
	}

	var vertexIndices, texCoordIndices, normalIndices []int
	for _, arg := range args {
		fv, err := parseFaceVertex(arg, lineNumber)
		if err != nil {
			return err
		}
		vertexIndices = append(vertexIndices, fv.vertex)
		if fv.hasTexCoord {
			texCoordIndices = append(texCoordIndices, fv.texCoord)
		}
		if fv.hasNormal {
			normalIndices = append(normalIndices, fv.normal)
		}
	}

	f, err := mesh.NewFace(vertexIndices)
	if err != nil {
		return parseErrorf(lineNumber, "invalid face: %v", err)
	}
	if len(texCoordIndices) > 0 {
		if err := f.SetTexCoordIndices(texCoordIndices); err != nil {
			return parseErrorf(lineNumber, "invalid face: %v", err)
		}
	}
	if len(normalIndices) > 0 {
		if err := f.SetNormalIndices(normalIndices); err != nil {
			return parseErrorf(lineNumber, "invalid face: %v", err)
		}
	}
	m.AddFace(f)
	return nil
}

// faceVertex is one parsed face corner: a vertex index plus the optional
// texture-coordinate and normal indices.
type faceVertex struct {
	vertex      int
	texCoord    int
	normal      int
	hasTexCoord bool
	hasNormal   bool
}

// parseFaceVertex handles the four corner syntaxes: v, v/vt, v/vt/vn and
// v//vn.
func parseFaceVertex(s string, lineNumber int) (faceVertex, error) {
	var fv faceVertex
	parts := strings.Split(s, "/")
	// Trailing empty fields are dropped: "3/" and "3//" read as plain
	// vertex corners.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	switch len(parts) {
	case 1:
		v, err := parseIndex(parts[0])
		if err != nil {
			return fv, parseErrorf(lineNumber, "invalid index value %q", parts[0])
		}
		fv.vertex = v
	case 2:
		v, err := parseIndex(parts[0])
		if err != nil {
			return fv, parseErrorf(lineNumber, "invalid index value %q", parts[0])
		}
		vt, err := parseIndex(parts[1])
		if err != nil {
			return fv, parseErrorf(lineNumber, "invalid index value %q", parts[1])
		}
		fv.vertex = v
		fv.texCoord = vt
		fv.hasTexCoord = true
	case 3:
		v, err := parseIndex(parts[0])
		if err != nil {
			return fv, parseErrorf(lineNumber, "invalid index value %q", parts[0])
		}
		fv.vertex = v
		if parts[1] != "" {
			vt, err := parseIndex(parts[1])
			if err != nil {
				return fv, parseErrorf(lineNumber, "invalid index value %q", parts[1])
			}
			fv.texCoord = vt
			fv.hasTexCoord = true
		}
		vn, err := parseIndex(parts[2])
		if err != nil {
			return fv, parseErrorf(lineNumber, "invalid index value %q", parts[2])
		}
		fv.normal = vn
		fv.hasNormal = true
	default:
		return fv, parseErrorf(lineNumber, "invalid face vertex format %q", s)
	}
	return fv, nil
}

// parseIndex converts a 1-based OBJ index to 0-based. Negative wire indices
// are shifted the same way without resolving them against the store size;
// the resulting negative index is rejected when the face is built.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// validateMesh turns post-decode validation violations into a single error
// listing at most maxReportedViolations problems.
func validateMesh(m *mesh.Mesh) error {
	violations := m.Validate()
	if len(violations) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("mesh failed validation:")
	for i, v := range violations {
		if i == maxReportedViolations {
			fmt.Fprintf(&sb, "\n  ... and %d more", len(violations)-maxReportedViolations)
			break
		}
		sb.WriteString("\n  - ")
		sb.WriteString(v)
	}
	return &ParseError{Reason: sb.String()}
}
