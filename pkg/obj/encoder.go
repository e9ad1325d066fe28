package obj

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/mesh"
)

const (
	// DefaultPrecision is the number of decimal places used for float
	// output when none is configured.
	DefaultPrecision = 6

	minPrecision = 1
	maxPrecision = 10

	defaultGenerator = "goobj"

	// maxWriteViolations caps how many validation problems a refused
	// encode reports.
	maxWriteViolations = 3
)

// lineSep is the platform line separator. The decoder accepts any
// convention on the way back in.
var lineSep = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Encoder writes a mesh as OBJ text. The zero value writes bare data lines
// with default precision; NewEncoder returns one with the header and
// statistics block enabled.
type Encoder struct {
	// WriteHeader emits the leading comment block.
	WriteHeader bool
	// WriteStatistics adds element counts to the header. Only honored
	// when WriteHeader is set.
	WriteStatistics bool
	// Generator names the producing tool in the header.
	Generator string

	precision int
}

// NewEncoder creates an encoder with default settings
func NewEncoder() *Encoder {
	return &Encoder{
		WriteHeader:     true,
		WriteStatistics: true,
		Generator:       defaultGenerator,
		precision:       DefaultPrecision,
	}
}

// Precision returns the configured number of decimal places
func (e *Encoder) Precision() int {
	if e.precision == 0 {
		return DefaultPrecision
	}
	return e.precision
}

// SetPrecision sets the number of decimal places for float output,
// clamped to [1, 10]
func (e *Encoder) SetPrecision(precision int) {
	e.precision = min(maxPrecision, max(minPrecision, precision))
}

// Encode writes the mesh as OBJ text. It refuses nil meshes, meshes without
// vertices and meshes failing validation; those and I/O failures are
// reported as *WriteError.
func (e *Encoder) Encode(w io.Writer, m *mesh.Mesh) error {
	if err := e.check(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if e.WriteHeader {
		e.writeHeader(bw, m)
	}
	e.writeVertices(bw, m)
	e.writeTexCoords(bw, m)
	e.writeNormals(bw, m)
	e.writeFaces(bw, m)

	if err := bw.Flush(); err != nil {
		return &WriteError{Reason: "writing output", Err: err}
	}
	return nil
}

// EncodeToString renders the mesh as an OBJ string
func (e *Encoder) EncodeToString(m *mesh.Mesh) (string, error) {
	var sb strings.Builder
	if err := e.Encode(&sb, m); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Encoder) check(m *mesh.Mesh) error {
	if m == nil {
		return &WriteError{Reason: "mesh must not be nil"}
	}
	if m.IsEmpty() {
		return &WriteError{Reason: "mesh has no data to write"}
	}
	if violations := m.Validate(); len(violations) > 0 {
		n := min(maxWriteViolations, len(violations))
		return &WriteError{Reason: "mesh failed validation: " + strings.Join(violations[:n], "; ")}
	}
	return nil
}

func (e *Encoder) writeHeader(w *bufio.Writer, m *mesh.Mesh) {
	w.WriteString("# Wavefront OBJ File" + lineSep)
	generator := e.Generator
	if generator == "" {
		generator = defaultGenerator
	}
	w.WriteString("# Generated by " + generator + lineSep)

	if m.Name() != "" {
		w.WriteString("# Model: " + m.Name() + lineSep)
	}

	if e.WriteStatistics {
		w.WriteString("#" + lineSep)
		fmt.Fprintf(w, "# Vertices: %d%s", m.VertexCount(), lineSep)
		fmt.Fprintf(w, "# Texture coords: %d%s", m.TexCoordCount(), lineSep)
		fmt.Fprintf(w, "# Normals: %d%s", m.NormalCount(), lineSep)
		fmt.Fprintf(w, "# Faces: %d%s", m.FaceCount(), lineSep)
	}

	w.WriteString(lineSep)
}

func (e *Encoder) writeVertices(w *bufio.Writer, m *mesh.Mesh) {
	if m.VertexCount() == 0 {
		return
	}
	for _, v := range m.Vertices() {
		w.WriteString(tokenVertex + " " + e.formatFloat(v.X) + " " + e.formatFloat(v.Y) + " " + e.formatFloat(v.Z) + lineSep)
	}
	w.WriteString(lineSep)
}

func (e *Encoder) writeTexCoords(w *bufio.Writer, m *mesh.Mesh) {
	if m.TexCoordCount() == 0 {
		return
	}
	for _, tc := range m.TexCoords() {
		w.WriteString(tokenTexCoord + " " + e.formatFloat(tc.X) + " " + e.formatFloat(tc.Y) + lineSep)
	}
	w.WriteString(lineSep)
}

func (e *Encoder) writeNormals(w *bufio.Writer, m *mesh.Mesh) {
	if m.NormalCount() == 0 {
		return
	}
	for _, n := range m.Normals() {
		w.WriteString(tokenNormal + " " + e.formatFloat(n.X) + " " + e.formatFloat(n.Y) + " " + e.formatFloat(n.Z) + lineSep)
	}
	w.WriteString(lineSep)
}

func (e *Encoder) writeFaces(w *bufio.Writer, m *mesh.Mesh) {
	for _, f := range m.Faces() {
		e.writeFace(w, f)
	}
}

// writeFace picks the corner syntax from which optional lists the face
// carries. A corner whose texture index is missing keeps its slashes with
// nothing between them; a missing normal index becomes the 0 sentinel.
func (e *Encoder) writeFace(w *bufio.Writer, f *mesh.Face) {
	w.WriteString(tokenFace)

	vertexIndices := f.VertexIndices()
	texCoordIndices := f.TexCoordIndices()
	normalIndices := f.NormalIndices()
	hasTexCoords := len(texCoordIndices) > 0
	hasNormals := len(normalIndices) > 0

	for i, vIdx := range vertexIndices {
		w.WriteByte(' ')
		v := strconv.Itoa(vIdx + 1)

		switch {
		case hasTexCoords && hasNormals:
			vt, vn := 0, 0
			if i < len(texCoordIndices) {
				vt = texCoordIndices[i] + 1
			}
			if i < len(normalIndices) {
				vn = normalIndices[i] + 1
			}
			w.WriteString(v)
			w.WriteByte('/')
			if vt > 0 {
				w.WriteString(strconv.Itoa(vt))
			}
			w.WriteByte('/')
			w.WriteString(strconv.Itoa(vn))
		case hasTexCoords:
			vt := 0
			if i < len(texCoordIndices) {
				vt = texCoordIndices[i] + 1
			}
			w.WriteString(v)
			w.WriteByte('/')
			if vt > 0 {
				w.WriteString(strconv.Itoa(vt))
			}
		case hasNormals:
			vn := 0
			if i < len(normalIndices) {
				vn = normalIndices[i] + 1
			}
			w.WriteString(v + "//" + strconv.Itoa(vn))
		default:
			w.WriteString(v)
		}
	}

	w.WriteString(lineSep)
}

// formatFloat prints integral values without a decimal part and everything
// else with the configured precision, trailing zeros stripped.
func (e *Encoder) formatFloat(value float32) string {
	if value == float32(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	s := strconv.FormatFloat(float64(value), 'f', e.Precision(), 32)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
