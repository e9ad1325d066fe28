package obj

import (
	"io"

	"github.com/philipparndt/goobj/pkg/mesh"
)

// Format adapts the OBJ codec to the meshio reader and writer interfaces
// so a registry can dispatch on the file extension.
type Format struct {
	// Encoder configures how meshes are written. A nil encoder falls
	// back to default settings.
	Encoder *Encoder
	// Decoder configures how meshes are read. A nil decoder validates
	// index references after parsing.
	Decoder *Decoder
}

// NewFormat creates a format adapter with a default encoder
func NewFormat() *Format {
	return &Format{Encoder: NewEncoder()}
}

// Read decodes a mesh from OBJ text
func (f *Format) Read(r io.Reader) (*mesh.Mesh, error) {
	dec := f.Decoder
	if dec == nil {
		dec = &Decoder{}
	}
	return dec.Decode(r)
}

// Write encodes a mesh as OBJ text
func (f *Format) Write(w io.Writer, m *mesh.Mesh) error {
	enc := f.Encoder
	if enc == nil {
		enc = NewEncoder()
	}
	return enc.Encode(w, m)
}

// Extension returns the file extension the format is registered under
func (f *Format) Extension() string {
	return "obj"
}

// FormatName returns the human-readable format name
func (f *Format) FormatName() string {
	return "Wavefront OBJ"
}
