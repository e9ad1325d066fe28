// Package meshio dispatches mesh loading and saving to format codecs
// registered by file extension.
package meshio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/philipparndt/goobj/pkg/mesh"
)

// DefaultName is assigned to meshes loaded from files whose name yields
// no usable model name
const DefaultName = "Unnamed"

// Reader decodes a mesh from serialized form
type Reader interface {
	Read(r io.Reader) (*mesh.Mesh, error)
	Extension() string
	FormatName() string
}

// Writer encodes a mesh to serialized form
type Writer interface {
	Write(w io.Writer, m *mesh.Mesh) error
	Extension() string
	FormatName() string
}

// Registry maps file extensions to format codecs. The zero value is not
// usable; create one with NewRegistry and register formats explicitly.
type Registry struct {
	readers map[string]Reader
	writers map[string]Writer
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]Reader),
		writers: make(map[string]Writer),
	}
}

// RegisterReader makes the reader available for its extension, replacing
// any previous reader for the same extension
func (r *Registry) RegisterReader(reader Reader) {
	r.readers[normalizeExtension(reader.Extension())] = reader
}

// RegisterWriter makes the writer available for its extension, replacing
// any previous writer for the same extension
func (r *Registry) RegisterWriter(writer Writer) {
	r.writers[normalizeExtension(writer.Extension())] = writer
}

// CanRead reports whether a reader is registered for the path's extension
func (r *Registry) CanRead(path string) bool {
	_, ok := r.readers[extensionOf(path)]
	return ok
}

// CanWrite reports whether a writer is registered for the path's extension
func (r *Registry) CanWrite(path string) bool {
	_, ok := r.writers[extensionOf(path)]
	return ok
}

// ReadExtensions returns the registered input extensions, sorted
func (r *Registry) ReadExtensions() []string {
	return sortedKeys(r.readers)
}

// WriteExtensions returns the registered output extensions, sorted
func (r *Registry) WriteExtensions() []string {
	return sortedKeys(r.writers)
}

// Load reads a mesh from the file at path, dispatching on the file
// extension. The mesh is named after the file base name without its
// extension.
func (r *Registry) Load(path string) (*mesh.Mesh, error) {
	reader, ok := r.readers[extensionOf(path)]
	if !ok {
		return nil, fmt.Errorf("unsupported input format %q (supported: %s)",
			filepath.Ext(path), strings.Join(r.ReadExtensions(), ", "))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m, err := reader.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m.SetName(ModelName(path))
	m.ClearModified()
	return m, nil
}

// Save writes the mesh to the file at path, dispatching on the file
// extension, and clears the mesh's modification flag on success
func (r *Registry) Save(m *mesh.Mesh, path string) error {
	writer, ok := r.writers[extensionOf(path)]
	if !ok {
		return fmt.Errorf("unsupported output format %q (supported: %s)",
			filepath.Ext(path), strings.Join(r.WriteExtensions(), ", "))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := writer.Write(file, m); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	m.ClearModified()
	return nil
}

// ModelName derives a mesh name from a file path, using the base name
// without its extension
func ModelName(path string) string {
	base := filepath.Base(path)
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return DefaultName
	}
	return base
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func extensionOf(path string) string {
	return normalizeExtension(filepath.Ext(path))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
