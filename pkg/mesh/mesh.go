package mesh

import (
	"fmt"
	"slices"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Mesh is an indexed polygonal mesh. The three element stores are flat
// slices addressed 0-based by the faces; deleting store elements goes
// through the RemoveXxxByIndices operations so surviving faces stay
// consistent.
type Mesh struct {
	name      string
	vertices  []geometry.Vector3
	texCoords []geometry.Vector2
	normals   []geometry.Vector3
	faces     []*Face
	modified  bool
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{}
}

// Name returns the mesh name
func (m *Mesh) Name() string {
	return m.name
}

// SetName renames the mesh
func (m *Mesh) SetName(name string) {
	m.name = name
	m.modified = true
}

// Vertices returns the vertex store. Callers must not modify it.
func (m *Mesh) Vertices() []geometry.Vector3 {
	return m.vertices
}

// TexCoords returns the texture-coordinate store. Callers must not modify it.
func (m *Mesh) TexCoords() []geometry.Vector2 {
	return m.texCoords
}

// Normals returns the normal store. Callers must not modify it.
func (m *Mesh) Normals() []geometry.Vector3 {
	return m.normals
}

// Faces returns the face list. Callers must not modify it.
func (m *Mesh) Faces() []*Face {
	return m.faces
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TexCoordCount returns the number of texture coordinates
func (m *Mesh) TexCoordCount() int {
	return len(m.texCoords)
}

// NormalCount returns the number of normals
func (m *Mesh) NormalCount() int {
	return len(m.normals)
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// IsEmpty reports whether the mesh has no vertices
func (m *Mesh) IsEmpty() bool {
	return len(m.vertices) == 0
}

// HasTexCoords reports whether the texture-coordinate store is non-empty
func (m *Mesh) HasTexCoords() bool {
	return len(m.texCoords) > 0
}

// HasNormals reports whether the normal store is non-empty
func (m *Mesh) HasNormals() bool {
	return len(m.normals) > 0
}

// HasFaces reports whether the mesh has any faces
func (m *Mesh) HasFaces() bool {
	return len(m.faces) > 0
}

// Modified reports whether the mesh changed since the flag was last cleared
func (m *Mesh) Modified() bool {
	return m.modified
}

// ClearModified resets the modification flag
func (m *Mesh) ClearModified() {
	m.modified = false
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.vertices = append(m.vertices, v)
	m.modified = true
	return len(m.vertices) - 1
}

// AddTexCoord appends a texture coordinate and returns its index
func (m *Mesh) AddTexCoord(tc geometry.Vector2) int {
	m.texCoords = append(m.texCoords, tc)
	m.modified = true
	return len(m.texCoords) - 1
}

// AddNormal appends a normal and returns its index
func (m *Mesh) AddNormal(n geometry.Vector3) int {
	m.normals = append(m.normals, n)
	m.modified = true
	return len(m.normals) - 1
}

// AddFace appends a face and returns its index. The face must not be nil.
func (m *Mesh) AddFace(f *Face) int {
	if f == nil {
		panic("mesh: AddFace called with nil face")
	}
	m.faces = append(m.faces, f)
	m.modified = true
	return len(m.faces) - 1
}

// AddTriangle appends a three-vertex face and returns its index
func (m *Mesh) AddTriangle(v0, v1, v2 int) (int, error) {
	f, err := NewTriangle(v0, v1, v2)
	if err != nil {
		return -1, err
	}
	return m.AddFace(f), nil
}

// RemoveVerticesByIndices deletes the given vertices and every face that
// references one of them, then renumbers the surviving faces so they keep
// addressing the same vertex values. Out-of-range and duplicate entries are
// ignored. Returns the number of vertices removed.
func (m *Mesh) RemoveVerticesByIndices(indices []int) int {
	doomed := uniqueValidIndices(indices, len(m.vertices))
	if len(doomed) == 0 {
		return 0
	}

	// Faces first: a face losing any vertex goes wholesale, and what is
	// left must be remapped before the store shrinks underneath it.
	kept := m.faces[:0]
	for _, f := range m.faces {
		if !f.referencesAny(doomed) {
			kept = append(kept, f)
		}
	}
	clear(m.faces[len(kept):])
	m.faces = kept

	mapping := buildIndexMapping(len(m.vertices), doomed)
	for _, f := range m.faces {
		f.RemapVertexIndices(mapping)
	}

	m.vertices = dropIndices(m.vertices, doomed)
	m.modified = true
	return len(doomed)
}

// RemoveFacesByIndices deletes the given faces. The vertex, texture and
// normal stores are left untouched even when entries become unreferenced.
// Out-of-range and duplicate entries are ignored. Returns the number of
// faces removed.
func (m *Mesh) RemoveFacesByIndices(indices []int) int {
	doomed := uniqueValidIndices(indices, len(m.faces))
	if len(doomed) == 0 {
		return 0
	}
	m.faces = dropIndices(m.faces, doomed)
	m.modified = true
	return len(doomed)
}

// RemoveTexCoordsByIndices deletes entries from the texture-coordinate
// store. Face index lists are NOT rewritten, so faces that referenced
// removed or later entries become stale until texture coordinates are
// reassigned. Returns the number of entries removed.
func (m *Mesh) RemoveTexCoordsByIndices(indices []int) int {
	doomed := uniqueValidIndices(indices, len(m.texCoords))
	if len(doomed) == 0 {
		return 0
	}
	m.texCoords = dropIndices(m.texCoords, doomed)
	m.modified = true
	return len(doomed)
}

// RemoveNormalsByIndices deletes entries from the normal store. Face index
// lists are NOT rewritten, same caveat as RemoveTexCoordsByIndices.
// Returns the number of entries removed.
func (m *Mesh) RemoveNormalsByIndices(indices []int) int {
	doomed := uniqueValidIndices(indices, len(m.normals))
	if len(doomed) == 0 {
		return 0
	}
	m.normals = dropIndices(m.normals, doomed)
	m.modified = true
	return len(doomed)
}

// Validate checks every face index against the current store sizes and
// returns one human-readable violation per bad index, in face order. An
// empty result means the mesh is consistent. Validate never modifies the
// mesh.
func (m *Mesh) Validate() []string {
	var violations []string
	for i, f := range m.faces {
		for _, idx := range f.VertexIndices() {
			if idx < 0 || idx >= len(m.vertices) {
				violations = append(violations, fmt.Sprintf(
					"face %d: vertex index %d out of range [0, %d)", i, idx, len(m.vertices)))
			}
		}
		for _, idx := range f.TexCoordIndices() {
			if idx < 0 || idx >= len(m.texCoords) {
				violations = append(violations, fmt.Sprintf(
					"face %d: texture coordinate index %d out of range [0, %d)", i, idx, len(m.texCoords)))
			}
		}
		for _, idx := range f.NormalIndices() {
			if idx < 0 || idx >= len(m.normals) {
				violations = append(violations, fmt.Sprintf(
					"face %d: normal index %d out of range [0, %d)", i, idx, len(m.normals)))
			}
		}
	}
	return violations
}

// IsValid reports whether Validate finds no violations
func (m *Mesh) IsValid() bool {
	return len(m.Validate()) == 0
}

// BoundingBox returns the axis-aligned bounds of all vertices. The second
// return value is false for a mesh without vertices.
func (m *Mesh) BoundingBox() (geometry.BoundingBox, bool) {
	if len(m.vertices) == 0 {
		return geometry.BoundingBox{}, false
	}
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v)
	}
	return bbox, true
}

// Centroid returns the arithmetic mean of all vertices. The second return
// value is false for a mesh without vertices.
func (m *Mesh) Centroid() (geometry.Vector3, bool) {
	if len(m.vertices) == 0 {
		return geometry.Vector3{}, false
	}
	var sum geometry.Vector3
	for _, v := range m.vertices {
		sum.AddInPlace(v)
	}
	return sum.Mul(1 / float32(len(m.vertices))), true
}

// Copy returns a deep clone sharing no storage with the original
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		name:      m.name,
		vertices:  slices.Clone(m.vertices),
		texCoords: slices.Clone(m.texCoords),
		normals:   slices.Clone(m.normals),
		faces:     make([]*Face, 0, len(m.faces)),
		modified:  m.modified,
	}
	for _, f := range m.faces {
		c.faces = append(c.faces, f.Copy())
	}
	return c
}

// Clear removes all vertices, texture coordinates, normals and faces. The
// name is kept.
func (m *Mesh) Clear() {
	m.vertices = nil
	m.texCoords = nil
	m.normals = nil
	m.faces = nil
	m.modified = true
}

// uniqueValidIndices keeps the entries addressing an existing element,
// dropping duplicates and everything out of [0, size).
func uniqueValidIndices(indices []int, size int) map[int]struct{} {
	doomed := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < size {
			doomed[idx] = struct{}{}
		}
	}
	return doomed
}

// buildIndexMapping maps every surviving old index to its position after
// the doomed entries are gone, preserving order.
func buildIndexMapping(size int, doomed map[int]struct{}) map[int]int {
	mapping := make(map[int]int, size-len(doomed))
	next := 0
	for old := 0; old < size; old++ {
		if _, ok := doomed[old]; ok {
			continue
		}
		mapping[old] = next
		next++
	}
	return mapping
}

// dropIndices compacts items by removing the doomed positions in one pass
func dropIndices[T any](items []T, doomed map[int]struct{}) []T {
	kept := items[:0]
	for i, item := range items {
		if _, ok := doomed[i]; !ok {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
