// Package mesh implements an in-memory polygonal mesh built from indexed
// vertex, texture-coordinate and normal stores. Faces reference the stores
// by position only; the removal operations keep those references consistent
// by remapping surviving faces after every vertex deletion.
package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
)

// MinVertices is the smallest number of vertex indices a face may hold.
const MinVertices = 3

var (
	// ErrTooFewVertices is returned when a face would end up with fewer
	// than MinVertices vertex indices.
	ErrTooFewVertices = errors.New("face requires at least 3 vertex indices")

	// ErrNegativeIndex is returned when a face index is negative.
	ErrNegativeIndex = errors.New("face index must not be negative")
)

// Face is a single polygon of a mesh. The vertex index list always holds at
// least MinVertices entries; the texture-coordinate and normal lists may be
// empty. The optional lists are not required to match the vertex arity.
type Face struct {
	vertexIndices   []int
	texCoordIndices []int
	normalIndices   []int
}

// NewFace creates a face from 0-based vertex indices
func NewFace(vertexIndices []int) (*Face, error) {
	f := &Face{}
	if err := f.SetVertexIndices(vertexIndices); err != nil {
		return nil, err
	}
	return f, nil
}

// NewTriangle creates a three-vertex face
func NewTriangle(v0, v1, v2 int) (*Face, error) {
	return NewFace([]int{v0, v1, v2})
}

// NewQuad creates a four-vertex face
func NewQuad(v0, v1, v2, v3 int) (*Face, error) {
	return NewFace([]int{v0, v1, v2, v3})
}

func checkIndices(indices []int) error {
	for i, idx := range indices {
		if idx < 0 {
			return fmt.Errorf("%w: %d at position %d", ErrNegativeIndex, idx, i)
		}
	}
	return nil
}

// SetVertexIndices replaces the vertex index list. The list must hold at
// least MinVertices non-negative entries.
func (f *Face) SetVertexIndices(indices []int) error {
	if len(indices) < MinVertices {
		return fmt.Errorf("%w: got %d", ErrTooFewVertices, len(indices))
	}
	if err := checkIndices(indices); err != nil {
		return err
	}
	f.vertexIndices = slices.Clone(indices)
	return nil
}

// SetTexCoordIndices replaces the texture-coordinate index list. An empty
// list marks the face as having no texture coordinates.
func (f *Face) SetTexCoordIndices(indices []int) error {
	if err := checkIndices(indices); err != nil {
		return err
	}
	f.texCoordIndices = slices.Clone(indices)
	return nil
}

// SetNormalIndices replaces the normal index list. An empty list marks the
// face as having no normals.
func (f *Face) SetNormalIndices(indices []int) error {
	if err := checkIndices(indices); err != nil {
		return err
	}
	f.normalIndices = slices.Clone(indices)
	return nil
}

// ClearTexCoords drops the texture-coordinate index list
func (f *Face) ClearTexCoords() {
	f.texCoordIndices = nil
}

// ClearNormals drops the normal index list
func (f *Face) ClearNormals() {
	f.normalIndices = nil
}

// VertexIndices returns the vertex index list. Callers must not modify it.
func (f *Face) VertexIndices() []int {
	return f.vertexIndices
}

// TexCoordIndices returns the texture-coordinate index list. Callers must
// not modify it.
func (f *Face) TexCoordIndices() []int {
	return f.texCoordIndices
}

// NormalIndices returns the normal index list. Callers must not modify it.
func (f *Face) NormalIndices() []int {
	return f.normalIndices
}

// VertexCount returns the number of vertex indices
func (f *Face) VertexCount() int {
	return len(f.vertexIndices)
}

// HasTexCoords reports whether the face carries texture coordinates
func (f *Face) HasTexCoords() bool {
	return len(f.texCoordIndices) > 0
}

// HasNormals reports whether the face carries normals
func (f *Face) HasNormals() bool {
	return len(f.normalIndices) > 0
}

// IsTriangle reports whether the face has exactly three vertices
func (f *Face) IsTriangle() bool {
	return len(f.vertexIndices) == 3
}

// IsQuad reports whether the face has exactly four vertices
func (f *Face) IsQuad() bool {
	return len(f.vertexIndices) == 4
}

// ContainsVertexIndex reports whether the face references the given vertex
func (f *Face) ContainsVertexIndex(index int) bool {
	return slices.Contains(f.vertexIndices, index)
}

// RemapVertexIndices rewrites every vertex index through the mapping.
// Indices missing from the mapping are dropped; the caller is responsible
// for removing faces whose vertices were deleted before remapping the rest.
func (f *Face) RemapVertexIndices(mapping map[int]int) {
	remapped := f.vertexIndices[:0]
	for _, idx := range f.vertexIndices {
		if newIdx, ok := mapping[idx]; ok {
			remapped = append(remapped, newIdx)
		}
	}
	f.vertexIndices = remapped
}

// OffsetIndices shifts every index by the given deltas, one per index kind.
// Useful when concatenating meshes whose stores are appended back to back.
func (f *Face) OffsetIndices(deltaVertex, deltaTexCoord, deltaNormal int) {
	for i := range f.vertexIndices {
		f.vertexIndices[i] += deltaVertex
	}
	for i := range f.texCoordIndices {
		f.texCoordIndices[i] += deltaTexCoord
	}
	for i := range f.normalIndices {
		f.normalIndices[i] += deltaNormal
	}
}

// Equal reports whether two faces reference the same indices in the same
// order across all three lists
func (f *Face) Equal(other *Face) bool {
	if other == nil {
		return false
	}
	return slices.Equal(f.vertexIndices, other.vertexIndices) &&
		slices.Equal(f.texCoordIndices, other.texCoordIndices) &&
		slices.Equal(f.normalIndices, other.normalIndices)
}

// Hash returns a content hash of the face. Faces that compare Equal hash to
// the same value.
func (f *Face) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeList := func(indices []int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(indices)))
		h.Write(buf[:])
		for _, idx := range indices {
			binary.LittleEndian.PutUint64(buf[:], uint64(idx))
			h.Write(buf[:])
		}
	}
	writeList(f.vertexIndices)
	writeList(f.texCoordIndices)
	writeList(f.normalIndices)
	return h.Sum64()
}

// Copy returns an independent clone of the face
func (f *Face) Copy() *Face {
	return &Face{
		vertexIndices:   slices.Clone(f.vertexIndices),
		texCoordIndices: slices.Clone(f.texCoordIndices),
		normalIndices:   slices.Clone(f.normalIndices),
	}
}

func (f *Face) referencesAny(doomed map[int]struct{}) bool {
	for _, idx := range f.vertexIndices {
		if _, ok := doomed[idx]; ok {
			return true
		}
	}
	return false
}
