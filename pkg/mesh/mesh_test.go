package mesh

import (
	"slices"
	"strings"
	"testing"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// buildMesh returns a mesh with five vertices and two triangles:
// one on vertices 0-1-2, one on vertices 2-3-4.
func buildMesh(t *testing.T) *Mesh {
	t.Helper()
	m := New()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(3, 0, 0))
	m.AddVertex(geometry.NewVector3(4, 0, 0))
	if _, err := m.AddTriangle(0, 1, 2); err != nil {
		t.Fatalf("AddTriangle failed: %v", err)
	}
	if _, err := m.AddTriangle(2, 3, 4); err != nil {
		t.Fatalf("AddTriangle failed: %v", err)
	}
	return m
}

func TestAddReturnsSequentialIndices(t *testing.T) {
	m := New()

	if idx := m.AddVertex(geometry.NewVector3(1, 2, 3)); idx != 0 {
		t.Errorf("first vertex index: expected 0, got %d", idx)
	}
	if idx := m.AddVertex(geometry.NewVector3(4, 5, 6)); idx != 1 {
		t.Errorf("second vertex index: expected 1, got %d", idx)
	}
	if idx := m.AddTexCoord(geometry.NewVector2(0.5, 0.5)); idx != 0 {
		t.Errorf("first texture coordinate index: expected 0, got %d", idx)
	}
	if idx := m.AddNormal(geometry.NewVector3(0, 0, 1)); idx != 0 {
		t.Errorf("first normal index: expected 0, got %d", idx)
	}

	if m.VertexCount() != 2 || m.TexCoordCount() != 1 || m.NormalCount() != 1 {
		t.Errorf("counts failed: %d vertices, %d texcoords, %d normals",
			m.VertexCount(), m.TexCoordCount(), m.NormalCount())
	}
}

func TestEmptyMeshPredicates(t *testing.T) {
	m := New()

	if !m.IsEmpty() {
		t.Error("IsEmpty failed for fresh mesh")
	}
	if m.HasTexCoords() || m.HasNormals() || m.HasFaces() {
		t.Error("fresh mesh reports content")
	}
	if m.Modified() {
		t.Error("fresh mesh reports modified")
	}

	m.AddVertex(geometry.Vector3{})
	if m.IsEmpty() {
		t.Error("IsEmpty failed after AddVertex")
	}
	if !m.Modified() {
		t.Error("AddVertex did not set the modified flag")
	}
}

func TestRemoveVerticesRenumbersFaces(t *testing.T) {
	m := buildMesh(t)

	// Removing vertex 1 kills the 0-1-2 triangle; the 2-3-4 triangle
	// survives and must keep addressing the same vertex values.
	removed := m.RemoveVerticesByIndices([]int{1})
	if removed != 1 {
		t.Fatalf("expected 1 vertex removed, got %d", removed)
	}
	if m.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices left, got %d", m.VertexCount())
	}
	if m.FaceCount() != 1 {
		t.Fatalf("expected 1 face left, got %d", m.FaceCount())
	}

	survivor := m.Faces()[0]
	if got := survivor.VertexIndices(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("surviving face indices: expected [1 2 3], got %v", got)
	}
	for i, want := range []float32{2, 3, 4} {
		v := m.Vertices()[survivor.VertexIndices()[i]]
		if v.X != want {
			t.Errorf("surviving face vertex %d: expected X=%v, got %v", i, want, v.X)
		}
	}

	if violations := m.Validate(); len(violations) != 0 {
		t.Errorf("mesh invalid after removal: %v", violations)
	}
}

func TestRemoveVerticesDropsDependentFaces(t *testing.T) {
	m := buildMesh(t)

	// Vertex 2 is shared by both triangles.
	if removed := m.RemoveVerticesByIndices([]int{2}); removed != 1 {
		t.Fatalf("expected 1 vertex removed, got %d", removed)
	}
	if m.FaceCount() != 0 {
		t.Errorf("expected all faces dropped, got %d", m.FaceCount())
	}
	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices left, got %d", m.VertexCount())
	}
}

func TestRemoveVerticesIgnoresBadIndices(t *testing.T) {
	m := buildMesh(t)
	m.ClearModified()

	if removed := m.RemoveVerticesByIndices([]int{-1, 5, 99}); removed != 0 {
		t.Errorf("expected 0 removed, got %d", removed)
	}
	if removed := m.RemoveVerticesByIndices(nil); removed != 0 {
		t.Errorf("expected 0 removed for nil input, got %d", removed)
	}
	if m.VertexCount() != 5 || m.FaceCount() != 2 {
		t.Error("no-op removal changed the mesh")
	}
	if m.Modified() {
		t.Error("no-op removal set the modified flag")
	}

	// Duplicates count once.
	if removed := m.RemoveVerticesByIndices([]int{4, 4, 4}); removed != 1 {
		t.Errorf("expected 1 removed for duplicate input, got %d", removed)
	}
}

func TestRemoveAllVertices(t *testing.T) {
	m := buildMesh(t)

	if removed := m.RemoveVerticesByIndices([]int{0, 1, 2, 3, 4}); removed != 5 {
		t.Fatalf("expected 5 removed, got %d", removed)
	}
	if !m.IsEmpty() || m.FaceCount() != 0 {
		t.Error("mesh not empty after removing every vertex")
	}
}

func TestRemoveFacesByIndices(t *testing.T) {
	m := buildMesh(t)

	if removed := m.RemoveFacesByIndices([]int{0, 0, 7}); removed != 1 {
		t.Fatalf("expected 1 face removed, got %d", removed)
	}
	if m.FaceCount() != 1 {
		t.Fatalf("expected 1 face left, got %d", m.FaceCount())
	}
	if got := m.Faces()[0].VertexIndices(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("wrong face removed: remaining %v", got)
	}

	// Vertex store is untouched even though vertices 0 and 1 are now
	// unreferenced.
	if m.VertexCount() != 5 {
		t.Errorf("face removal touched the vertex store: %d vertices", m.VertexCount())
	}
}

func TestRemoveTexCoordsLeavesFacesStale(t *testing.T) {
	m := buildMesh(t)
	m.AddTexCoord(geometry.NewVector2(0, 0))
	m.AddTexCoord(geometry.NewVector2(1, 0))
	m.AddTexCoord(geometry.NewVector2(1, 1))
	m.Faces()[0].SetTexCoordIndices([]int{0, 1, 2})

	if removed := m.RemoveTexCoordsByIndices([]int{2}); removed != 1 {
		t.Fatalf("expected 1 texture coordinate removed, got %d", removed)
	}
	if m.TexCoordCount() != 2 {
		t.Fatalf("expected 2 texture coordinates left, got %d", m.TexCoordCount())
	}

	// References are intentionally not rewritten; the mesh is now invalid.
	if got := m.Faces()[0].TexCoordIndices(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("face texture indices rewritten: %v", got)
	}
	if m.IsValid() {
		t.Error("expected stale texture reference to fail validation")
	}
}

func TestRemoveNormalsByIndices(t *testing.T) {
	m := New()
	m.AddNormal(geometry.NewVector3(1, 0, 0))
	m.AddNormal(geometry.NewVector3(0, 1, 0))
	m.AddNormal(geometry.NewVector3(0, 0, 1))

	if removed := m.RemoveNormalsByIndices([]int{0, 2}); removed != 2 {
		t.Fatalf("expected 2 normals removed, got %d", removed)
	}
	if m.NormalCount() != 1 {
		t.Fatalf("expected 1 normal left, got %d", m.NormalCount())
	}
	if !m.Normals()[0].Equal(geometry.NewVector3(0, 1, 0)) {
		t.Errorf("wrong normal kept: %v", m.Normals()[0])
	}
}

func TestValidate(t *testing.T) {
	m := buildMesh(t)
	if violations := m.Validate(); len(violations) != 0 {
		t.Fatalf("expected valid mesh, got %v", violations)
	}

	f := mustFace(t, 0, 1, 7)
	f.SetTexCoordIndices([]int{0})
	f.SetNormalIndices([]int{3})
	m.AddFace(f)

	violations := m.Validate()
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(violations), violations)
	}
	if !strings.Contains(violations[0], "face 2") || !strings.Contains(violations[0], "vertex index 7") {
		t.Errorf("vertex violation malformed: %q", violations[0])
	}
	if !strings.Contains(violations[1], "texture coordinate index 0") {
		t.Errorf("texture violation malformed: %q", violations[1])
	}
	if !strings.Contains(violations[2], "normal index 3") {
		t.Errorf("normal violation malformed: %q", violations[2])
	}
	if m.IsValid() {
		t.Error("IsValid failed for broken mesh")
	}

	// Validate must never repair or mutate.
	if m.FaceCount() != 3 {
		t.Error("Validate changed the face count")
	}
}

func TestBoundingBox(t *testing.T) {
	m := New()
	if _, ok := m.BoundingBox(); ok {
		t.Error("BoundingBox of empty mesh: expected ok=false")
	}

	m.AddVertex(geometry.NewVector3(-1, 2, 0))
	m.AddVertex(geometry.NewVector3(3, -4, 5))

	bbox, ok := m.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox failed: expected ok=true")
	}
	if bbox.Min != geometry.NewVector3(-1, -4, 0) || bbox.Max != geometry.NewVector3(3, 2, 5) {
		t.Errorf("BoundingBox failed: min %v, max %v", bbox.Min, bbox.Max)
	}
}

func TestCentroid(t *testing.T) {
	m := New()
	if _, ok := m.Centroid(); ok {
		t.Error("Centroid of empty mesh: expected ok=false")
	}

	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 4, 6))

	centroid, ok := m.Centroid()
	if !ok {
		t.Fatal("Centroid failed: expected ok=true")
	}
	if !centroid.Equal(geometry.NewVector3(1, 2, 3)) {
		t.Errorf("Centroid failed: got %v", centroid)
	}
}

func TestMeshCopy(t *testing.T) {
	m := buildMesh(t)
	m.SetName("pyramid")
	m.AddTexCoord(geometry.NewVector2(0.5, 0.5))

	c := m.Copy()
	if c.Name() != "pyramid" {
		t.Errorf("Copy failed: name %q", c.Name())
	}
	if c.VertexCount() != m.VertexCount() || c.FaceCount() != m.FaceCount() {
		t.Fatal("Copy failed: counts differ")
	}
	for i, f := range c.Faces() {
		if !f.Equal(m.Faces()[i]) {
			t.Fatalf("Copy failed: face %d differs", i)
		}
	}

	// The clone must not share storage.
	m.RemoveVerticesByIndices([]int{0})
	if c.VertexCount() != 5 || c.FaceCount() != 2 {
		t.Error("Copy failed: clone changed with the original")
	}
	m.Faces()[0].SetVertexIndices([]int{0, 1, 2})
	c.Faces()[0].RemapVertexIndices(map[int]int{})
	if m.Faces()[0].VertexCount() == 0 {
		t.Error("Copy failed: face storage shared")
	}
}

func TestMeshClear(t *testing.T) {
	m := buildMesh(t)
	m.SetName("scratch")
	m.Clear()

	if !m.IsEmpty() || m.HasFaces() {
		t.Error("Clear failed: content left")
	}
	if m.Name() != "scratch" {
		t.Error("Clear failed: name dropped")
	}
	if !m.Modified() {
		t.Error("Clear did not set the modified flag")
	}
}

func TestAddTriangleRejectsNegative(t *testing.T) {
	m := New()
	if _, err := m.AddTriangle(0, 1, -2); err == nil {
		t.Error("AddTriangle accepted a negative index")
	}
	if m.HasFaces() {
		t.Error("failed AddTriangle still appended a face")
	}
}
