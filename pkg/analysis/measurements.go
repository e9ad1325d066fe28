package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// Result contains various measurements of a mesh
type Result struct {
	VertexCount   int
	TexCoordCount int
	NormalCount   int
	FaceCount     int
	EdgeCount     int

	TriangleCount int
	QuadCount     int
	PolygonCount  int

	BoundingBox geometry.BoundingBox
	HasBounds   bool
	Dimensions  geometry.Vector3
	Diagonal    float32
	Centroid    geometry.Vector3

	MinEdgeLength float32
	MaxEdgeLength float32
	AvgEdgeLength float32

	Valid          bool
	ViolationCount int
}

// Analyze performs comprehensive analysis on a mesh
func Analyze(m *mesh.Mesh) *Result {
	result := &Result{
		VertexCount:   m.VertexCount(),
		TexCoordCount: m.TexCoordCount(),
		NormalCount:   m.NormalCount(),
		FaceCount:     m.FaceCount(),
	}

	violations := m.Validate()
	result.Valid = len(violations) == 0
	result.ViolationCount = len(violations)

	if box, ok := m.BoundingBox(); ok {
		result.BoundingBox = box
		result.HasBounds = true
		result.Dimensions = box.Size()
		result.Diagonal = box.Diagonal()
	}
	if centroid, ok := m.Centroid(); ok {
		result.Centroid = centroid
	}

	vertices := m.Vertices()
	measured := 0
	minLength := float32(math.MaxFloat32)
	maxLength := float32(0)
	totalLength := float32(0)

	for _, face := range m.Faces() {
		arity := face.VertexCount()
		result.EdgeCount += arity

		switch {
		case face.IsTriangle():
			result.TriangleCount++
		case face.IsQuad():
			result.QuadCount++
		default:
			result.PolygonCount++
		}

		// Edge lengths are only measured where both endpoints resolve,
		// so an invalid mesh can still be analyzed.
		indices := face.VertexIndices()
		for i, a := range indices {
			b := indices[(i+1)%arity]
			if a < 0 || a >= len(vertices) || b < 0 || b >= len(vertices) {
				continue
			}
			length := vertices[a].Distance(vertices[b])
			measured++
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	if measured > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float32(measured)
	}

	return result
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float32, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
