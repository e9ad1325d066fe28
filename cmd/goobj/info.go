package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ file",
	Long:  "Show comprehensive information including element counts, face breakdown, dimensions, and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := newInspectionRegistry().Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OBJ file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(m)

	fmt.Println("OBJ File Information")
	fmt.Println("====================")
	if m.Name() != "" {
		fmt.Printf("Name: %s\n", m.Name())
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Texture coords: %d\n", result.TexCoordCount)
	fmt.Printf("  Normals: %d\n", result.NormalCount)
	fmt.Printf("  Faces: %d (%d triangles, %d quads, %d larger polygons)\n",
		result.FaceCount, result.TriangleCount, result.QuadCount, result.PolygonCount)
	fmt.Printf("  Edges: %d\n\n", result.EdgeCount)

	if result.HasBounds {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
		fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
		fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
		fmt.Printf("  Diagonal: %s\n", analysis.FormatMeasurement(result.Diagonal, "units"))
		fmt.Printf("  Centroid: %s\n\n", analysis.FormatVector(result.Centroid))
	}

	if result.EdgeCount > 0 {
		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)
	}

	if result.Valid {
		fmt.Println("Validation: OK")
	} else {
		fmt.Printf("Validation: %d violations (run goobj validate for details)\n", result.ViolationCount)
	}
}
