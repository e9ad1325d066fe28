package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goobj/pkg/selection"
	"github.com/spf13/cobra"
)

var (
	removeVertices string
	removeFaces    string
	removeOutput   string
)

var removeCmd = &cobra.Command{
	Use:   "remove [file]",
	Short: "Remove vertices or faces from an OBJ file",
	Long: `Remove mesh elements by index. Faces referencing a removed vertex are
removed as well, and surviving faces are renumbered to stay consistent.

Selections are 0-based; ` + selection.FormatDescription() + ".",
	Args: cobra.ExactArgs(1),
	Run:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().StringVar(&removeVertices, "vertices", "", "Vertex indices to remove (e.g. 1,3,5-10)")
	removeCmd.Flags().StringVar(&removeFaces, "faces", "", "Face indices to remove (e.g. 0,2-4)")
	removeCmd.Flags().StringVarP(&removeOutput, "output", "o", "", "Output file (default: overwrite input)")

	removeCmd.MarkFlagsOneRequired("vertices", "faces")
}

func runRemove(cmd *cobra.Command, args []string) {
	filename := args[0]

	registry := newRegistry(nil)

	m, err := registry.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	// Faces go first so --faces indices refer to the file as loaded,
	// before vertex removal can drop additional faces.
	if removeFaces != "" {
		indices, err := selection.Parse(removeFaces)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid face selection: %v\n", err)
			os.Exit(1)
		}
		removed := m.RemoveFacesByIndices(indices)
		fmt.Printf("Removed %d faces\n", removed)
	}

	if removeVertices != "" {
		indices, err := selection.Parse(removeVertices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid vertex selection: %v\n", err)
			os.Exit(1)
		}
		facesBefore := m.FaceCount()
		removed := m.RemoveVerticesByIndices(indices)
		fmt.Printf("Removed %d vertices and %d dependent faces\n",
			removed, facesBefore-m.FaceCount())
	}

	output := removeOutput
	if output == "" {
		output = filename
	}

	if err := registry.Save(m, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (%d vertices, %d faces)\n", output, m.VertexCount(), m.FaceCount())
}
