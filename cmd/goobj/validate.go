package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the referential integrity of an OBJ file",
	Long:  "Verify that every face references existing vertices, texture coordinates, and normals.",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := newInspectionRegistry().Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	violations := m.Validate()
	if len(violations) > 0 {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n", filename)
		for _, violation := range violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", violation)
		}
		os.Exit(1)
	}

	fmt.Printf("%s is valid (%d vertices, %d faces)\n", filename, m.VertexCount(), m.FaceCount())
}
