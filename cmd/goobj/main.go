package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/pkg/meshio"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goobj",
	Short: "A CLI tool for inspecting and editing Wavefront OBJ files",
	Long: `goobj is a command-line tool for working with Wavefront OBJ models.
It reads and writes the polygonal OBJ format and provides inspection,
validation, conversion, and element removal with consistent renumbering.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRegistry wires the built-in formats
// A nil encoder means default output settings
func newRegistry(encoder *obj.Encoder) *meshio.Registry {
	format := obj.NewFormat()
	format.Encoder = encoder

	registry := meshio.NewRegistry()
	registry.RegisterReader(format)
	registry.RegisterWriter(format)
	return registry
}

// newInspectionRegistry reads through a decoder that keeps meshes with
// index violations loadable; the commands report those violations
func newInspectionRegistry() *meshio.Registry {
	format := obj.NewFormat()
	format.Decoder = &obj.Decoder{SkipValidation: true}

	registry := meshio.NewRegistry()
	registry.RegisterReader(format)
	return registry
}

// encoderFromConfig builds an encoder with the configured output settings
func encoderFromConfig(cfg *config.Config) *obj.Encoder {
	encoder := obj.NewEncoder()
	encoder.SetPrecision(cfg.Encode.Precision)
	encoder.WriteHeader = cfg.Encode.HeaderEnabled()
	encoder.WriteStatistics = cfg.Encode.StatisticsEnabled()
	encoder.Generator = fmt.Sprintf("goobj %s", version.GetVersion())
	return encoder
}
