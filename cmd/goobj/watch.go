package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/watcher"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var watchConfigPath string

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch an OBJ file and revalidate it on change",
	Long:  "Monitor a file for changes and print an updated validation report whenever it is written.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchConfigPath, "config", "c", "goobj.yml", "Configuration file")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.LoadOrDefault(watchConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	reportValidation(filename)

	w, err := watcher.New(filename, cfg.Watch.Debounce())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer w.Close()

	w.Start(func(path string) {
		fmt.Printf("\n%s changed at %s\n", path, time.Now().Format("15:04:05"))
		reportValidation(path)
	})

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("\nWatching %s for changes. Press Ctrl+C to stop.\n", w.Path())
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("\nStopped watching.")
}

// reportValidation prints a one-line summary, keeping the watch loop alive
// on load errors
func reportValidation(filename string) {
	m, err := newInspectionRegistry().Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	result := analysis.Analyze(m)
	if result.Valid {
		fmt.Printf("%s: %d vertices, %d faces, valid\n", filename, result.VertexCount, result.FaceCount)
	} else {
		fmt.Printf("%s: %d vertices, %d faces, %d violations\n",
			filename, result.VertexCount, result.FaceCount, result.ViolationCount)
	}
}
