// wiredraw is a circuit-style vector drawing tool: components with pins,
// wires that anchor to them, per-wire undo history, and JSON persistence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wiredraw/config"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "wiredraw",
		Short: "A connectivity-aware vector diagram editor",
		Long: "wiredraw edits circuit-style drawings: wires anchor to component\n" +
			"pins, follow them when components move, and carry per-wire undo\n" +
			"history. Drawings are stored as JSON documents.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "wiredraw.yaml", "path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newFmtCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configured settings file.
func loadConfig() (config.Config, error) {
	return config.Load(cfgPath)
}

// newLogger builds the process logger. Diagnostics go to stderr so they
// never corrupt terminal drawing or piped output.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
