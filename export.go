package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wiredraw/document"
	"wiredraw/render/img"
)

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render a drawing to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with .png extension)")
	return cmd
}

func runExport(path, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	for _, id := range doc.Unresolved {
		log.Warn("dangling terminal reference", zap.String("terminal", id))
	}

	surface := img.New(cfg.ExportWidth, cfg.ExportHeight)
	for _, c := range doc.Components {
		c.Draw(surface)
	}
	for _, w := range doc.Wires {
		w.Draw(surface)
	}

	if output == "" {
		output = strings.TrimSuffix(path, ".json") + ".png"
	}
	if err := surface.SavePNG(output); err != nil {
		return err
	}
	log.Info("exported drawing",
		zap.String("input", path),
		zap.String("output", output),
		zap.Int("components", len(doc.Components)),
		zap.Int("wires", len(doc.Wires)))
	return nil
}
