package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/vexel-dev/vexel/internal/config"
	"github.com/vexel-dev/vexel/pkg/dom"
	"github.com/vexel-dev/vexel/pkg/markup"
	"github.com/vexel-dev/vexel/pkg/raster"
	_ "github.com/vexel-dev/vexel/pkg/shape"
)

func renderCmd() *cobra.Command {
	var (
		output string
		width  int
		height int
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Rasterize a document to PNG",
		Long: `Parse an SVG document and rasterize it to a PNG image.

The output size comes from the document's width and height unless
overridden with --width and --height. Pass "-" to read from stdin.

Examples:
  vexel render drawing.svg
  vexel render drawing.svg -o out.png --width=800 --height=600
  cat drawing.svg | vexel render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], output, width, height, strict)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default from vexel.json or out.png)")
	cmd.Flags().IntVar(&width, "width", 0, "Override output width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Override output height in pixels")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported content instead of skipping it")

	return cmd
}

func runRender(input, output string, width, height int, strict bool) error {
	// Config is optional for one-shot rendering.
	if cfg, err := config.LoadFromWorkingDir(); err == nil {
		if output == "" {
			output = cfg.Render.Output
		}
		if width == 0 {
			width = cfg.Render.Width
		}
		if height == 0 {
			height = cfg.Render.Height
		}
	}
	if output == "" {
		output = config.DefaultOutput
	}

	doc, err := parseInput(input, strict)
	if err != nil {
		return err
	}

	rendered, err := renderDoc(doc, width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := raster.EncodePNG(f, rendered); err != nil {
		return err
	}

	b := rendered.Bounds()
	success("rendered %s (%dx%d)", output, b.Dx(), b.Dy())
	return nil
}

func renderDoc(doc *dom.Document, width, height int) (*image.RGBA, error) {
	if width > 0 && height > 0 {
		return raster.RenderSize(doc, width, height)
	}
	if width > 0 || height > 0 {
		return nil, fmt.Errorf("both --width and --height are required to override the size")
	}
	return raster.Render(doc)
}

// parseInput reads a document from a file path or stdin ("-").
func parseInput(input string, strict bool) (*dom.Document, error) {
	mode := markup.WarnErrorMode
	if strict {
		mode = markup.StrictErrorMode
	}
	opts := dom.ReadOptions{Mode: mode}

	if input == "-" {
		return dom.ReadDocument(os.Stdin, opts)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.ReadDocument(f, opts)
}
