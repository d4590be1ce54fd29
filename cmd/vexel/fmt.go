package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/vexel-dev/vexel/internal/config"
	"github.com/vexel-dev/vexel/pkg/dom"
	_ "github.com/vexel-dev/vexel/pkg/shape"
)

func fmtCmd() *cobra.Command {
	var (
		write   bool
		compact bool
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reserialize a document in canonical form",
		Long: `Parse an SVG document and print it back in canonical form.

Canonical form drops attributes that hold their default value, merges
redundant transforms, and orders attributes by declaration. Pass "-"
to read from stdin.

Examples:
  vexel fmt drawing.svg
  vexel fmt -w drawing.svg
  vexel fmt --compact drawing.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0], write, compact, strict)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result back to the source file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "Emit compact output without indentation")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported content instead of skipping it")

	return cmd
}

func runFmt(input string, write, compact, strict bool) error {
	pretty := !compact
	indent := "  "
	if cfg, err := config.LoadFromWorkingDir(); err == nil {
		if !compact {
			pretty = cfg.Format.Pretty
		}
		indent = cfg.Format.Indent
	}

	doc, err := parseInput(input, strict)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := dom.WriteOptions{Pretty: pretty, Indent: indent}
	if err := dom.Write(doc, &buf, opts); err != nil {
		return err
	}
	buf.WriteByte('\n')

	if write && input != "-" {
		return os.WriteFile(input, buf.Bytes(), 0644)
	}
	_, err = os.Stdout.Write(buf.Bytes())
	return err
}
