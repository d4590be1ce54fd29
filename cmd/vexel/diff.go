package main

import (
	"fmt"
	"os"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/vexel-dev/vexel/pkg/dom"
	_ "github.com/vexel-dev/vexel/pkg/shape"
)

func diffCmd() *cobra.Command {
	var (
		strict bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "diff <file> <file>",
		Short: "Compare two documents by canonical form",
		Long: `Parse two SVG documents and compare their canonical serializations.

Formatting differences that do not change the document, such as
attribute order or explicit default values, compare equal. The exit
code is 1 when the documents differ.

Examples:
  vexel diff a.svg b.svg
  vexel diff -q a.svg b.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], strict, quiet)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unsupported content instead of skipping it")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diff output, report only via exit code")

	return cmd
}

func runDiff(pathA, pathB string, strict, quiet bool) error {
	a, err := canonicalForm(pathA, strict)
	if err != nil {
		return fmt.Errorf("%s: %w", pathA, err)
	}
	b, err := canonicalForm(pathB, strict)
	if err != nil {
		return fmt.Errorf("%s: %w", pathB, err)
	}

	if a == b {
		if !quiet {
			info("documents are equivalent")
		}
		return nil
	}

	if !quiet {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(a, b, true)
		diffs = dmp.DiffCleanupSemantic(diffs)
		fmt.Print(dmp.DiffPrettyText(diffs))
	}
	os.Exit(1)
	return nil
}

// canonicalForm parses a document and reserializes it pretty-printed
// so line-based diffs stay readable.
func canonicalForm(input string, strict bool) (string, error) {
	doc, err := parseInput(input, strict)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := dom.Write(doc, &sb, dom.WriteOptions{Pretty: true}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
