package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bymlkit/byml/printer"
	"github.com/joshuapare/bymlkit/pkg/byml"
)

var (
	dumpMaxDepth int
	dumpOffsets  bool
	dumpNoTypes  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpMaxDepth, "max-depth", 0, "Maximum dictionary depth (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpOffsets, "offsets", false, "Show entry offsets")
	cmd.Flags().BoolVar(&dumpNoTypes, "no-types", false, "Hide entry kinds")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the dictionary tree",
		Long: `The dump command prints every reachable entry of a BYML file. Dictionaries
referenced from several places are printed once and marked as shared after that.

Example:
  bymlctl dump Player.byml
  bymlctl dump Player.byml.zs --max-depth 2
  bymlctl dump Player.byml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), args)
		},
	}
	return cmd
}

func runDump(ctx context.Context, args []string) error {
	path := args[0]
	if ctx == nil {
		ctx = context.Background()
	}

	printVerbose("Opening file: %s\n", path)

	f, err := byml.OpenFile(path, &byml.OpenOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpMaxDepth
	opts.ShowOffsets = dumpOffsets
	opts.ShowTypes = !dumpNoTypes
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(os.Stdout, opts).PrintDocument(ctx, f.Doc()); err != nil {
		return fmt.Errorf("failed to print document: %w", err)
	}
	return nil
}
