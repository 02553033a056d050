package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/edit"
	"github.com/joshuapare/bymlkit/byml/printer"
	"github.com/joshuapare/bymlkit/pkg/byml"
)

var getShowOffsets bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowOffsets, "offsets", false, "Show entry offsets")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <name>",
		Short: "Print every entry with a given name",
		Long: `The get command searches the whole tree and prints every entry whose name
matches, with its path from the root.

Example:
  bymlctl get Player.byml Speed
  bymlctl get Player.byml.zs Hp --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Context(), args)
		},
	}
	return cmd
}

func runGet(ctx context.Context, args []string) error {
	path, name := args[0], args[1]
	if ctx == nil {
		ctx = context.Background()
	}

	printVerbose("Opening file: %s\n", path)

	f, err := byml.OpenFile(path, &byml.OpenOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	hits, err := edit.Find(ctx, f.Root(), name)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}
	if len(hits) == 0 {
		return fmt.Errorf("%q: %w", name, core.ErrNotFound)
	}

	opts := printer.DefaultOptions()
	opts.ShowOffsets = getShowOffsets
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	p := printer.New(os.Stdout, opts)
	for _, h := range hits {
		if err := p.PrintValue(h.Path, h.Value); err != nil {
			return fmt.Errorf("failed to print %s: %w", h.Path, err)
		}
	}
	return nil
}
