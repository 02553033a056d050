package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/pkg/byml"
)

var (
	setName   string
	setValue  string
	setType   string
	setDryRun bool
	setJobs   int
	setStrict bool
	setDepth  int
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setName, "name", "", "Entry name to replace (required)")
	cmd.Flags().StringVar(&setValue, "value", "", "New value (required)")
	cmd.Flags().StringVar(&setType, "type", "int", "Value type (int, float, bool)")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Report matches without writing")
	cmd.Flags().IntVarP(&setJobs, "jobs", "j", 0, "Files processed at once (0 = number of CPUs)")
	cmd.Flags().BoolVar(&setStrict, "strict", false, "Fail when a file has no matching entry")
	cmd.Flags().IntVar(&setDepth, "max-depth", 0, "Fail on files nested deeper than this (0 = unlimited)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file>... --name <name> --value <value>",
		Short: "Replace every entry with a given name",
		Long: `The set command overwrites every bool, int or float entry with the given name,
at any depth, in each listed file. Entries of a different kind are left alone and
reported. Only the 4 payload bytes of each entry change.

Example:
  bymlctl set Player.byml --name Level --value 10
  bymlctl set a.byml b.byml.zs --name Speed --value 2.5 --type float
  bymlctl set *.byml --name Hidden --value true --type bool --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), args)
		},
	}
	return cmd
}

type setFileJSON struct {
	File     string   `json:"file"`
	Replaced int      `json:"replaced"`
	Paths    []string `json:"paths,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runSet(ctx context.Context, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	kind, err := byml.ParseKind(setType)
	if err != nil {
		return err
	}
	raw, err := byml.ParseValue(kind, setValue)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	opts := byml.DefaultBatchOptions()
	if setJobs > 0 {
		opts.Concurrency = setJobs
	}
	opts.Kind = kind
	opts.DryRun = setDryRun
	opts.MaxDepth = setDepth

	printVerbose("Replacing %q with %s %s in %d file(s)\n", setName, kind, setValue, len(files))

	results, err := byml.ReplaceInFiles(ctx, files, setName, raw, &opts)
	if err != nil {
		return err
	}

	var failed, missing int
	out := make([]setFileJSON, 0, len(results))
	for _, r := range results {
		entry := setFileJSON{File: r.Path}
		if r.Result != nil {
			entry.Replaced = len(r.Result.Matches)
			for _, m := range r.Result.Matches {
				entry.Paths = append(entry.Paths, m.Path)
			}
			for _, d := range r.Result.Warnings() {
				entry.Warnings = append(entry.Warnings, d.String())
			}
		}
		switch {
		case r.Err == nil:
		case errors.Is(r.Err, core.ErrNotFound):
			missing++
			entry.Error = r.Err.Error()
		default:
			failed++
			entry.Error = r.Err.Error()
		}
		out = append(out, entry)
	}

	if jsonOut {
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		verb := "replaced"
		if setDryRun {
			verb = "would replace"
		}
		for _, e := range out {
			if e.Error != "" {
				printError("%s\n", e.Error)
			} else {
				printInfo("%s: %s %d entr%s\n", e.File, verb, e.Replaced, plural(e.Replaced))
				for _, p := range e.Paths {
					printVerbose("  %s\n", p)
				}
			}
			for _, w := range e.Warnings {
				printInfo("  warning: %s\n", w)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	if setStrict && missing > 0 {
		return fmt.Errorf("%d of %d file(s) have no entry %q", missing, len(results), setName)
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
