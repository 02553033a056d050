package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bymlkit/pkg/byml"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a BYML header and report basic metadata",
		Long: `The info command opens a BYML file, walks every reachable dictionary and
reports the header fields together with entry counts by kind.

Example:
  bymlctl info ActorInfo.product.byml
  bymlctl info Enemy.byml.zs --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args)
		},
	}
	return cmd
}

type infoJSON struct {
	File        string `json:"file"`
	Container   string `json:"container"`
	Size        int    `json:"size"`
	Version     uint16 `json:"version"`
	Names       int    `json:"names"`
	Values      int    `json:"values"`
	RootOffset  uint32 `json:"root_offset"`
	Entries     uint64 `json:"entries"`
	Dicts       uint64 `json:"dicts"`
	MaxDepth    int    `json:"max_depth"`
	Bools       uint64 `json:"bools"`
	Ints        uint64 `json:"ints"`
	Floats      uint64 `json:"floats"`
	Strings     uint64 `json:"strings"`
	Shared      uint64 `json:"shared"`
	Unsupported uint64 `json:"unsupported"`
}

func runInfo(ctx context.Context, args []string) error {
	path := args[0]
	if ctx == nil {
		ctx = context.Background()
	}

	printVerbose("Opening file: %s\n", path)

	info, err := byml.Info(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file info: %w", err)
	}
	s := info.Stats

	if jsonOut {
		return printJSON(infoJSON{
			File:        path,
			Container:   info.Codec.String(),
			Size:        info.Size,
			Version:     info.Header.Version,
			Names:       info.Names,
			Values:      info.Values,
			RootOffset:  info.Header.RootOffset,
			Entries:     s.Entries,
			Dicts:       s.Dicts,
			MaxDepth:    s.MaxDepth,
			Bools:       s.Bools,
			Ints:        s.Ints,
			Floats:      s.Floats,
			Strings:     s.Strings,
			Shared:      s.Revisits,
			Unsupported: s.Unsupported,
		})
	}

	printInfo("\nBYML Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Container: %s\n", info.Codec)
	printInfo("  Size: %s\n", formatSize(info.Size))
	printInfo("  Version: %d\n", info.Header.Version)
	if !info.Header.KnownVersion() {
		printInfo("  ! version outside 1..7, layout assumed\n")
	}
	printInfo("  Names: %d\n", info.Names)
	printInfo("  Values: %d\n", info.Values)
	printInfo("  Root: 0x%x\n", info.Header.RootOffset)

	printInfo("\nEntries:\n")
	printInfo("  Total: %d (max depth %d)\n", s.Entries, s.MaxDepth)
	printInfo("  Dictionaries: %d (%d shared references)\n", s.Dicts, s.Revisits)
	printInfo("  Bool: %d  Int: %d  Float: %d  String: %d\n", s.Bools, s.Ints, s.Floats, s.Strings)
	if s.Unsupported > 0 {
		printInfo("  Unsupported (arrays, paths): %d\n", s.Unsupported)
	}
	return nil
}

func formatSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
