package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"umlc/internal/browse"
	"umlc/internal/errors"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] <output-dir> [path]",
	Short: "Browse a generated output tree",
	Long: `Browse lists the contents of a completed conversion output tree. Only
trees carrying the relationship manifest are accepted; a directory
still being written is refused. An optional path selects a
subdirectory, and --read prints one generated file instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("read", "", "print the file at this path inside the tree")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	root := args[0]
	rel := ""
	if len(args) == 2 {
		rel = args[1]
	}

	readPath, err := cmd.Flags().GetString("read")
	if err != nil {
		return err
	}

	if readPath != "" {
		data, err := browse.Read(root, readPath)
		if err != nil {
			return browseHint(err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	entries, err := browse.List(root, rel)
	if err != nil {
		return browseHint(err)
	}
	for _, e := range entries {
		if e.IsDir {
			fmt.Fprintf(os.Stdout, "%10s  %s/\n", "-", e.Name)
		} else {
			fmt.Fprintf(os.Stdout, "%10d  %s\n", e.Size, e.Name)
		}
	}
	return nil
}

// browseHint attaches the recovery hint for trees that have no
// relationship manifest yet.
func browseHint(err error) error {
	if errors.Is(err, errors.ErrNotGenerated) {
		return errors.WithHint(err,
			"only completed conversion outputs can be browsed; run 'umlc convert' first")
	}
	return err
}
