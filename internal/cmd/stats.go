package cmd

import (
	"fmt"

	"github.com/dendrascience/dirsize/dirtree"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates and returns the stats subcommand for the dirsize CLI.
// It provides quick counts for the tree described by a transcript.
func NewStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats TRANSCRIPT",
		Short: "Count directories and files in a transcript",
		Long: `Count the directories and files described by a transcript.

This is a utility command that rebuilds the tree and reports how many
directories and files it holds, how deep it goes, and its total size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, lines, err := opts.loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			stats := tree.Stats()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Transcript lines: %d\n", lines)
			fmt.Fprintf(w, "Directories: %d\n", stats.Dirs)
			fmt.Fprintf(w, "Files: %d\n", stats.Files)
			fmt.Fprintf(w, "Max depth: %d\n", stats.MaxDepth)
			fmt.Fprintf(w, "Total size: %d\n", dirtree.Aggregate(tree).Total())
			return nil
		},
	}
}
