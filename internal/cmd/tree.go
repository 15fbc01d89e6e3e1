package cmd

import (
	"github.com/dendrascience/dirsize/dirtree"
	"github.com/spf13/cobra"
)

// NewTreeCmd creates and returns the tree subcommand for the dirsize CLI.
// It prints the reconstructed tree with cumulative directory sizes.
func NewTreeCmd(opts *rootOptions) *cobra.Command {
	var renderOpts dirtree.RenderOptions

	cmd := &cobra.Command{
		Use:   "tree TRANSCRIPT",
		Short: "Print the reconstructed directory tree",
		Long: `Print the directory tree described by TRANSCRIPT as an indented outline.

Every directory is shown with its cumulative size. Files are hidden unless
--files is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := opts.loadUsage(cmd, args[0])
			if err != nil {
				return err
			}
			return dirtree.Render(cmd.OutOrStdout(), usage, renderOpts)
		},
	}

	cmd.Flags().BoolVarP(&renderOpts.Files, "files", "f", false, "Include files in the output")
	cmd.Flags().BoolVar(&renderOpts.Color, "color", false, "Colour directory names by path")
	cmd.Flags().IntVarP(&renderOpts.MaxDepth, "depth", "d", 0, "Maximum depth to expand (0 for no limit)")

	return cmd
}
