package cmd

import (
	"errors"
	"fmt"

	"github.com/dendrascience/dirsize/dirtree"
	"github.com/dendrascience/dirsize/transcript"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the dirsize CLI.
// It checks a transcript for structural errors without reporting sizes.
func NewValidateCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate TRANSCRIPT",
		Short: "Validate a transcript for structural errors",
		Long: `Validate a transcript for structural errors.

This command parses every line and replays the navigation, checking that
every directory entered was listed first, that "cd .." never climbs above
the root, and that files keep the same size across listings. The first
problem found is reported with its line number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(w, "Validating transcript %s\n", args[0])
			}

			tree, lines, err := opts.loadTree(cmd, args[0])
			if err != nil {
				fmt.Fprintf(w, "Transcript is invalid: %s\n", describe(err))
				return err
			}

			stats := tree.Stats()
			fmt.Fprintf(w, "Transcript is valid: %d lines, %d directories, %d files\n",
				lines, stats.Dirs, stats.Files)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// describe names the kind of structural problem behind err.
func describe(err error) string {
	var (
		pe *transcript.ParseError
		be *dirtree.BuildError
	)
	switch {
	case errors.As(err, &pe):
		return fmt.Sprintf("malformed line %d: %q", pe.Line, pe.Text)
	case errors.As(err, &be):
		kind := "structural error"
		switch {
		case errors.Is(err, dirtree.ErrNavigation):
			kind = "navigation error"
		case errors.Is(err, dirtree.ErrUnknownDirectory):
			kind = "unknown directory"
		case errors.Is(err, dirtree.ErrInconsistentEntry):
			kind = "inconsistent entry"
		case errors.Is(err, dirtree.ErrDuplicateListing):
			kind = "duplicate listing"
		}
		return fmt.Sprintf("%s at line %d (%q in %s)", kind, be.Line, be.Text, be.Path)
	}
	return err.Error()
}
