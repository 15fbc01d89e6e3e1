package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/dendrascience/dirsize/transcript"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the dirsize CLI.
// It generates a synthetic transcript describing a random directory tree.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		seed       uint64
		verbose    bool
	)
	gen := transcript.DefaultGenerator()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic transcript",
		Long: `Generate a transcript for testing dirsize.

The transcript starts with "$ cd /", lists every directory exactly once,
and enters subdirectories only after they have been listed, so it always
validates. Directory and file names are derived from random UUIDs. With
--seed the shape of the tree and the file sizes are reproducible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed != 0 {
				gen.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			}
			return runSeed(cmd, gen, outputPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output transcript, - for stdout (required)")
	cmd.Flags().IntVar(&gen.MaxDepth, "depth", gen.MaxDepth, "Maximum nesting depth below the root")
	cmd.Flags().IntVar(&gen.Fanout, "fanout", gen.Fanout, "Maximum subdirectories per directory")
	cmd.Flags().IntVarP(&gen.Files, "files", "c", gen.Files, "Maximum files per directory")
	cmd.Flags().Uint64Var(&gen.MaxFileSize, "max-size", gen.MaxFileSize, "Maximum file size in bytes")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the tree shape (0 for random)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, gen *transcript.Generator, outputPath string, verbose bool) error {
	out := cmd.OutOrStdout()
	if outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	summary, err := gen.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	if verbose {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "Generated %d directories and %d files\n", summary.Dirs, summary.Files)
		fmt.Fprintf(w, "Total size: %d bytes\n", summary.Total)
	}
	return nil
}
