package cmd

import (
	"github.com/dendrascience/dirsize/internal/logging"
	"github.com/dendrascience/dirsize/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the dirsize CLI.
// It sets up all subcommands, command groups, and global flags.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dirsize",
		Short: "dirsize - Rebuild a directory tree from a shell transcript and report disk usage",
		Long: `dirsize reads a transcript of "$ cd" and "$ ls" commands together with their
output, rebuilds the directory tree the session explored, and answers
disk-usage questions about it.

Use subcommands to perform different operations:
  - report: Sum of small directories and the smallest directory worth deleting
  - tree: Print the reconstructed tree with cumulative sizes
  - validate: Check a transcript for structural errors
  - stats: Count directories and files
  - seed: Generate a synthetic transcript
  - mount: Mount the reconstructed tree as a read-only filesystem`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: opts.logFormat,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")
	flags.BoolVar(&opts.autoCreate, "auto-create", false, "Create directories entered with cd but never listed")
	flags.BoolVar(&opts.rejectRelisting, "reject-relisting", false, "Fail when a directory is listed more than once")
	flags.StringVar(&opts.s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint for s3:// transcripts")
	flags.StringVar(&opts.s3Region, "s3-region", "", "AWS region for s3:// transcripts")

	groupAnalysis := "analysis"
	groupUtilities := "utilities"
	groupFilesystem := "filesystem"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupAnalysis,
		Title: "Analysis",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	reportCmd := NewReportCmd(opts)
	treeCmd := NewTreeCmd(opts)
	statsCmd := NewStatsCmd(opts)
	validateCmd := NewValidateCmd(opts)
	seedCmd := NewSeedCmd()
	mountCmd := NewMountCmd(opts)

	reportCmd.GroupID = groupAnalysis
	treeCmd.GroupID = groupAnalysis
	statsCmd.GroupID = groupAnalysis
	validateCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	mountCmd.GroupID = groupFilesystem

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(mountCmd)

	return rootCmd
}
