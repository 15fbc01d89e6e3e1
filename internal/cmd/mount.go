package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dendrascience/dirsize/dirfs"
	"github.com/dendrascience/dirsize/dirtree"
	"github.com/dendrascience/dirsize/internal/logging"
	"github.com/dendrascience/dirsize/version"
	"github.com/spf13/cobra"
)

// NewMountCmd creates and returns the mount subcommand for the dirsize CLI.
// It serves the reconstructed tree as a read-only FUSE filesystem.
func NewMountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mount TRANSCRIPT MOUNTPOINT",
		Short: "Mount the reconstructed tree read-only",
		Long: `Mount the directory tree described by TRANSCRIPT at MOUNTPOINT.

Directories report their cumulative size and files read back as zero
bytes of the recorded length, so ordinary tools such as ls and du can
explore the tree. The filesystem is unmounted on interrupt.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mountpoint := args[1]
			if err := checkMountpoint(mountpoint); err != nil {
				return err
			}

			usage, err := opts.loadUsage(cmd, args[0])
			if err != nil {
				return err
			}
			return runMount(cmd, usage, mountpoint)
		},
	}
}

func runMount(cmd *cobra.Command, usage *dirtree.Usage, mountpoint string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.L().Info("mounting",
		logging.String("version", version.GetVersion()),
		logging.String("mountpoint", mountpoint),
		logging.Uint64("total", usage.Total()))
	fmt.Fprintf(cmd.OutOrStdout(), "dirsize %s mounted at %s\n", version.GetVersion(), mountpoint)

	if err := dirfs.Mount(ctx, mountpoint, dirfs.New(usage)); err != nil {
		return err
	}
	logging.L().Info("shutdown complete")
	return nil
}

// checkMountpoint requires mountpoint to be an existing directory.
func checkMountpoint(mountpoint string) error {
	info, err := os.Stat(mountpoint)
	if err != nil {
		return fmt.Errorf("invalid mountpoint: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid mountpoint %s: not a directory", mountpoint)
	}
	return nil
}
