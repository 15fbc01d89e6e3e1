package cmd

import (
	"fmt"
	"time"

	"github.com/dendrascience/dirsize/dirtree"
	"github.com/dendrascience/dirsize/internal/logging"
	"github.com/dendrascience/dirsize/internal/source"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel        string
	logFormat       string
	autoCreate      bool
	rejectRelisting bool
	s3Endpoint      string
	s3Region        string
}

func (o *rootOptions) buildOptions() []dirtree.Option {
	opts := []dirtree.Option{dirtree.WithLogger(logging.L().Named("build"))}
	if o.autoCreate {
		opts = append(opts, dirtree.WithAutoCreate())
	}
	if o.rejectRelisting {
		opts = append(opts, dirtree.WithListingPolicy(dirtree.ListingReject))
	}
	return opts
}

func (o *rootOptions) sourceConfig(cmd *cobra.Command) source.Config {
	return source.Config{
		Stdin:      cmd.InOrStdin(),
		S3Endpoint: o.s3Endpoint,
		S3Region:   o.s3Region,
	}
}

// loadTree reads the transcript named by ref and builds its tree.
func (o *rootOptions) loadTree(cmd *cobra.Command, ref string) (*dirtree.Tree, int, error) {
	start := time.Now()
	texts, err := source.Load(cmd.Context(), ref, o.sourceConfig(cmd))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load transcript: %w", err)
	}

	tree, err := dirtree.BuildText(texts, o.buildOptions()...)
	if err != nil {
		logging.L().Debug("build failed", logging.String("source", ref), logging.Err(err))
		return nil, len(texts), err
	}

	logging.L().Info("built tree",
		logging.String("source", ref),
		logging.Int("lines", len(texts)),
		logging.String("elapsed", time.Since(start).String()))
	return tree, len(texts), nil
}

// loadUsage reads, builds and aggregates the transcript named by ref.
func (o *rootOptions) loadUsage(cmd *cobra.Command, ref string) (*dirtree.Usage, error) {
	tree, _, err := o.loadTree(cmd, ref)
	if err != nil {
		return nil, err
	}
	return dirtree.Aggregate(tree), nil
}
