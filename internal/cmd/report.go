package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dendrascience/dirsize/dirtree"
	"github.com/spf13/cobra"
)

// Defaults for the classic puzzle configuration.
const (
	DefaultThreshold = 100000
	DefaultCapacity  = 70000000
	DefaultRequired  = 30000000
)

type reportResult struct {
	Total     uint64             `json:"total"`
	Threshold uint64             `json:"threshold"`
	SumAtMost uint64             `json:"sum_at_most"`
	Capacity  uint64             `json:"capacity"`
	Required  uint64             `json:"required"`
	Target    uint64             `json:"free_target"`
	Smallest  *uint64            `json:"smallest_at_least"`
	Dirs      []dirtree.DirUsage `json:"dirs,omitempty"`
}

// NewReportCmd creates and returns the report subcommand for the dirsize CLI.
// It answers both disk-usage queries for a transcript.
func NewReportCmd(opts *rootOptions) *cobra.Command {
	var (
		threshold uint64
		capacity  uint64
		required  uint64
		list      bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "report TRANSCRIPT",
		Short: "Report disk usage for a transcript",
		Long: `Rebuild the tree described by TRANSCRIPT and report:

  - the total size of all directories whose size is at most --threshold
  - the smallest directory that, once deleted, leaves --required bytes free
    on a disk of --capacity bytes

TRANSCRIPT is a file path, "-" for standard input, or s3://bucket/key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := opts.loadUsage(cmd, args[0])
			if err != nil {
				return err
			}

			res := reportResult{
				Total:     usage.Total(),
				Threshold: threshold,
				SumAtMost: usage.SumAtMost(threshold),
				Capacity:  capacity,
				Required:  required,
				Target:    usage.FreeTarget(capacity, required),
			}
			if size, ok := usage.SmallestAtLeast(res.Target); ok {
				res.Smallest = &size
			}
			if list {
				res.Dirs = usage.Dirs()
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printReport(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&threshold, "threshold", "t", DefaultThreshold, "Largest directory size counted by the bounded sum")
	cmd.Flags().Uint64Var(&capacity, "capacity", DefaultCapacity, "Total disk capacity in bytes")
	cmd.Flags().Uint64Var(&required, "required", DefaultRequired, "Free space required in bytes")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Also list every directory with its size")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func printReport(w io.Writer, res reportResult) {
	if len(res.Dirs) > 0 {
		fmt.Fprintln(w, "Directory sizes:")
		for _, d := range res.Dirs {
			fmt.Fprintf(w, "  %12d  %s\n", d.Size, d.Path)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total used: %d\n", res.Total)
	fmt.Fprintf(w, "Sum of directories <= %d: %d\n", res.Threshold, res.SumAtMost)
	fmt.Fprintf(w, "Space to free: %d\n", res.Target)
	if res.Smallest != nil {
		fmt.Fprintf(w, "Smallest directory to delete: %d\n", *res.Smallest)
	} else {
		fmt.Fprintln(w, "Smallest directory to delete: none")
	}
}
