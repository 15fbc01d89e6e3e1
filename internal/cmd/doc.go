// Package cmd provides the command-line interface implementation for dirsize.
//
// This package contains all the subcommand implementations for the dirsize CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, global flags and logging setup
//   - report: Disk-usage answers for a transcript
//   - tree: Indented rendering of the reconstructed tree
//   - validate: Structural checking of a transcript
//   - stats: Directory and file counts
//   - seed: Synthetic transcript generation
//   - mount: Read-only FUSE view of the reconstructed tree
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands that read a transcript
// accept a local path, "-" for standard input, or an s3://bucket/key URL.
package cmd
