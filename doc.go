// Package main provides the dirsize command-line interface.
//
// dirsize rebuilds a directory tree from a transcript of "$ cd" and "$ ls"
// commands and their output, computes the cumulative size of every directory,
// and answers disk-usage questions about the result.
//
// The main binary supports multiple subcommands:
//   - report: Sum of small directories and the smallest directory to delete
//   - tree: Print the reconstructed tree with sizes
//   - validate: Check a transcript for structural errors
//   - stats: Count directories and files
//   - seed: Generate a synthetic transcript
//   - mount: Mount the reconstructed tree as a read-only FUSE filesystem
package main
