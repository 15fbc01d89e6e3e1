// Package dirtree reconstructs a directory tree from a shell-session transcript
// and answers disk-usage questions about it.
//
// Building happens in one sequential pass over the transcript. The builder
// tracks the current directory as a path of names and re-resolves it from the
// root whenever it needs to add an entry, so the tree always has exactly one
// owner for every node.
//
// Aggregate walks a finished tree once, post-order, and returns a Usage that
// holds the cumulative size of every directory. Queries run against a Usage:
//
//	tree, err := dirtree.BuildText(lines)
//	if err != nil {
//		return err
//	}
//	usage := dirtree.Aggregate(tree)
//	small := usage.SumAtMost(100000)
//	victim, ok := usage.SmallestAtLeast(usage.FreeTarget(70000000, 30000000))
//
// Structural problems in the transcript are reported as a *BuildError wrapping
// one of the sentinel errors in this package.
package dirtree
