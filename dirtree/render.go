package dirtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/colorhash"
)

// RenderOptions controls Render output.
type RenderOptions struct {
	Files    bool // include files, not just directories
	Color    bool // tint directory names with a colour derived from their path
	MaxDepth int  // do not expand directories below this level; 0 means no limit
}

// Render writes the tree as an indented outline:
//
//	- / (dir, size=48381165)
//	  - a (dir, size=94853)
//	    - f (file, size=29116)
//
// Directories come before files at each level, each group in name order.
func Render(w io.Writer, u *Usage, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	renderNode(bw, u, u.tree.root, "/", 0, opts)
	return bw.Flush()
}

func renderNode(w *bufio.Writer, u *Usage, n *Node, p string, depth int, opts RenderOptions) {
	indent := strings.Repeat("  ", depth)
	if !n.IsDir() {
		fmt.Fprintf(w, "%s- %s (file, size=%d)\n", indent, n.name, n.size)
		return
	}

	name := n.name
	if opts.Color {
		name = colorize(p, name)
	}
	fmt.Fprintf(w, "%s- %s (dir, size=%d)\n", indent, name, u.sizes[n])

	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return
	}
	children := n.Children()
	for _, c := range children {
		if c.IsDir() {
			renderNode(w, u, c, childPath(p, c.name), depth+1, opts)
		}
	}
	if !opts.Files {
		return
	}
	for _, c := range children {
		if !c.IsDir() {
			renderNode(w, u, c, childPath(p, c.name), depth+1, opts)
		}
	}
}

// colorize wraps s in an ANSI 256-colour escape chosen from the 6x6x6 colour
// cube by hashing key.
func colorize(key, s string) string {
	h := colorhash.HashString(key)
	if h < 0 {
		h = -h
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", 16+h%216, s)
}
