package dirtree

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// Kind represents the type of a tree node.
type Kind uint8

const (
	KindFile Kind = 0
	KindDir  Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Node is a file or directory in a reconstructed tree. A directory owns its
// children; no node has more than one parent.
type Node struct {
	name     string
	kind     Kind
	size     uint64           // files only
	children map[string]*Node // directories only
	listed   bool             // set once "$ ls" has run in this directory
}

func newDir(name string) *Node {
	return &Node{name: name, kind: KindDir, children: make(map[string]*Node)}
}

func newFile(name string, size uint64) *Node {
	return &Node{name: name, kind: KindFile, size: size}
}

func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) IsDir() bool  { return n.kind == KindDir }

// Size is the byte count of a file. Directories report zero here; their
// cumulative size is available from a Usage.
func (n *Node) Size() uint64 { return n.size }

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the direct children sorted by name.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Node) int { return strings.Compare(a.name, b.name) })
	return out
}

// Len is the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Tree is a directory hierarchy rooted at "/".
type Tree struct {
	root *Node
}

func newTree() *Tree {
	return &Tree{root: newDir("/")}
}

// Root returns the root directory.
func (t *Tree) Root() *Node { return t.root }

// Lookup resolves an absolute slash-separated path such as "/a/b.txt".
func (t *Tree) Lookup(p string) (*Node, error) {
	return t.resolve(splitPath(p))
}

// resolve walks names from the root. Every element but the last must be a
// directory.
func (t *Tree) resolve(names []string) (*Node, error) {
	n := t.root
	for i, name := range names {
		if !n.IsDir() {
			return nil, fmt.Errorf("%w: %s is a file", ErrUnknownDirectory, joinPath(names[:i]))
		}
		c, ok := n.children[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDirectory, joinPath(names[:i+1]))
		}
		n = c
	}
	return n, nil
}

// Walk calls fn for every node in pre-order with children visited in name
// order. Returning an error from fn stops the walk.
func (t *Tree) Walk(fn func(p string, n *Node) error) error {
	return walk("/", t.root, fn)
}

func walk(p string, n *Node, fn func(string, *Node) error) error {
	if err := fn(p, n); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := walk(childPath(p, c.name), c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarises the shape of a tree.
type Stats struct {
	Dirs     int // directories including the root
	Files    int
	MaxDepth int // deepest directory level; the root is level 0
}

// Stats counts directories and files and measures depth.
func (t *Tree) Stats() Stats {
	var s Stats
	countNodes(t.root, 0, &s)
	return s
}

func countNodes(n *Node, depth int, s *Stats) {
	if !n.IsDir() {
		s.Files++
		return
	}
	s.Dirs++
	s.MaxDepth = max(s.MaxDepth, depth)
	for _, c := range n.children {
		countNodes(c, depth+1, s)
	}
}

func splitPath(p string) []string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func joinPath(names []string) string {
	return "/" + strings.Join(names, "/")
}

func childPath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}
