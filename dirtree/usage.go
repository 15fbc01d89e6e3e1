package dirtree

import "math"

// Usage holds the cumulative size of every directory in a tree. It is created
// by Aggregate and never modified afterwards, so concurrent readers are safe.
type Usage struct {
	tree  *Tree
	sizes map[*Node]uint64
}

// DirUsage pairs a directory path with its cumulative size.
type DirUsage struct {
	Path string `json:"path"`
	Size uint64 `json:"size"`
}

// Aggregate computes directory sizes in a single post-order pass. A
// directory's size is the sum of its files plus the sizes of its
// subdirectories.
func Aggregate(t *Tree) *Usage {
	u := &Usage{tree: t, sizes: make(map[*Node]uint64)}
	u.aggregate(t.root)
	return u
}

func (u *Usage) aggregate(n *Node) uint64 {
	if !n.IsDir() {
		return n.size
	}
	var total uint64
	for _, c := range n.children {
		total += u.aggregate(c)
	}
	u.sizes[n] = total
	return total
}

// Tree returns the tree the usage was computed from.
func (u *Usage) Tree() *Tree { return u.tree }

// Total is the size of the root directory.
func (u *Usage) Total() uint64 { return u.sizes[u.tree.root] }

// Of returns the cumulative size of a directory or the size of a file.
func (u *Usage) Of(n *Node) uint64 {
	if n.IsDir() {
		return u.sizes[n]
	}
	return n.size
}

// Size looks up a node by absolute path and returns its size.
func (u *Usage) Size(p string) (uint64, bool) {
	n, err := u.tree.Lookup(p)
	if err != nil {
		return 0, false
	}
	return u.Of(n), true
}

// Dirs lists every directory, root first, in depth-first name order.
func (u *Usage) Dirs() []DirUsage {
	out := make([]DirUsage, 0, len(u.sizes))
	_ = u.tree.Walk(func(p string, n *Node) error {
		if n.IsDir() {
			out = append(out, DirUsage{Path: p, Size: u.sizes[n]})
		}
		return nil
	})
	return out
}

// SumAtMost adds up the sizes of all directories, the root included, whose
// size is no greater than threshold. Nested directories are counted each time
// they qualify.
func (u *Usage) SumAtMost(threshold uint64) uint64 {
	var sum uint64
	for _, size := range u.sizes {
		if size <= threshold {
			sum += size
		}
	}
	return sum
}

// SmallestAtLeast returns the smallest directory size that is at least target.
// ok is false when no directory, not even the root, is large enough.
func (u *Usage) SmallestAtLeast(target uint64) (size uint64, ok bool) {
	for _, s := range u.sizes {
		if s >= target && (!ok || s < size) {
			size, ok = s, true
		}
	}
	return size, ok
}

// FreeTarget is how much must be deleted so that a disk of the given capacity
// has at least required bytes free. It is zero when enough space is already
// free.
func (u *Usage) FreeTarget(capacity, required uint64) uint64 {
	used := u.Total()
	if used > capacity {
		over := used - capacity
		if required > math.MaxUint64-over {
			return math.MaxUint64
		}
		return required + over
	}
	free := capacity - used
	if free >= required {
		return 0
	}
	return required - free
}
