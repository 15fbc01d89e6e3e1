package dirfs

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/dirsize/dirtree"
)

var (
	_ fs.FS                 = (*FS)(nil)
	_ fs.Node               = (*Dir)(nil)
	_ fs.NodeStringLookuper = (*Dir)(nil)
	_ fs.HandleReadDirAller = (*Dir)(nil)
	_ fs.Node               = (*File)(nil)
	_ fs.HandleReader       = (*File)(nil)
)

// FS implements a read-only FUSE filesystem over an aggregated tree.
type FS struct {
	usage   *dirtree.Usage
	inodes  map[*dirtree.Node]uint64
	created time.Time
}

// New creates a filesystem for u. The tree behind u must not change
// afterwards.
func New(u *dirtree.Usage) *FS {
	f := &FS{
		usage:   u,
		inodes:  make(map[*dirtree.Node]uint64),
		created: time.Now(),
	}
	var next uint64
	_ = u.Tree().Walk(func(_ string, n *dirtree.Node) error {
		next++
		f.inodes[n] = next
		return nil
	})
	return f
}

// Root returns the root directory node
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, node: f.usage.Tree().Root()}, nil
}

func (f *FS) node(n *dirtree.Node) fs.Node {
	if n.IsDir() {
		return &Dir{fs: f, node: n}
	}
	return &File{fs: f, node: n}
}

func (f *FS) attr(n *dirtree.Node, a *fuse.Attr) {
	a.Inode = f.inodes[n]
	a.Size = f.usage.Of(n)
	a.Mtime = f.created
	a.Ctime = f.created
	a.Atime = f.created
	if n.IsDir() {
		a.Mode = os.ModeDir | 0o555
		a.Nlink = 2
	} else {
		a.Mode = 0o444
		a.Nlink = 1
	}
}

// Dir implements both Node and Handle for directories
type Dir struct {
	fs   *FS
	node *dirtree.Node
}

// Attr reports the directory's cumulative size as its size.
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	d.fs.attr(d.node, a)
	return nil
}

// Lookup resolves a child by name.
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	child, ok := d.node.Child(name)
	if !ok {
		return nil, syscall.ENOENT
	}
	return d.fs.node(child), nil
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	children := d.node.Children()
	dirents := make([]fuse.Dirent, 0, len(children))
	for _, c := range children {
		typ := fuse.DT_File
		if c.IsDir() {
			typ = fuse.DT_Dir
		}
		dirents = append(dirents, fuse.Dirent{
			Inode: d.fs.inodes[c],
			Name:  c.Name(),
			Type:  typ,
		})
	}
	return dirents, nil
}

// File implements both Node and Handle for files
type File struct {
	fs   *FS
	node *dirtree.Node
}

func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	f.fs.attr(f.node, a)
	return nil
}

// Read returns zero bytes for the requested range, clipped to the file size.
func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	size := f.node.Size()
	if req.Offset < 0 || uint64(req.Offset) >= size || req.Size <= 0 {
		resp.Data = resp.Data[:0]
		return nil
	}
	n := min(uint64(req.Size), size-uint64(req.Offset))
	resp.Data = make([]byte, n)
	return nil
}

// Mount serves filesystem at mountpoint until ctx is cancelled or the
// filesystem is unmounted externally.
func Mount(ctx context.Context, mountpoint string, filesystem *FS) error {
	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("dirsize"),
		fuse.Subtype("dirsize"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			fuse.Unmount(mountpoint)
		case <-done:
		}
	}()

	if err := fs.Serve(c, filesystem); err != nil {
		return fmt.Errorf("serve %s: %w", mountpoint, err)
	}
	return nil
}
