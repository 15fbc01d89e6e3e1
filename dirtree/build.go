package dirtree

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dendrascience/dirsize/transcript"
)

// ListingPolicy decides what happens when a directory is listed twice.
type ListingPolicy uint8

const (
	// ListingMerge accepts repeated listings. Entries already present are
	// no-ops; a file reported with a different size is ErrInconsistentEntry.
	ListingMerge ListingPolicy = iota
	// ListingReject fails the second "$ ls" of a directory with
	// ErrDuplicateListing.
	ListingReject
)

type options struct {
	autoCreate bool
	listing    ListingPolicy
	logger     *zap.Logger
}

// Option configures Build.
type Option func(*options)

// WithAutoCreate makes "$ cd name" create name when the current directory has
// no such child, instead of failing with ErrUnknownDirectory.
func WithAutoCreate() Option {
	return func(o *options) { o.autoCreate = true }
}

// WithListingPolicy sets how repeated listings of one directory are handled.
func WithListingPolicy(p ListingPolicy) Option {
	return func(o *options) { o.listing = p }
}

// WithLogger sends per-line debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// builder holds the state of one Build call. cwd is the only cursor into the
// tree; it is re-resolved from the root for each mutation.
type builder struct {
	tree *Tree
	cwd  []string
	opts options
}

// BuildText parses texts as a transcript and builds its tree.
func BuildText(texts []string, opts ...Option) (*Tree, error) {
	lines, err := transcript.ParseAll(texts)
	if err != nil {
		return nil, err
	}
	return Build(lines, opts...)
}

// Build applies transcript lines in order to an empty tree rooted at "/". The
// cursor starts at the root. On failure the partial tree is discarded and a
// *BuildError is returned.
func Build(lines []transcript.Line, opts ...Option) (*Tree, error) {
	b := &builder{
		tree: newTree(),
		opts: options{logger: zap.NewNop()},
	}
	for _, o := range opts {
		o(&b.opts)
	}

	for _, l := range lines {
		if err := b.apply(l); err != nil {
			return nil, &BuildError{Line: l.Number, Text: l.String(), Path: joinPath(b.cwd), Err: err}
		}
	}
	return b.tree, nil
}

func (b *builder) apply(l transcript.Line) error {
	switch l.Kind {
	case transcript.ChangeDir:
		return b.changeDir(l.Target)
	case transcript.List:
		return b.list()
	case transcript.DirEntry:
		return b.addDir(l.Name)
	case transcript.FileEntry:
		return b.addFile(l.Name, l.Size)
	default:
		return fmt.Errorf("%w: unknown line kind %d", ErrMalformedLine, l.Kind)
	}
}

// current resolves the cursor to the directory it designates.
func (b *builder) current() (*Node, error) {
	return b.tree.resolve(b.cwd)
}

func (b *builder) changeDir(target string) error {
	switch target {
	case transcript.Root:
		b.cwd = b.cwd[:0]
		return nil
	case transcript.Parent:
		if len(b.cwd) == 0 {
			return ErrNavigation
		}
		b.cwd = b.cwd[:len(b.cwd)-1]
		return nil
	}

	dir, err := b.current()
	if err != nil {
		return err
	}
	child, ok := dir.children[target]
	switch {
	case ok && !child.IsDir():
		return fmt.Errorf("%w: %s is a file", ErrUnknownDirectory, target)
	case !ok && !b.opts.autoCreate:
		return fmt.Errorf("%w: %s", ErrUnknownDirectory, target)
	case !ok:
		dir.children[target] = newDir(target)
		b.opts.logger.Debug("created directory on cd",
			zap.String("path", childPath(joinPath(b.cwd), target)))
	}

	b.cwd = append(b.cwd, target)
	return nil
}

func (b *builder) list() error {
	dir, err := b.current()
	if err != nil {
		return err
	}
	if dir.listed && b.opts.listing == ListingReject {
		return ErrDuplicateListing
	}
	dir.listed = true
	return nil
}

func (b *builder) addDir(name string) error {
	dir, err := b.current()
	if err != nil {
		return err
	}
	if existing, ok := dir.children[name]; ok {
		if !existing.IsDir() {
			return fmt.Errorf("%w: %s is already a file", ErrInconsistentEntry, name)
		}
		return nil
	}
	dir.children[name] = newDir(name)
	b.opts.logger.Debug("directory", zap.String("path", childPath(joinPath(b.cwd), name)))
	return nil
}

func (b *builder) addFile(name string, size uint64) error {
	dir, err := b.current()
	if err != nil {
		return err
	}
	if existing, ok := dir.children[name]; ok {
		if existing.IsDir() {
			return fmt.Errorf("%w: %s is already a directory", ErrInconsistentEntry, name)
		}
		if existing.size != size {
			return fmt.Errorf("%w: %s was %d bytes, now %d", ErrInconsistentEntry, name, existing.size, size)
		}
		return nil
	}
	dir.children[name] = newFile(name, size)
	b.opts.logger.Debug("file",
		zap.String("path", childPath(joinPath(b.cwd), name)),
		zap.Uint64("size", size))
	return nil
}
