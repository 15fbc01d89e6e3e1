package dirtree

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dendrascience/dirsize/transcript"
)

// scenario is the small two-level transcript used across the package tests:
// /a holds f1 (100) and /a/b holds f2 (50).
var scenario = []string{
	"$ cd /",
	"$ ls",
	"dir a",
	"$ cd a",
	"$ ls",
	"100 f1",
	"dir b",
	"$ cd b",
	"$ ls",
	"50 f2",
	"$ cd ..",
	"$ cd ..",
}

func mustBuild(t *testing.T, texts []string, opts ...Option) *Tree {
	t.Helper()
	tree, err := BuildText(texts, opts...)
	if err != nil {
		t.Fatalf("BuildText failed: %v", err)
	}
	return tree
}

func TestBuildScenario(t *testing.T) {
	tree := mustBuild(t, scenario)

	tests := []struct {
		path string
		kind Kind
		size uint64
	}{
		{path: "/", kind: KindDir},
		{path: "/a", kind: KindDir},
		{path: "/a/f1", kind: KindFile, size: 100},
		{path: "/a/b", kind: KindDir},
		{path: "/a/b/f2", kind: KindFile, size: 50},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			n, err := tree.Lookup(tt.path)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.path, err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", n.Kind(), tt.kind)
			}
			if n.Size() != tt.size {
				t.Errorf("size = %d, want %d", n.Size(), tt.size)
			}
		})
	}

	if _, err := tree.Lookup("/a/missing"); !errors.Is(err, ErrUnknownDirectory) {
		t.Errorf("Lookup of missing path returned %v", err)
	}
	if got := tree.Root().Len(); got != 1 {
		t.Errorf("root has %d children, want 1", got)
	}
}

func TestBuildStartsAtRoot(t *testing.T) {
	tree := mustBuild(t, []string{"$ ls", "10 a", "20 b"})
	if tree.Root().Len() != 2 {
		t.Fatalf("root has %d children, want 2", tree.Root().Len())
	}
	if got := Aggregate(tree).Total(); got != 30 {
		t.Errorf("root size = %d, want 30", got)
	}
}

func TestBuildEmptyTranscript(t *testing.T) {
	tree := mustBuild(t, nil)
	if tree.Root().Name() != "/" || !tree.Root().IsDir() {
		t.Errorf("root = %q dir=%v", tree.Root().Name(), tree.Root().IsDir())
	}
	if Aggregate(tree).Total() != 0 {
		t.Error("empty tree should have size 0")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		opts  []Option
		want  error
		line  int
	}{
		{
			name:  "cd to undeclared directory",
			texts: []string{"$ cd /", "$ ls", "dir y", "$ cd x"},
			want:  ErrUnknownDirectory,
			line:  4,
		},
		{
			name:  "cd into a file",
			texts: []string{"$ ls", "5 x", "$ cd x"},
			want:  ErrUnknownDirectory,
			line:  3,
		},
		{
			name:  "cd into a file with auto-create",
			texts: []string{"$ ls", "5 x", "$ cd x"},
			opts:  []Option{WithAutoCreate()},
			want:  ErrUnknownDirectory,
			line:  3,
		},
		{
			name:  "parent of root",
			texts: []string{"$ cd /", "$ cd .."},
			want:  ErrNavigation,
			line:  2,
		},
		{
			name:  "file size changes between listings",
			texts: []string{"$ ls", "100 f1", "$ ls", "200 f1"},
			want:  ErrInconsistentEntry,
			line:  4,
		},
		{
			name:  "file shadows directory",
			texts: []string{"$ ls", "dir d", "7 d"},
			want:  ErrInconsistentEntry,
			line:  3,
		},
		{
			name:  "directory shadows file",
			texts: []string{"$ ls", "7 d", "dir d"},
			want:  ErrInconsistentEntry,
			line:  3,
		},
		{
			name:  "relisting rejected",
			texts: []string{"$ ls", "1 a", "$ cd /", "$ ls"},
			opts:  []Option{WithListingPolicy(ListingReject)},
			want:  ErrDuplicateListing,
			line:  4,
		},
		{
			name:  "malformed line",
			texts: []string{"$ ls", "garbage"},
			want:  ErrMalformedLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := BuildText(tt.texts, tt.opts...)
			if tree != nil {
				t.Error("a failed build must not return a tree")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if tt.line == 0 {
				return
			}
			var be *BuildError
			if !errors.As(err, &be) {
				t.Fatalf("expected *BuildError, got %T", err)
			}
			if be.Line != tt.line {
				t.Errorf("error on line %d, want %d", be.Line, tt.line)
			}
		})
	}
}

func TestBuildErrorPath(t *testing.T) {
	_, err := BuildText([]string{"$ ls", "dir a", "$ cd a", "$ cd nope"})
	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BuildError, got %v", err)
	}
	if be.Path != "/a" {
		t.Errorf("Path = %q, want /a", be.Path)
	}
	if be.Text != "$ cd nope" {
		t.Errorf("Text = %q, want %q", be.Text, "$ cd nope")
	}
}

func TestBuildRelistingMerges(t *testing.T) {
	tree := mustBuild(t, []string{
		"$ ls", "dir a", "100 f1",
		"$ cd a", "$ ls", "5 g",
		"$ cd /", "$ ls", "100 f1", "dir a", "3 f3",
	})
	if got := tree.Root().Len(); got != 3 {
		t.Errorf("root has %d children after merge, want 3", got)
	}
	if got := Aggregate(tree).Total(); got != 108 {
		t.Errorf("total = %d, want 108", got)
	}
}

func TestBuildAutoCreate(t *testing.T) {
	texts := []string{"$ cd /", "$ cd x", "$ ls", "42 f"}

	if _, err := BuildText(texts); !errors.Is(err, ErrUnknownDirectory) {
		t.Fatalf("default policy error = %v, want ErrUnknownDirectory", err)
	}

	tree := mustBuild(t, texts, WithAutoCreate())
	size, ok := Aggregate(tree).Size("/x")
	if !ok || size != 42 {
		t.Errorf("Size(/x) = %d, %v, want 42, true", size, ok)
	}
}

func TestBuildParsedLines(t *testing.T) {
	lines := []transcript.Line{
		{Kind: transcript.List},
		{Kind: transcript.DirEntry, Name: "d"},
		{Kind: transcript.ChangeDir, Target: "d"},
		{Kind: transcript.FileEntry, Name: "f", Size: 9},
	}
	tree, err := Build(lines)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n, err := tree.Lookup("/d/f"); err != nil || n.Size() != 9 {
		t.Errorf("Lookup(/d/f) = %v, %v", n, err)
	}
}

func TestBuildLogsDebugEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mustBuild(t, scenario, WithLogger(zap.New(core)))

	// two directories and two files
	if got := logs.Len(); got != 4 {
		t.Errorf("logged %d events, want 4", got)
	}
	if got := logs.FilterField(zap.String("path", "/a/b/f2")).Len(); got != 1 {
		t.Errorf("expected one event for /a/b/f2, got %d", got)
	}
}

func TestBuildGeneratedTranscripts(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := seededGenerator(seed)
		texts, summary := generate(t, g)
		tree := mustBuild(t, texts, WithListingPolicy(ListingReject))

		stats := tree.Stats()
		if stats.Dirs != summary.Dirs || stats.Files != summary.Files {
			t.Errorf("seed %d: stats = %+v, generator wrote %+v", seed, stats, summary)
		}
		if stats.MaxDepth > g.MaxDepth {
			t.Errorf("seed %d: depth %d exceeds %d", seed, stats.MaxDepth, g.MaxDepth)
		}
		if got := Aggregate(tree).Total(); got != summary.Total {
			t.Errorf("seed %d: total = %d, want %d", seed, got, summary.Total)
		}
	}
}
