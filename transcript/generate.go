package transcript

import (
	"bufio"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Generator writes synthetic transcripts describing random but valid trees.
// Names come from random UUIDs; the shape of the tree comes from Rand so that
// the same seed produces the same structure.
type Generator struct {
	MaxDepth    int    // deepest level of nesting below the root
	Fanout      int    // maximum subdirectories per directory
	Files       int    // maximum files per directory
	MaxFileSize uint64 // file sizes are drawn from [1, MaxFileSize]
	Rand        *rand.Rand
}

// Summary describes the tree a Generator wrote.
type Summary struct {
	Dirs  int    // directories including the root
	Files int    // files
	Total uint64 // sum of all file sizes
}

// DefaultGenerator returns a generator with modest limits, seeded randomly.
func DefaultGenerator() *Generator {
	return &Generator{
		MaxDepth:    4,
		Fanout:      4,
		Files:       6,
		MaxFileSize: 300000,
		Rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Write emits a full transcript starting with "$ cd /".
func (g *Generator) Write(w io.Writer) (Summary, error) {
	bw := bufio.NewWriter(w)
	var s Summary
	emit := func(l Line) error {
		_, err := bw.WriteString(l.String() + "\n")
		return err
	}
	if err := emit(Line{Kind: ChangeDir, Target: Root}); err != nil {
		return s, err
	}
	if err := g.writeDir(emit, 0, &s); err != nil {
		return s, err
	}
	return s, bw.Flush()
}

func (g *Generator) writeDir(emit func(Line) error, depth int, s *Summary) error {
	s.Dirs++
	if err := emit(Line{Kind: List}); err != nil {
		return err
	}

	used := make(map[string]bool)
	var subdirs []string
	if depth < g.MaxDepth {
		for range g.intn(g.Fanout + 1) {
			name := uniqueName(used, "")
			subdirs = append(subdirs, name)
			if err := emit(Line{Kind: DirEntry, Name: name}); err != nil {
				return err
			}
		}
	}

	for range g.intn(g.Files + 1) {
		ext := ".txt"
		if g.intn(2) == 1 {
			ext = ".json"
		}
		size := g.size()
		s.Files++
		s.Total += size
		if err := emit(Line{Kind: FileEntry, Name: uniqueName(used, ext), Size: size}); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		if err := emit(Line{Kind: ChangeDir, Target: name}); err != nil {
			return err
		}
		if err := g.writeDir(emit, depth+1, s); err != nil {
			return err
		}
		if err := emit(Line{Kind: ChangeDir, Target: Parent}); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	if g.Rand == nil {
		return rand.IntN(n)
	}
	return g.Rand.IntN(n)
}

func (g *Generator) size() uint64 {
	if g.MaxFileSize == 0 {
		return 0
	}
	if g.Rand == nil {
		return rand.Uint64N(g.MaxFileSize) + 1
	}
	return g.Rand.Uint64N(g.MaxFileSize) + 1
}

func uniqueName(used map[string]bool, ext string) string {
	for {
		name := uuid.New().String()[:8] + ext
		if !used[name] {
			used[name] = true
			return name
		}
	}
}
