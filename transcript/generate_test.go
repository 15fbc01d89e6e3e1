package transcript

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGeneratorWritesParseableTranscript(t *testing.T) {
	g := &Generator{
		MaxDepth:    3,
		Fanout:      3,
		Files:       4,
		MaxFileSize: 1000,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	}

	var buf bytes.Buffer
	summary, err := g.Write(&buf)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	texts := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	lines, err := ParseAll(texts)
	if err != nil {
		t.Fatalf("generated transcript does not parse: %v", err)
	}

	if lines[0].Kind != ChangeDir || lines[0].Target != Root {
		t.Errorf("first line = %q, want %q", lines[0], "$ cd /")
	}

	var lists, files, depth int
	var total uint64
	for _, l := range lines {
		switch l.Kind {
		case List:
			lists++
		case FileEntry:
			files++
			total += l.Size
			if l.Size < 1 || l.Size > g.MaxFileSize {
				t.Errorf("file size %d outside [1, %d]", l.Size, g.MaxFileSize)
			}
		case ChangeDir:
			switch l.Target {
			case Parent:
				depth--
			case Root:
				depth = 0
			default:
				depth++
			}
			if depth > g.MaxDepth {
				t.Errorf("depth %d exceeds MaxDepth %d", depth, g.MaxDepth)
			}
		}
	}
	if depth != 0 {
		t.Errorf("transcript ends at depth %d, want 0", depth)
	}
	if lists != summary.Dirs {
		t.Errorf("listings = %d, summary dirs = %d", lists, summary.Dirs)
	}
	if files != summary.Files {
		t.Errorf("files = %d, summary files = %d", files, summary.Files)
	}
	if total != summary.Total {
		t.Errorf("total = %d, summary total = %d", total, summary.Total)
	}
}

func TestGeneratorZeroLimits(t *testing.T) {
	g := &Generator{Rand: rand.New(rand.NewPCG(3, 4))}
	var buf bytes.Buffer
	summary, err := g.Write(&buf)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "$ cd /\n$ ls\n" {
		t.Errorf("unexpected transcript %q", buf.String())
	}
	if summary.Dirs != 1 || summary.Files != 0 || summary.Total != 0 {
		t.Errorf("summary = %+v, want a single empty root", summary)
	}
}
