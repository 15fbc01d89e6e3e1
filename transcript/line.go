package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which transcript form a Line was parsed from.
type Kind uint8

const (
	ChangeDir Kind = iota
	List
	DirEntry
	FileEntry
)

func (k Kind) String() string {
	switch k {
	case ChangeDir:
		return "cd"
	case List:
		return "ls"
	case DirEntry:
		return "dir"
	case FileEntry:
		return "file"
	default:
		return "unknown"
	}
}

// Special cd targets.
const (
	Root   = "/"
	Parent = ".."
)

const (
	cdPrefix  = "$ cd "
	lsCommand = "$ ls"
	dirPrefix = "dir "
)

// Line is one parsed transcript statement.
type Line struct {
	Number int    // 1-based position in the transcript, 0 if unknown
	Kind   Kind   // which form the line takes
	Target string // cd target: Root, Parent or a directory name
	Name   string // entry name for DirEntry and FileEntry
	Size   uint64 // file size for FileEntry
}

// String renders the line in canonical transcript form.
func (l Line) String() string {
	switch l.Kind {
	case ChangeDir:
		return cdPrefix + l.Target
	case List:
		return lsCommand
	case DirEntry:
		return dirPrefix + l.Name
	case FileEntry:
		return strconv.FormatUint(l.Size, 10) + " " + l.Name
	default:
		return ""
	}
}

// Parse classifies a single transcript line. A trailing carriage return is
// ignored; anything else that does not match a form exactly is ErrMalformedLine.
func Parse(text string) (Line, error) {
	text = strings.TrimSuffix(text, "\r")

	switch {
	case text == lsCommand:
		return Line{Kind: List}, nil

	case strings.HasPrefix(text, cdPrefix):
		target := text[len(cdPrefix):]
		if target == Root || target == Parent {
			return Line{Kind: ChangeDir, Target: target}, nil
		}
		if err := validName(target); err != nil {
			return Line{}, err
		}
		return Line{Kind: ChangeDir, Target: target}, nil

	case strings.HasPrefix(text, "$"):
		return Line{}, fmt.Errorf("%w: unknown command", ErrMalformedLine)

	case strings.HasPrefix(text, dirPrefix):
		name := text[len(dirPrefix):]
		if err := validName(name); err != nil {
			return Line{}, err
		}
		return Line{Kind: DirEntry, Name: name}, nil
	}

	sizeText, name, ok := strings.Cut(text, " ")
	if !ok {
		return Line{}, ErrMalformedLine
	}
	size, err := strconv.ParseUint(sizeText, 10, 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: bad size %q", ErrMalformedLine, sizeText)
	}
	if err := validName(name); err != nil {
		return Line{}, err
	}
	return Line{Kind: FileEntry, Name: name, Size: size}, nil
}

// ParseAll parses every line of a transcript, numbering them from 1. The first
// failure is returned as a *ParseError.
func ParseAll(texts []string) ([]Line, error) {
	lines := make([]Line, 0, len(texts))
	for i, text := range texts {
		l, err := Parse(text)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: text, Err: err}
		}
		l.Number = i + 1
		lines = append(lines, l)
	}
	return lines, nil
}

func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrMalformedLine)
	case name == "." || name == Parent:
		return fmt.Errorf("%w: reserved name %q", ErrMalformedLine, name)
	case strings.Contains(name, "/"):
		return fmt.Errorf("%w: name %q contains a slash", ErrMalformedLine, name)
	}
	return nil
}
