package dirtree

import (
	"errors"
	"fmt"

	"github.com/dendrascience/dirsize/transcript"
)

// Sentinel errors for package dirtree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Parsing
	ErrMalformedLine = transcript.ErrMalformedLine

	// Navigation
	ErrNavigation       = errors.New("cannot move above the root directory")
	ErrUnknownDirectory = errors.New("no such directory")

	// Listing consistency
	ErrInconsistentEntry = errors.New("entry conflicts with an earlier listing")
	ErrDuplicateListing  = errors.New("directory listed more than once")
)

// BuildError reports the transcript line at which building stopped.
type BuildError struct {
	Line int    // 1-based line number, 0 when the line was not numbered
	Text string // canonical text of the line
	Path string // current directory when the line was applied
	Err  error
}

func (e *BuildError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q in %s: %v", e.Line, e.Text, e.Path, e.Err)
	}
	return fmt.Sprintf("%q in %s: %v", e.Text, e.Path, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
