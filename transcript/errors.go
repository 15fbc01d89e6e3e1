package transcript

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is returned for a line that matches no transcript form.
var ErrMalformedLine = errors.New("malformed transcript line")

// ParseError records where in a transcript a line failed to parse.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
