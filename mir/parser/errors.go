package parser

import (
	"fmt"

	"golang.org/x/xerrors"
)

// SyntaxError is raised for malformed input: it propagates to the
// caller with a byte offset and a human-readable "expected ..."
// string.
type SyntaxError struct {
	Offset   int
	Expected string
	Path     string
}

func (e *SyntaxError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: expected %s", e.Path, e.Offset, e.Expected)
	}
	return fmt.Sprintf("offset %d: expected %s", e.Offset, e.Expected)
}

// parsePanic is the sentinel value recover() looks for in Parse; any
// other panic value propagates as a genuine programmer error rather
// than being reinterpreted as a SyntaxError.
type parsePanic struct{ err *SyntaxError }

func (p *parser) errorf(format string, args ...any) {
	panic(parsePanic{&SyntaxError{
		Offset:   p.tok.pos,
		Expected: fmt.Sprintf(format, args...),
	}})
}

// wrap attaches path to a SyntaxError and folds it into the
// golang.org/x/xerrors chain expected by callers that want %w-style
// unwrapping.
func wrap(path string, err *SyntaxError) error {
	err.Path = path
	return xerrors.Errorf("parsing %s: %w", path, err)
}
