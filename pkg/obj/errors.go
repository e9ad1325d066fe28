package obj

import "fmt"

// ParseError describes a failure while decoding OBJ text. Line is the
// 1-based input line the failure belongs to, or 0 when the problem is not
// tied to a single line.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// WriteError describes a refused or failed encode
type WriteError struct {
	Reason string
	Err    error
}

func (e *WriteError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
