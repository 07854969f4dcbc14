package result

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Every error returned by this package for a
// missing file, a malformed line or a zero total matches exactly one of them.
var (
	ErrNotFound = errors.New("result file not found")
	ErrFormat   = errors.New("malformed result file")
	ErrDivision = errors.New("zero total")
)

// NotFoundError reports a result file that does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error        { return e.Err }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FormatError reports a line that cannot be split into two tab-separated
// fields, or whose numeric field is not an integer.
type FormatError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error        { return e.Err }
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// DivisionError reports a header whose total is zero; no ratio can be
// computed for such a file.
type DivisionError struct {
	Path  string
	Label string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s: header %q has total 0, ratio is undefined", e.Path, e.Label)
}

func (e *DivisionError) Is(target error) bool { return target == ErrDivision }
