// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmereval/internal/result"
)

// Writer renders evaluations in one output format.
type Writer interface {
	Write(ev result.Evaluation) error
	// Close emits anything buffered. It does not close the underlying io.Writer.
	Close() error
}

// Options are format-independent rendering switches.
type Options struct {
	Header bool // header line for tabular formats
}

// Factory builds a Writer bound to w.
type Factory func(w io.Writer, opt Options) Writer

// Writer registry (format → factory). Register in init() blocks of the
// individual writer files.
var evaluationWriters = map[string]Factory{}

// Register adds or replaces (last wins) the factory for format.
func Register(format string, f Factory) { evaluationWriters[format] = f }

// New returns the writer registered for format.
func New(format string, w io.Writer, opt Options) (Writer, error) {
	f, ok := evaluationWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w, opt), nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(evaluationWriters))
	for k := range evaluationWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
