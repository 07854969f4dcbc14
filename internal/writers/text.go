package writers

import (
	"fmt"
	"io"

	"kmereval/internal/result"
)

func init() {
	Register("text", func(w io.Writer, _ Options) Writer { return &textWriter{w: w} })
	Register("tsv", func(w io.Writer, opt Options) Writer { return &tsvWriter{w: w, header: opt.Header} })
}

// textWriter prints one matching name per line.
type textWriter struct{ w io.Writer }

func (tw *textWriter) Write(ev result.Evaluation) error {
	for _, e := range ev.Matches {
		if _, err := fmt.Fprintln(tw.w, e.Name); err != nil {
			return err
		}
	}
	return nil
}

func (tw *textWriter) Close() error { return nil }

// TSVHeader is the column header of the tsv format.
const TSVHeader = "path\tname\tcount\ttotal\tratio"

// tsvWriter prints one row per match across all evaluations.
type tsvWriter struct {
	w      io.Writer
	header bool
	wrote  bool
}

func (tw *tsvWriter) writeHeader() error {
	if tw.wrote || !tw.header {
		return nil
	}
	tw.wrote = true
	_, err := fmt.Fprintln(tw.w, TSVHeader)
	return err
}

func (tw *tsvWriter) Write(ev result.Evaluation) error {
	if err := tw.writeHeader(); err != nil {
		return err
	}
	for _, e := range ev.Matches {
		_, err := fmt.Fprintf(tw.w, "%s\t%s\t%d\t%d\t%.6g\n",
			ev.Path, e.Name, e.Count, ev.Total, ev.Ratio(e))
		if err != nil {
			return err
		}
	}
	return nil
}

// Close writes the header if no evaluation arrived, so the output is still a
// valid (empty) table.
func (tw *tsvWriter) Close() error { return tw.writeHeader() }
