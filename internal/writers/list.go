package writers

import (
	"fmt"
	"io"
	"strings"

	"kmereval/internal/result"
)

func init() { Register("list", newListWriter) }

// listWriter prints one bracketed, quoted list of matching names per
// evaluation: ['a', 'b'] or [] when nothing passed.
type listWriter struct{ w io.Writer }

func newListWriter(w io.Writer, _ Options) Writer { return &listWriter{w: w} }

func (lw *listWriter) Write(ev result.Evaluation) error {
	_, err := io.WriteString(lw.w, FormatList(result.Names(ev.Matches))+"\n")
	return err
}

func (lw *listWriter) Close() error { return nil }

// FormatList renders names as a list literal with quoted elements.
func FormatList(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(n))
	}
	b.WriteByte(']')
	return b.String()
}

// quote uses single quotes unless s contains a single quote and no double
// quote. Backslashes, the chosen quote and control characters are escaped.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == q:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
