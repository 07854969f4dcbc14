package result

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// sample names are file paths; 1 MiB is far beyond any real line
const maxLine = 1 << 20

// Load opens path and parses it. The file is closed on every return path.
func Load(path string) (*File, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc, path)
}

// Parse reads a result file from r. path is only used in error messages.
//
// Each line is trimmed before it is split on tabs. Blank data lines are
// skipped; columns after the second are ignored. A zero total fails with
// *DivisionError as soon as the header is read.
func Parse(r io.Reader, path string) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &FormatError{Path: path, Line: 1, Reason: "missing header line"}
	}
	label, total, err := splitLine(strings.TrimSpace(sc.Text()))
	if err != nil {
		err.Path, err.Line = path, 1
		err.Reason = "header: " + err.Reason
		return nil, err
	}
	if total == 0 {
		return nil, &DivisionError{Path: path, Label: label}
	}

	f := &File{Path: path, Header: Header{Label: label, Total: total}}
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, count, err := splitLine(line)
		if err != nil {
			err.Path, err.Line = path, ln
			return nil, err
		}
		f.Entries = append(f.Entries, Entry{Name: name, Count: count, Line: ln})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", path, ln+1, err)
	}
	return f, nil
}

// splitLine returns field 0 and the integer value of field 1.
// The returned error has Path and Line unset.
func splitLine(line string) (string, int, *FormatError) {
	first, rest, ok := strings.Cut(line, "\t")
	if !ok {
		return "", 0, &FormatError{Reason: "missing tab-separated second field"}
	}
	second, _, _ := strings.Cut(rest, "\t")
	n, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return "", 0, &FormatError{Reason: fmt.Sprintf("field 2 %q is not an integer", second), Err: err}
	}
	return first, n, nil
}
