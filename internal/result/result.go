package result

// Header is the first line of a result file.
type Header struct {
	Label string
	Total int
}

// Entry is one data line of a result file.
type Entry struct {
	Name  string
	Count int
	Line  int // 1-based line in the source file
}

// File is a fully parsed result file. Entries keep file order.
type File struct {
	Path    string
	Header  Header
	Entries []Entry
}

// Ratio returns e.Count / f.Header.Total.
// Parse guarantees Total != 0 for files it returns.
func (f *File) Ratio(e Entry) float64 {
	return float64(e.Count) / float64(f.Header.Total)
}

// Select returns the entries whose ratio is strictly greater than theta,
// in file order. The returned slice is never nil.
func (f *File) Select(theta float64) []Entry {
	out := make([]Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		if f.Ratio(e) > theta {
			out = append(out, e)
		}
	}
	return out
}

// Overflow returns the entries counting more k-mers than the header total.
func (f *File) Overflow() []Entry {
	var out []Entry
	for _, e := range f.Entries {
		if e.Count > f.Header.Total {
			out = append(out, e)
		}
	}
	return out
}

// Evaluation is the outcome of filtering one result file.
type Evaluation struct {
	Path    string
	Label   string
	Theta   float64
	Total   int
	Entries int // number of data lines scanned
	Matches []Entry
}

// Ratio returns the hit ratio of a matched entry.
func (ev Evaluation) Ratio(e Entry) float64 {
	return float64(e.Count) / float64(ev.Total)
}

// Names returns the entry names in order. The returned slice is never nil.
func Names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
