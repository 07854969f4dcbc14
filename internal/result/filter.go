package result

// Evaluate keeps the entries of f whose ratio is strictly greater than theta.
func (f *File) Evaluate(theta float64) Evaluation {
	return Evaluation{
		Path:    f.Path,
		Label:   f.Header.Label,
		Theta:   theta,
		Total:   f.Header.Total,
		Entries: len(f.Entries),
		Matches: f.Select(theta),
	}
}

// Evaluate loads path and keeps the entries whose ratio is strictly greater
// than theta.
func Evaluate(path string, theta float64) (Evaluation, error) {
	f, err := Load(path)
	if err != nil {
		return Evaluation{}, err
	}
	return f.Evaluate(theta), nil
}

// Filter returns, in file order, the names of the entries of path whose
// count/total ratio is strictly greater than theta.
//
// It fails with ErrNotFound when path does not exist, ErrFormat when a line
// is malformed and ErrDivision when the header total is zero.
func Filter(path string, theta float64) ([]string, error) {
	ev, err := Evaluate(path, theta)
	if err != nil {
		return nil, err
	}
	return Names(ev.Matches), nil
}
