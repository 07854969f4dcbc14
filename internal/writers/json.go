package writers

import (
	"encoding/json"
	"io"

	"kmereval/internal/result"
	"kmereval/pkg/api"
)

func init() {
	Register("json", func(w io.Writer, _ Options) Writer { return &jsonWriter{w: w} })
	Register("jsonl", func(w io.Writer, _ Options) Writer { return &jsonlWriter{enc: json.NewEncoder(w)} })
}

// ToAPIEvaluation converts an evaluation to the stable wire schema (v1).
func ToAPIEvaluation(ev result.Evaluation) api.EvaluationV1 {
	v := api.EvaluationV1{
		Path:    ev.Path,
		Label:   ev.Label,
		Theta:   ev.Theta,
		Total:   ev.Total,
		Entries: ev.Entries,
		Matches: make([]api.MatchV1, 0, len(ev.Matches)),
	}
	for _, e := range ev.Matches {
		v.Matches = append(v.Matches, api.MatchV1{Name: e.Name, Count: e.Count, Ratio: ev.Ratio(e)})
	}
	return v
}

// jsonWriter buffers every evaluation and emits one indented array on Close.
type jsonWriter struct {
	w    io.Writer
	list []api.EvaluationV1
}

func (jw *jsonWriter) Write(ev result.Evaluation) error {
	jw.list = append(jw.list, ToAPIEvaluation(ev))
	return nil
}

func (jw *jsonWriter) Close() error {
	if jw.list == nil {
		jw.list = []api.EvaluationV1{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw.list)
}

// jsonlWriter streams one JSON object per line.
type jsonlWriter struct{ enc *json.Encoder }

func (jw *jsonlWriter) Write(ev result.Evaluation) error {
	return jw.enc.Encode(ToAPIEvaluation(ev))
}

func (jw *jsonlWriter) Close() error { return nil }
