// pkg/api/evaluation_v1.go
package api

// MatchV1 is one entry that passed the ratio threshold.
type MatchV1 struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// EvaluationV1 is the stable JSON/JSONL schema for one filtered result file.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EvaluationV1 struct {
	Path    string    `json:"path"`
	Label   string    `json:"label"`
	Theta   float64   `json:"theta"`
	Total   int       `json:"total"`
	Entries int       `json:"entries"`
	Matches []MatchV1 `json:"matches"`
}
