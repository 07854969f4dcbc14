// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kmereval/internal/result"
)

// Config controls one evaluation run.
type Config struct {
	Inputs []string
	Theta  float64
}

// Stats summarizes a run.
type Stats struct {
	Files   int // evaluations visited
	Matches int // total matching entries across files
}

// ForEachEvaluation loads every input in order, filters it by cfg.Theta and
// calls visit with the result. ctx is checked before each file. It returns
// the first error encountered (including context cancellation).
func ForEachEvaluation(
	ctx context.Context,
	cfg Config,
	log *zap.Logger,
	visit func(result.Evaluation) error,
) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var st Stats
	for _, path := range cfg.Inputs {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		f, err := result.Load(path)
		if err != nil {
			return st, fmt.Errorf("evaluate %s: %w", path, err)
		}
		for _, e := range f.Overflow() {
			log.Warn("count exceeds header total",
				zap.String("path", path),
				zap.Int("line", e.Line),
				zap.String("name", e.Name),
				zap.Int("count", e.Count),
				zap.Int("total", f.Header.Total),
			)
		}
		ev := f.Evaluate(cfg.Theta)
		log.Debug("evaluated result file",
			zap.String("path", path),
			zap.String("label", ev.Label),
			zap.Int("total", ev.Total),
			zap.Int("entries", ev.Entries),
			zap.Int("matches", len(ev.Matches)),
			zap.Float64("theta", ev.Theta),
		)
		if err := visit(ev); err != nil {
			return st, err
		}
		st.Files++
		st.Matches += len(ev.Matches)
	}
	return st, nil
}
