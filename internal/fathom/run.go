package fathom

import (
	"time"

	"fathom-go/internal/model/optree"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result holds everything one analysis run produced.
type Result struct {
	RunID      string    `json:"run_id"`
	Counters   Counters  `json:"counters"`
	Score      Score     `json:"score"`
	ComputedAt time.Time `json:"computed_at"`

	// SkippedReexports lists the qualified names excluded as re-exported,
	// sorted. Populated regardless of verbosity; the reporter decides
	// whether to show it.
	SkippedReexports []string `json:"skipped_reexports,omitempty"`
}

// AnalysisRun owns all mutable state of one analysis: the classifier's
// counters, the occurrence map, and the worklist. Nothing survives the run,
// so back-to-back analyses of different programs cannot contaminate each
// other.
type AnalysisRun struct {
	id        string
	logger    *zap.Logger
	verbosity int
}

// NewAnalysisRun creates a run with a fresh identity. Verbosity: 0 silent,
// 1 reports skipped re-exported names, >= 2 adds per-node diagnostics.
func NewAnalysisRun(logger *zap.Logger, verbosity int) *AnalysisRun {
	return &AnalysisRun{
		id:        uuid.NewString(),
		logger:    logger,
		verbosity: verbosity,
	}
}

// ID returns the run's identifier.
func (r *AnalysisRun) ID() string {
	return r.id
}

// Analyze runs the four-stage pipeline over the program's main body and
// symbol table. The stages are strictly sequential: the scanner must finish
// before the collector applies the multiplicity filter, and the walker needs
// the complete worklist before scoring. Only a degenerate counter aborts the
// run.
func (r *AnalysisRun) Analyze(main *optree.Node, globals *optree.Namespace) (*Result, error) {
	scanner := NewSymbolScanner(r.logger)
	scanner.Scan(globals)

	collector := NewSubroutineCollector(r.logger)
	worklist, skipped := collector.Collect(globals, scanner.Occurrences())

	classifier := NewClassifier()
	walker := NewTreeWalker(classifier, r.logger, r.verbosity)
	walker.WalkProgram(main, worklist)

	counters := classifier.Counters()
	score, err := CalculateScore(counters)
	if err != nil {
		return nil, err
	}

	r.logger.Info("analysis complete",
		zap.String("run_id", r.id),
		zap.Int("tokens", counters.Tokens),
		zap.Int("expressions", counters.Expressions),
		zap.Int("statements", counters.Statements),
		zap.Int("subroutines", counters.Subroutines),
		zap.Float64("score", score.Value),
		zap.String("label", score.Label))

	return &Result{
		RunID:            r.id,
		Counters:         counters,
		Score:            score,
		ComputedAt:       time.Now(),
		SkippedReexports: skipped,
	}, nil
}
