package fathom

import (
	"sort"

	"fathom-go/internal/model/optree"

	"go.uber.org/zap"
)

// SubroutineCollector performs the second pass over the symbol table. It may
// only run after SymbolScanner has fully populated the occurrence map: the
// multiplicity filter is meaningless on a partial map.
type SubroutineCollector struct {
	logger *zap.Logger
}

// NewSubroutineCollector creates a collector backed by the given logger.
func NewSubroutineCollector(logger *zap.Logger) *SubroutineCollector {
	return &SubroutineCollector{logger: logger}
}

// Collect builds the traversal worklist: bodies of subroutines whose
// identity is reachable through exactly one binding. Identities with
// multiplicity > 1 are treated as re-exported, not locally authored, and are
// excluded; their qualified names are returned sorted for deterministic
// reporting. The heuristic may misfire on intentional local aliases; that
// ambiguity is accepted as-is.
func (c *SubroutineCollector) Collect(globals *optree.Namespace, occurrences map[*optree.CodeObject]int) (worklist []*optree.CodeObject, skipped []string) {
	if globals == nil {
		return nil, nil
	}
	globals.Walk(func(qualified string, b *optree.Binding) {
		code := b.Code()
		if code == nil || code.Body == nil {
			return
		}
		if occurrences[code] != 1 {
			skipped = append(skipped, qualified)
			return
		}
		worklist = append(worklist, code)
	})
	sort.Strings(skipped)
	if len(skipped) > 0 {
		c.logger.Debug("excluded re-exported subroutines",
			zap.Int("count", len(skipped)))
	}
	return worklist, skipped
}
