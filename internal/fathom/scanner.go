package fathom

import (
	"fathom-go/internal/model/optree"

	"go.uber.org/zap"
)

// SymbolScanner walks the program's symbol table once and counts how many
// distinct qualified names resolve to each code object. The occurrence map
// is what lets the collector detect re-exported subroutines.
type SymbolScanner struct {
	logger *zap.Logger

	occurrences map[*optree.CodeObject]int
	// representative qualified name per identity, first in walk order,
	// kept for diagnostics only
	names map[*optree.CodeObject]string
}

// NewSymbolScanner creates a scanner backed by the given logger.
func NewSymbolScanner(logger *zap.Logger) *SymbolScanner {
	return &SymbolScanner{
		logger:      logger,
		occurrences: make(map[*optree.CodeObject]int),
		names:       make(map[*optree.CodeObject]string),
	}
}

// Scan visits every binding reachable from the global namespace exactly
// once. Entries that do not denote a subroutine, or that resolve to a code
// object without a body, are skipped without aborting the scan.
func (s *SymbolScanner) Scan(globals *optree.Namespace) {
	if globals == nil {
		return
	}
	globals.Walk(func(qualified string, b *optree.Binding) {
		code := b.Code()
		if code == nil {
			return
		}
		if code.Body == nil {
			s.logger.Debug("skipping unresolvable symbol",
				zap.String("name", qualified))
			return
		}
		s.occurrences[code]++
		if _, seen := s.names[code]; !seen {
			s.names[code] = qualified
		}
	})
}

// Occurrences returns the per-identity binding multiplicity map.
func (s *SymbolScanner) Occurrences() map[*optree.CodeObject]int {
	return s.occurrences
}

// RepresentativeName returns one qualified name for the identity, for
// diagnostic reporting.
func (s *SymbolScanner) RepresentativeName(code *optree.CodeObject) string {
	return s.names[code]
}
