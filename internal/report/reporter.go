package report

import (
	"fmt"
	"strings"

	"fathom-go/internal/fathom"
)

// Reporter renders an analysis result as plain text: the four raw counters
// with singular/plural-correct labels, the score with its verdict, and, at
// verbosity >= 1, the names excluded as re-exported.
type Reporter struct {
	verbosity int
}

// NewReporter creates a reporter with the given verbosity level.
func NewReporter(verbosity int) *Reporter {
	return &Reporter{verbosity: verbosity}
}

// Render formats one result.
func (r *Reporter) Render(result *fathom.Result) string {
	var sb strings.Builder

	if r.verbosity >= 1 && len(result.SkippedReexports) > 0 {
		sb.WriteString("skipped as re-exported:\n")
		for _, name := range result.SkippedReexports {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
	}

	c := result.Counters
	fmt.Fprintf(&sb, "%s\n", CountLine(c.Tokens, "token"))
	fmt.Fprintf(&sb, "%s\n", CountLine(c.Expressions, "expression"))
	fmt.Fprintf(&sb, "%s\n", CountLine(c.Statements, "statement"))
	fmt.Fprintf(&sb, "%s\n", CountLine(c.Subroutines, "subroutine"))
	fmt.Fprintf(&sb, "readability is %.2f (%s)\n", result.Score.Value, result.Score.Label)

	return sb.String()
}

// CountLine renders a counter with its singular or plural noun.
func CountLine(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
