package fathom

// Score is the finalized readability verdict for one analysis run.
type Score struct {
	Value float64
	Label string

	TokensPerExpression     float64
	ExpressionsPerStatement float64
	StatementsPerSubroutine float64
}

// The weights are fixed and empirically chosen; they sum to 0.91 by design
// and are deliberately not normalized.
const (
	weightTokensPerExpression     = 0.55
	weightExpressionsPerStatement = 0.28
	weightStatementsPerSubroutine = 0.08
)

// scoreLabels maps half-open brackets [i, i+1) to their verdict; anything at
// or above the last threshold is "obfuscated".
var scoreLabels = []string{
	"trivial",
	"easy",
	"very readable",
	"readable",
	"easier than the norm",
	"mature",
	"complex",
	"very difficult",
	"obfuscated",
}

// CalculateScore validates the counters and computes the weighted
// readability score. Validation order is fixed: tokens, expressions,
// statements, subroutines; the first zero counter yields a
// DegenerateInputError naming it.
func CalculateScore(c Counters) (Score, error) {
	switch {
	case c.Tokens == 0:
		return Score{}, &DegenerateInputError{Counter: "tokens"}
	case c.Expressions == 0:
		return Score{}, &DegenerateInputError{Counter: "expressions"}
	case c.Statements == 0:
		return Score{}, &DegenerateInputError{Counter: "statements"}
	case c.Subroutines == 0:
		return Score{}, &DegenerateInputError{Counter: "subroutines"}
	}

	score := Score{
		TokensPerExpression:     float64(c.Tokens) / float64(c.Expressions),
		ExpressionsPerStatement: float64(c.Expressions) / float64(c.Statements),
		StatementsPerSubroutine: float64(c.Statements) / float64(c.Subroutines),
	}
	score.Value = weightTokensPerExpression*score.TokensPerExpression +
		weightExpressionsPerStatement*score.ExpressionsPerStatement +
		weightStatementsPerSubroutine*score.StatementsPerSubroutine
	score.Label = labelForScore(score.Value)
	return score, nil
}

// labelForScore maps a score onto its bracket. Brackets are half-open, so a
// score landing exactly on a boundary takes the higher bracket's label.
func labelForScore(value float64) string {
	for i, label := range scoreLabels {
		if value < float64(i+1) {
			return label
		}
	}
	return scoreLabels[len(scoreLabels)-1]
}
