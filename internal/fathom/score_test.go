package fathom

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateScoreDegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		counters Counters
		counter  string
	}{
		{"zero tokens", Counters{}, "tokens"},
		{"zero expressions", Counters{Tokens: 3, Statements: 1, Subroutines: 1}, "expressions"},
		{"zero statements", Counters{Tokens: 3, Expressions: 1, Subroutines: 1}, "statements"},
		{"zero subroutines", Counters{Tokens: 3, Expressions: 1, Statements: 1}, "subroutines"},
		{"tokens checked before expressions", Counters{Statements: 1, Subroutines: 1}, "tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateScore(tt.counters)
			if err == nil {
				t.Fatalf("CalculateScore(%+v) succeeded, want DegenerateInputError", tt.counters)
			}
			var degenerate *DegenerateInputError
			if !errors.As(err, &degenerate) {
				t.Fatalf("error %v is not a DegenerateInputError", err)
			}
			if degenerate.Counter != tt.counter {
				t.Errorf("offending counter = %q, want %q", degenerate.Counter, tt.counter)
			}
		})
	}
}

func TestCalculateScoreFormula(t *testing.T) {
	// Counters from the end-to-end scenario: one statement boundary plus
	// one call site, with the implicit program-body subroutine.
	score, err := CalculateScore(Counters{Tokens: 4, Expressions: 1, Statements: 1, Subroutines: 1})
	if err != nil {
		t.Fatalf("CalculateScore failed: %v", err)
	}

	if score.TokensPerExpression != 4 {
		t.Errorf("tokens/expression = %v, want 4", score.TokensPerExpression)
	}
	if score.ExpressionsPerStatement != 1 {
		t.Errorf("expressions/statement = %v, want 1", score.ExpressionsPerStatement)
	}
	if score.StatementsPerSubroutine != 1 {
		t.Errorf("statements/subroutine = %v, want 1", score.StatementsPerSubroutine)
	}
	if math.Abs(score.Value-2.56) > 1e-9 {
		t.Errorf("score = %v, want 2.56", score.Value)
	}
	if score.Label != "very readable" {
		t.Errorf("label = %q, want %q", score.Label, "very readable")
	}
}

func TestLabelBrackets(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "trivial"},
		{0.99, "trivial"},
		{1.00, "easy"},
		{2.00, "very readable"},
		{2.56, "very readable"},
		{3.00, "readable"},
		{4.00, "easier than the norm"},
		{5.00, "mature"},
		{6.00, "complex"},
		{7.00, "very difficult"},
		{8.00, "obfuscated"},
		{42.5, "obfuscated"},
	}

	for _, tt := range tests {
		if got := labelForScore(tt.value); got != tt.expected {
			t.Errorf("labelForScore(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}
