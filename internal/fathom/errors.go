package fathom

import "fmt"

// DegenerateInputError reports that a counter required for scoring was zero
// at finalization. An empty or pathological program yields no meaningful
// score; callers must surface this, never default it away.
type DegenerateInputError struct {
	Counter string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s counter is zero", e.Counter)
}
