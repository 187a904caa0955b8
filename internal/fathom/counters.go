package fathom

import "fathom-go/internal/model/optree"

// Counters are the four running totals of one analysis run. They only ever
// increase during a run and are reset simply by starting a fresh run.
type Counters struct {
	Tokens      int
	Expressions int
	Statements  int
	Subroutines int
}

func (c *Counters) apply(inc Increments) {
	c.Tokens += inc.Tokens
	c.Expressions += inc.Expressions
	c.Statements += inc.Statements
	c.Subroutines += inc.Subroutines
}

// Classifier assigns categories to nodes and accumulates the corresponding
// increments into its counters. It is the only mutator of Counters.
type Classifier struct {
	counters Counters
}

// NewClassifier creates a classifier with zeroed counters.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Visit classifies one node and applies its increments. The category is
// returned for diagnostics.
func (cl *Classifier) Visit(node *optree.Node) Category {
	category := Classify(node)
	cl.counters.apply(IncrementsFor(category))
	return category
}

// CountProgramBody records the program's top-level body as the implicit
// subroutine of the whole program.
func (cl *Classifier) CountProgramBody() {
	cl.counters.Subroutines++
}

// Counters returns a snapshot of the accumulated totals.
func (cl *Classifier) Counters() Counters {
	return cl.counters
}
