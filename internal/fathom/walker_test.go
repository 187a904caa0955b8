package fathom

import (
	"testing"

	"fathom-go/internal/model/optree"

	"go.uber.org/zap"
)

func TestWalkerSingleStatementTree(t *testing.T) {
	classifier := NewClassifier()
	walker := NewTreeWalker(classifier, zap.NewNop(), 0)

	// Walk the body only, without the implicit program-body credit, to
	// observe the raw per-node contributions.
	walker.walk(optree.NewNode(optree.TagStatement))

	got := classifier.Counters()
	want := Counters{Tokens: 1, Statements: 1}
	if got != want {
		t.Errorf("counters = %+v, want %+v", got, want)
	}
}

func TestWalkerVisitsEveryNodeOnce(t *testing.T) {
	// Three statement boundaries at different depths: the statement counter
	// equals the node count exactly when nothing is dropped or repeated.
	tree := optree.NewNode(optree.TagStatement,
		optree.NewNode(optree.TagStatement),
		optree.NewNode(optree.TagNoop,
			optree.NewNode(optree.TagStatement)))

	classifier := NewClassifier()
	walker := NewTreeWalker(classifier, zap.NewNop(), 0)
	walker.walk(tree)

	if got := classifier.Counters().Statements; got != 3 {
		t.Errorf("statements = %d, want 3", got)
	}
}

func TestWalkerIncludesWorklist(t *testing.T) {
	main := optree.NewNode(optree.TagStatement)
	sub := optree.NewCodeObject(optree.NewNode(optree.TagSubExit))

	classifier := NewClassifier()
	walker := NewTreeWalker(classifier, zap.NewNop(), 0)
	walker.WalkProgram(main, []*optree.CodeObject{sub})

	got := classifier.Counters()
	// stmt: +1 token +1 statement; subexit: +4 tokens +1 expr +1 sub;
	// implicit program body: +1 sub.
	want := Counters{Tokens: 5, Expressions: 1, Statements: 1, Subroutines: 2}
	if got != want {
		t.Errorf("counters = %+v, want %+v", got, want)
	}
}

func TestCountersMonotonicPerVisit(t *testing.T) {
	nodes := []*optree.Node{
		optree.NewNode(optree.TagStatement),
		optree.NewNode(optree.TagNoop),
		optree.NewNode(optree.TagCall),
		optree.NewNode(optree.TagWhileLoop),
		optree.NewNode(optree.TagPrimitive),
	}

	classifier := NewClassifier()
	prev := classifier.Counters()
	for _, node := range nodes {
		classifier.Visit(node)
		cur := classifier.Counters()
		if cur.Tokens < prev.Tokens || cur.Expressions < prev.Expressions ||
			cur.Statements < prev.Statements || cur.Subroutines < prev.Subroutines {
			t.Fatalf("counters decreased: %+v -> %+v", prev, cur)
		}
		prev = cur
	}
}
