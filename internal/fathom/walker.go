package fathom

import (
	"fathom-go/internal/model/optree"

	"go.uber.org/zap"
)

// TreeWalker performs the full pre-order traversal: the program's main body
// first, then every collected subroutine body in worklist order. Each
// visited node is handed to the classifier exactly once; the tree is never
// mutated.
type TreeWalker struct {
	classifier *Classifier
	logger     *zap.Logger
	verbosity  int
}

// NewTreeWalker creates a walker feeding the given classifier.
func NewTreeWalker(classifier *Classifier, logger *zap.Logger, verbosity int) *TreeWalker {
	return &TreeWalker{
		classifier: classifier,
		logger:     logger,
		verbosity:  verbosity,
	}
}

// WalkProgram traverses the main body and the worklist. The main body counts
// as the implicit subroutine of the whole program.
func (w *TreeWalker) WalkProgram(main *optree.Node, worklist []*optree.CodeObject) {
	w.classifier.CountProgramBody()
	w.walk(main)
	for _, code := range worklist {
		w.walk(code.Body)
	}
}

func (w *TreeWalker) walk(node *optree.Node) {
	if node == nil {
		return
	}
	category := w.classifier.Visit(node)
	if w.verbosity >= 2 {
		w.logger.Debug("classified node",
			zap.Stringer("tag", node.Tag),
			zap.Stringer("category", category))
	}
	for _, child := range node.Children {
		w.walk(child)
	}
}
