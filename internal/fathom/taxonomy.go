package fathom

import "fathom-go/internal/model/optree"

// Category is the structural classification assigned to one op-tree node.
// Exactly one category applies per node.
type Category int

const (
	CategoryIgnorable Category = iota
	CategoryStatementBoundary
	CategorySubroutineExit
	CategoryScopeExit
	CategoryProtectedBlock
	CategoryInlineBlock
	CategoryBareBlock
	CategoryCallSite
	CategoryLoop
	CategoryListOp
	CategoryBinaryOp
	CategoryLogicalOp
	CategoryTernary
	CategoryUnaryOp
	CategoryUnclassified
)

var categoryNames = map[Category]string{
	CategoryIgnorable:         "ignorable",
	CategoryStatementBoundary: "statement-boundary",
	CategorySubroutineExit:    "subroutine-exit",
	CategoryScopeExit:         "scope-exit",
	CategoryProtectedBlock:    "protected-block-entry",
	CategoryInlineBlock:       "inline-code-block",
	CategoryBareBlock:         "bare-block-scope",
	CategoryCallSite:          "call-site",
	CategoryLoop:              "loop",
	CategoryListOp:            "list-operand",
	CategoryBinaryOp:          "binary",
	CategoryLogicalOp:         "logical",
	CategoryTernary:           "ternary",
	CategoryUnaryOp:           "unary",
	CategoryUnclassified:      "unclassified",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unclassified"
}

// Increments are the fixed per-category counter contributions. The constants
// approximate the number of surface-syntax tokens and independent
// sub-expressions each construct represents in the original source text.
type Increments struct {
	Tokens      int
	Expressions int
	Statements  int
	Subroutines int
}

// exactCategories maps shape tags with an exact classification. Tags absent
// from this table fall through to the shape-family checks in Classify.
var exactCategories = map[optree.ShapeTag]Category{
	optree.TagNoop:        CategoryIgnorable,
	optree.TagArgMark:     CategoryIgnorable,
	optree.TagStatement:   CategoryStatementBoundary,
	optree.TagSubExit:     CategorySubroutineExit,
	optree.TagScopeExit:   CategoryScopeExit,
	optree.TagTryEnter:    CategoryProtectedBlock,
	optree.TagInlineBlock: CategoryInlineBlock,
	optree.TagBlockEnter:  CategoryBareBlock,
	optree.TagCall:        CategoryCallSite,
}

// categoryIncrements holds the fixed contribution of every category.
var categoryIncrements = map[Category]Increments{
	CategoryIgnorable:         {},
	CategoryStatementBoundary: {Tokens: 1, Statements: 1},
	CategorySubroutineExit:    {Tokens: 4, Expressions: 1, Subroutines: 1},
	CategoryScopeExit:         {},
	CategoryProtectedBlock:    {Tokens: 3, Expressions: 1},
	CategoryInlineBlock:       {Tokens: 3, Expressions: 1},
	CategoryBareBlock:         {Tokens: 3, Expressions: 1},
	CategoryCallSite:          {Tokens: 3, Expressions: 1},
	CategoryLoop:              {Tokens: 5, Expressions: 2},
	CategoryListOp:            {Tokens: 3, Expressions: 1},
	CategoryBinaryOp:          {Tokens: 1, Expressions: 1},
	CategoryLogicalOp:         {Tokens: 1, Expressions: 1},
	CategoryTernary:           {Tokens: 5, Expressions: 2},
	CategoryUnaryOp:           {Tokens: 1, Expressions: 1},
	CategoryUnclassified:      {Tokens: 1},
}

// Classify assigns a category to one node: exact tag lookup first, then the
// shape-family checks in fixed priority order. Every node gets a category;
// unrecognized shapes land in CategoryUnclassified.
func Classify(node *optree.Node) Category {
	if node == nil {
		return CategoryIgnorable
	}
	if category, ok := exactCategories[node.Tag]; ok {
		return category
	}
	switch tag := node.Tag; {
	case tag.IsLoopFamily():
		return CategoryLoop
	case tag.IsListFamily():
		return CategoryListOp
	case tag.IsBinaryFamily():
		return CategoryBinaryOp
	case tag.IsLogicalFamily():
		return CategoryLogicalOp
	case tag.IsTernaryFamily():
		return CategoryTernary
	case tag.IsUnaryFamily():
		return CategoryUnaryOp
	default:
		return CategoryUnclassified
	}
}

// IncrementsFor returns the fixed contribution of a category.
func IncrementsFor(category Category) Increments {
	return categoryIncrements[category]
}
