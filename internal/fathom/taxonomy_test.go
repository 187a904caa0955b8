package fathom

import (
	"testing"

	"fathom-go/internal/model/optree"
)

func TestClassifyExactTags(t *testing.T) {
	tests := []struct {
		name     string
		tag      optree.ShapeTag
		expected Category
	}{
		{"noop is ignorable", optree.TagNoop, CategoryIgnorable},
		{"argument mark is ignorable", optree.TagArgMark, CategoryIgnorable},
		{"statement boundary", optree.TagStatement, CategoryStatementBoundary},
		{"subroutine exit", optree.TagSubExit, CategorySubroutineExit},
		{"scope exit pairs with entry", optree.TagScopeExit, CategoryScopeExit},
		{"protected block entry", optree.TagTryEnter, CategoryProtectedBlock},
		{"inline code block", optree.TagInlineBlock, CategoryInlineBlock},
		{"bare block scope", optree.TagBlockEnter, CategoryBareBlock},
		{"call site", optree.TagCall, CategoryCallSite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(optree.NewNode(tt.tag))
			if got != tt.expected {
				t.Errorf("Classify(%v) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestClassifyFamilyFallback(t *testing.T) {
	tests := []struct {
		name     string
		tag      optree.ShapeTag
		expected Category
	}{
		{"while loop", optree.TagWhileLoop, CategoryLoop},
		{"foreach loop", optree.TagForeachLoop, CategoryLoop},
		{"c-style loop", optree.TagCStyleLoop, CategoryLoop},
		{"list operand", optree.TagListOp, CategoryListOp},
		{"binary", optree.TagBinaryOp, CategoryBinaryOp},
		{"logical and", optree.TagLogicalAnd, CategoryLogicalOp},
		{"logical or", optree.TagLogicalOr, CategoryLogicalOp},
		{"ternary", optree.TagTernary, CategoryTernary},
		{"unary", optree.TagUnaryOp, CategoryUnaryOp},
		{"primitive falls to default", optree.TagPrimitive, CategoryUnclassified},
		{"unknown falls to default", optree.TagUnknown, CategoryUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(optree.NewNode(tt.tag))
			if got != tt.expected {
				t.Errorf("Classify(%v) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestIncrementsTable(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		expected Increments
	}{
		{"ignorable contributes nothing", CategoryIgnorable, Increments{}},
		{"statement boundary", CategoryStatementBoundary, Increments{Tokens: 1, Statements: 1}},
		{"subroutine exit", CategorySubroutineExit, Increments{Tokens: 4, Expressions: 1, Subroutines: 1}},
		{"scope exit contributes nothing", CategoryScopeExit, Increments{}},
		{"protected block", CategoryProtectedBlock, Increments{Tokens: 3, Expressions: 1}},
		{"inline block", CategoryInlineBlock, Increments{Tokens: 3, Expressions: 1}},
		{"bare block", CategoryBareBlock, Increments{Tokens: 3, Expressions: 1}},
		{"call site", CategoryCallSite, Increments{Tokens: 3, Expressions: 1}},
		{"loop", CategoryLoop, Increments{Tokens: 5, Expressions: 2}},
		{"list operand", CategoryListOp, Increments{Tokens: 3, Expressions: 1}},
		{"binary", CategoryBinaryOp, Increments{Tokens: 1, Expressions: 1}},
		{"logical", CategoryLogicalOp, Increments{Tokens: 1, Expressions: 1}},
		{"ternary", CategoryTernary, Increments{Tokens: 5, Expressions: 2}},
		{"unary", CategoryUnaryOp, Increments{Tokens: 1, Expressions: 1}},
		{"unclassified is one token", CategoryUnclassified, Increments{Tokens: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncrementsFor(tt.category)
			if got != tt.expected {
				t.Errorf("IncrementsFor(%v) = %+v, want %+v", tt.category, got, tt.expected)
			}
		})
	}
}
