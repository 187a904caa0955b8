package frontend

import (
	"testing"

	"fathom-go/internal/model/optree"

	"go.uber.org/zap"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		expected LanguageType
	}{
		{"Go file", "/path/to/main.go", Go},
		{"JavaScript file", "/path/to/app.js", JavaScript},
		{"JSX file", "/path/to/component.jsx", JavaScript},
		{"TypeScript file", "/path/to/service.ts", TypeScript},
		{"Python file", "/path/to/script.py", Python},
		{"Java file", "/path/to/Main.java", Java},
		{"Uppercase extension", "/path/to/MAIN.GO", Go},
		{"No extension", "/path/to/README", Unknown},
		{"Unsupported extension", "/path/to/data.txt", Unknown},
	}

	fp := NewFileParser(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fp.DetectLanguage(tt.filePath); got != tt.expected {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tt.filePath, got, tt.expected)
			}
		})
	}
}

func TestLanguageTypeRoundTrip(t *testing.T) {
	for _, lt := range []LanguageType{Go, JavaScript, TypeScript, Python, Java} {
		if got := NewLanguageTypeFromString(lt.String()); got != lt {
			t.Errorf("round trip for %v gives %v", lt, got)
		}
	}
	if got := NewLanguageTypeFromString("cobol"); got != Unknown {
		t.Errorf("unknown language maps to %v", got)
	}
}

func TestShapeForKind(t *testing.T) {
	tests := []struct {
		kind     string
		expected optree.ShapeTag
	}{
		{"expression_statement", optree.TagStatement},
		{"while_statement", optree.TagWhileLoop},
		{"for_statement", optree.TagCStyleLoop},
		{"for_in_statement", optree.TagForeachLoop},
		{"if_statement", optree.TagTernary},
		{"binary_expression", optree.TagBinaryOp},
		{"boolean_operator", optree.TagLogicalAnd},
		{"unary_expression", optree.TagUnaryOp},
		{"argument_list", optree.TagListOp},
		{"call_expression", optree.TagCall},
		{"block", optree.TagBlockEnter},
		{"try_statement", optree.TagTryEnter},
		{"lambda", optree.TagInlineBlock},
		{"identifier", optree.TagPrimitive},
		{"made_up_kind", optree.TagPrimitive},
	}

	for _, tt := range tests {
		if got := shapeForKind(tt.kind); got != tt.expected {
			t.Errorf("shapeForKind(%q) = %v, want %v", tt.kind, got, tt.expected)
		}
	}
}

func TestParseGoSource(t *testing.T) {
	source := []byte(`package sample

func add(a, b int) int {
	return a + b
}

func sub(a, b int) int {
	return a - b
}
`)

	fp := NewFileParser(zap.NewNop())
	program, err := fp.ParseSource(source, Go, "sample")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}

	var subs []string
	program.Globals.Walk(func(qualified string, b *optree.Binding) {
		if b.Code() != nil {
			subs = append(subs, qualified)
		}
	})
	if len(subs) != 2 {
		t.Errorf("declared subroutines = %v, want add and sub", subs)
	}
	if program.Main == nil {
		t.Fatal("program has no main body")
	}
}

func TestParsePythonSource(t *testing.T) {
	source := []byte(`def greet(name):
    return "hello " + name

greet("world")
`)

	fp := NewFileParser(zap.NewNop())
	program, err := fp.ParseSource(source, Python, "sample")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}

	found := false
	program.Globals.Walk(func(qualified string, b *optree.Binding) {
		if b.Code() != nil && qualified == "sample::greet" {
			found = true
		}
	})
	if !found {
		t.Error("greet was not registered in the symbol table")
	}
	if program.Main.Size() < 2 {
		t.Errorf("main body too small: %d nodes", program.Main.Size())
	}
}
