package frontend

import "fathom-go/internal/model/optree"

// kindShapes maps tree-sitter node kinds onto op-tree shape tags. One shared
// table covers all supported grammars; kinds absent from every table fall
// through to TagPrimitive and are counted conservatively downstream.
var kindShapes = map[string]optree.ShapeTag{
	// Statement-level constructs.
	"expression_statement":       optree.TagStatement,
	"short_var_declaration":      optree.TagStatement,
	"var_declaration":            optree.TagStatement,
	"const_declaration":          optree.TagStatement,
	"assignment_statement":       optree.TagStatement,
	"assignment":                 optree.TagStatement,
	"return_statement":           optree.TagStatement,
	"break_statement":            optree.TagStatement,
	"continue_statement":         optree.TagStatement,
	"local_variable_declaration": optree.TagStatement,
	"lexical_declaration":        optree.TagStatement,
	"variable_declaration":       optree.TagStatement,
	"pass_statement":             optree.TagStatement,
	"raise_statement":            optree.TagStatement,
	"throw_statement":            optree.TagStatement,
	"delete_statement":           optree.TagStatement,
	"global_statement":           optree.TagStatement,

	// Loops.
	"for_statement":          optree.TagCStyleLoop,
	"while_statement":        optree.TagWhileLoop,
	"do_statement":           optree.TagWhileLoop,
	"range_clause":           optree.TagForeachLoop,
	"for_in_statement":       optree.TagForeachLoop,
	"for_of_statement":       optree.TagForeachLoop,
	"enhanced_for_statement": optree.TagForeachLoop,

	// Conditionals.
	"if_statement":           optree.TagTernary,
	"if_expression":          optree.TagTernary,
	"conditional_expression": optree.TagTernary,
	"ternary_expression":     optree.TagTernary,
	"switch_statement":       optree.TagTernary,
	"type_switch_statement":  optree.TagTernary,
	"match_statement":        optree.TagTernary,
	"select_statement":       optree.TagTernary,

	// Binary operations.
	"binary_expression":     optree.TagBinaryOp,
	"binary_operator":       optree.TagBinaryOp,
	"comparison_operator":   optree.TagBinaryOp,
	"assignment_expression": optree.TagBinaryOp,
	"augmented_assignment":  optree.TagBinaryOp,
	"index_expression":      optree.TagBinaryOp,
	"subscript_expression":  optree.TagBinaryOp,
	"subscript":             optree.TagBinaryOp,
	"selector_expression":   optree.TagBinaryOp,
	"member_expression":     optree.TagBinaryOp,
	"field_access":          optree.TagBinaryOp,
	"attribute":             optree.TagBinaryOp,

	// Short-circuit operations.
	"boolean_operator":   optree.TagLogicalAnd,
	"logical_expression": optree.TagLogicalAnd,

	// Unary operations.
	"unary_expression":   optree.TagUnaryOp,
	"unary_operator":     optree.TagUnaryOp,
	"not_operator":       optree.TagUnaryOp,
	"update_expression":  optree.TagUnaryOp,
	"pointer_expression": optree.TagUnaryOp,
	"await_expression":   optree.TagUnaryOp,
	"await":              optree.TagUnaryOp,

	// List-operand operations.
	"argument_list":        optree.TagListOp,
	"expression_list":      optree.TagListOp,
	"composite_literal":    optree.TagListOp,
	"slice_expression":     optree.TagListOp,
	"array":                optree.TagListOp,
	"list":                 optree.TagListOp,
	"tuple":                optree.TagListOp,
	"dictionary":           optree.TagListOp,
	"object":               optree.TagListOp,
	"array_initializer":    optree.TagListOp,
	"formal_parameters":    optree.TagListOp,
	"parameter_list":       optree.TagListOp,
	"parameters":           optree.TagListOp,
	"template_string":      optree.TagListOp,
	"string_concatenation": optree.TagListOp,

	// Call sites.
	"call_expression":            optree.TagCall,
	"call":                       optree.TagCall,
	"method_invocation":          optree.TagCall,
	"object_creation_expression": optree.TagCall,
	"new_expression":             optree.TagCall,

	// Blocks and scopes.
	"block":           optree.TagBlockEnter,
	"statement_block": optree.TagBlockEnter,

	// Protected blocks.
	"try_statement":                optree.TagTryEnter,
	"try_expression":               optree.TagTryEnter,
	"with_statement":               optree.TagTryEnter,
	"defer_statement":              optree.TagTryEnter,
	"try_with_resources_statement": optree.TagTryEnter,

	// Inline code blocks: deferred or anonymous bodies.
	"func_literal":        optree.TagInlineBlock,
	"lambda":              optree.TagInlineBlock,
	"arrow_function":      optree.TagInlineBlock,
	"function_expression": optree.TagInlineBlock,
	"go_statement":        optree.TagInlineBlock,
	"lambda_expression":   optree.TagInlineBlock,
}

// scopedKinds are the shapes whose translation gets a paired scope-exit
// marker appended after the children.
var scopedKinds = map[optree.ShapeTag]bool{
	optree.TagBlockEnter:  true,
	optree.TagTryEnter:    true,
	optree.TagInlineBlock: true,
}

// functionKinds are declaration forms that define a named subroutine when
// they appear at module or class level.
var functionKinds = map[string]bool{
	"function_declaration": true,
	"function_definition":  true,
	"method_declaration":   true,
	"method_definition":    true,
}

// classKinds introduce a nested namespace for their methods.
var classKinds = map[string]bool{
	"class_declaration": true,
	"class_definition":  true,
}

// skipKinds contribute nothing to the op-tree.
var skipKinds = map[string]bool{
	"comment":                 true,
	"line_comment":            true,
	"block_comment":           true,
	"package_clause":          true,
	"package_declaration":     true,
	"import_declaration":      true,
	"import_statement":        true,
	"import_from_statement":   true,
	"future_import_statement": true,
}

// shapeForKind resolves a tree-sitter kind to its shape tag, defaulting to
// TagPrimitive.
func shapeForKind(kind string) optree.ShapeTag {
	if tag, ok := kindShapes[kind]; ok {
		return tag
	}
	return optree.TagPrimitive
}
