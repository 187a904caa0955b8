package frontend

import (
	"fathom-go/internal/model/optree"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	"go.uber.org/zap"
)

// Program is the front end's output: the op-tree of the main body plus the
// global symbol table, ready for analysis.
type Program struct {
	Main    *optree.Node
	Globals *optree.Namespace
}

// Translator builds an op-tree and symbol table from one parsed file.
// Top-level function and method declarations become symbol-table bindings;
// everything else lands in the main body. Nested function forms in
// expression position translate as inline code blocks.
type Translator struct {
	content []byte
	logger  *zap.Logger
	globals *optree.Namespace
}

// NewTranslator creates a translator over the given file content.
func NewTranslator(content []byte, logger *zap.Logger) *Translator {
	return &Translator{
		content: content,
		logger:  logger,
		globals: optree.NewNamespace("main"),
	}
}

// Translate converts the parse tree rooted at tsRoot. moduleName scopes the
// declared subroutines; empty means the global namespace itself.
func (t *Translator) Translate(tsRoot *tree_sitter.Node, moduleName string) *Program {
	ns := t.globals
	if moduleName != "" {
		ns = t.globals.Child(moduleName)
	}

	main := optree.NewNode(optree.TagNoop)
	t.translateScope(tsRoot, main, ns)

	return &Program{Main: main, Globals: t.globals}
}

// translateScope splits a declaration scope: function-like declarations are
// registered as bindings, class declarations open a nested namespace, and
// the remaining statements join the enclosing body in source order.
func (t *Translator) translateScope(tsNode *tree_sitter.Node, body *optree.Node, ns *optree.Namespace) {
	if tsNode == nil {
		return
	}
	for i := uint(0); i < tsNode.NamedChildCount(); i++ {
		child := tsNode.NamedChild(i)
		kind := child.Kind()
		switch {
		case skipKinds[kind]:
			continue
		case functionKinds[kind]:
			t.registerFunction(child, ns)
		case classKinds[kind]:
			t.registerClass(child, ns)
		default:
			body.AddChild(t.translateNode(child))
		}
	}
}

// registerFunction binds the declaration's body as a code object under its
// declared name. Declarations without a resolvable name or body are skipped;
// that is expected for forward declarations and interface members.
func (t *Translator) registerFunction(tsNode *tree_sitter.Node, ns *optree.Namespace) {
	name := t.declarationName(tsNode)
	if name == "" {
		t.logger.Debug("skipping unnamed function declaration",
			zap.String("kind", tsNode.Kind()))
		return
	}
	bodyNode := childByFieldName(tsNode, "body")
	if bodyNode == nil {
		return
	}

	body := optree.NewNode(optree.TagNoop)
	body.AddChild(t.translateNode(bodyNode))
	body.AddChild(optree.NewNode(optree.TagSubExit))

	ns.Bind(optree.NewSubroutineBinding(name, optree.NewCodeObject(body)))
}

// registerClass opens a namespace named after the class and registers the
// methods of its body there.
func (t *Translator) registerClass(tsNode *tree_sitter.Node, ns *optree.Namespace) {
	name := t.declarationName(tsNode)
	if name == "" {
		return
	}
	bodyNode := childByFieldName(tsNode, "body")
	if bodyNode == nil {
		return
	}
	classNS := ns.Child(name)
	// class bodies hold statements too (field initializers); they are
	// ignored here, only method declarations matter for the worklist
	discard := optree.NewNode(optree.TagNoop)
	t.translateScope(bodyNode, discard, classNS)
}

// translateNode converts one parse-tree node and its subtree, preserving
// left-to-right child order. Unnamed nodes (punctuation, keywords) produce
// nothing.
func (t *Translator) translateNode(tsNode *tree_sitter.Node) *optree.Node {
	if tsNode == nil {
		return nil
	}
	kind := tsNode.Kind()
	if skipKinds[kind] {
		return nil
	}

	tag := shapeForKind(kind)
	if functionKinds[kind] {
		tag = optree.TagInlineBlock
	}

	node := &optree.Node{Tag: tag, Range: toRange(tsNode)}
	for i := uint(0); i < tsNode.NamedChildCount(); i++ {
		node.AddChild(t.translateNode(tsNode.NamedChild(i)))
	}
	if scopedKinds[tag] {
		node.AddChild(optree.NewNode(optree.TagScopeExit))
	}
	return node
}

// declarationName extracts the declared name of a function, method, or
// class node.
func (t *Translator) declarationName(tsNode *tree_sitter.Node) string {
	nameNode := childByFieldName(tsNode, "name")
	if nameNode == nil {
		for _, kind := range []string{"identifier", "field_identifier", "property_identifier"} {
			if nameNode = childByKind(tsNode, kind); nameNode != nil {
				break
			}
		}
	}
	if nameNode == nil {
		return ""
	}
	return string(t.content[nameNode.StartByte():nameNode.EndByte()])
}

func childByFieldName(node *tree_sitter.Node, fieldName string) *tree_sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.FieldNameForChild(uint32(i)) == fieldName {
			return node.Child(i)
		}
	}
	return nil
}

func childByKind(node *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

func toRange(node *tree_sitter.Node) optree.Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return optree.Range{
		StartLine: int(start.Row),
		StartCol:  int(start.Column),
		EndLine:   int(end.Row),
		EndCol:    int(end.Column),
	}
}
