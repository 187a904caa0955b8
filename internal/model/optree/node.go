package optree

// ShapeTag identifies the structural shape of a single op-tree node. The set
// is closed: front ends must map every source construct onto one of these
// tags, and anything they cannot place maps to TagPrimitive.
type ShapeTag int

const (
	TagUnknown ShapeTag = iota

	// Marker and control shapes with exact classifications.
	TagNoop        // compiler padding, contributes nothing
	TagArgMark     // argument-stack marker, contributes nothing
	TagStatement   // statement boundary
	TagSubExit     // subroutine exit
	TagScopeExit   // paired with its entry marker, contributes nothing
	TagTryEnter    // protected-block entry
	TagInlineBlock // inline code block (eval-style)
	TagBlockEnter  // bare block scope entry
	TagCall        // call site

	// Loop family.
	TagWhileLoop
	TagForeachLoop
	TagCStyleLoop

	// List-operand family.
	TagListOp

	// Binary family.
	TagBinaryOp

	// Logical / short-circuit family.
	TagLogicalAnd
	TagLogicalOr

	// Ternary / conditional family.
	TagTernary

	// Unary family.
	TagUnaryOp

	// Primitive operation, no finer shape.
	TagPrimitive
)

var tagNames = map[ShapeTag]string{
	TagUnknown:     "unknown",
	TagNoop:        "noop",
	TagArgMark:     "argmark",
	TagStatement:   "statement",
	TagSubExit:     "subexit",
	TagScopeExit:   "scopeexit",
	TagTryEnter:    "tryenter",
	TagInlineBlock: "inlineblock",
	TagBlockEnter:  "blockenter",
	TagCall:        "call",
	TagWhileLoop:   "whileloop",
	TagForeachLoop: "foreachloop",
	TagCStyleLoop:  "cstyleloop",
	TagListOp:      "listop",
	TagBinaryOp:    "binaryop",
	TagLogicalAnd:  "logicaland",
	TagLogicalOr:   "logicalor",
	TagTernary:     "ternary",
	TagUnaryOp:     "unaryop",
	TagPrimitive:   "primitive",
}

func (t ShapeTag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsLoopFamily reports whether the tag belongs to the loop shape family.
func (t ShapeTag) IsLoopFamily() bool {
	return t == TagWhileLoop || t == TagForeachLoop || t == TagCStyleLoop
}

// IsListFamily reports whether the tag belongs to the list-operand family.
func (t ShapeTag) IsListFamily() bool {
	return t == TagListOp
}

// IsBinaryFamily reports whether the tag belongs to the binary family.
func (t ShapeTag) IsBinaryFamily() bool {
	return t == TagBinaryOp
}

// IsLogicalFamily reports whether the tag belongs to the short-circuit family.
func (t ShapeTag) IsLogicalFamily() bool {
	return t == TagLogicalAnd || t == TagLogicalOr
}

// IsTernaryFamily reports whether the tag belongs to the conditional family.
func (t ShapeTag) IsTernaryFamily() bool {
	return t == TagTernary
}

// IsUnaryFamily reports whether the tag belongs to the unary family.
func (t ShapeTag) IsUnaryFamily() bool {
	return t == TagUnaryOp
}

// Range is a half-open source span, retained for diagnostics only.
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Node is one element of the parsed program tree. Children are owned
// exclusively by their parent; the tree is acyclic.
type Node struct {
	Tag      ShapeTag
	Name     string
	Range    Range
	Children []*Node
}

// NewNode creates a node with the given tag and children.
func NewNode(tag ShapeTag, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// NewNamedNode creates a leaf node carrying a diagnostic name.
func NewNamedNode(tag ShapeTag, name string) *Node {
	return &Node{Tag: tag, Name: name}
}

// AddChild appends a child, preserving left-to-right order.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Size returns the total number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Size()
	}
	return total
}
