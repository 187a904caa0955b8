package optree

import "sort"

// CodeObject is the body of one subroutine, addressable by identity. Names
// are many-to-one: several bindings may point at the same CodeObject.
type CodeObject struct {
	Body *Node
}

// NewCodeObject wraps a body root node.
func NewCodeObject(body *Node) *CodeObject {
	return &CodeObject{Body: body}
}

// Binding is one symbol-table entry. A binding either denotes a subroutine
// (code != nil) or plain data.
type Binding struct {
	Name string
	code *CodeObject
}

// NewSubroutineBinding creates a binding that denotes a subroutine.
func NewSubroutineBinding(name string, code *CodeObject) *Binding {
	return &Binding{Name: name, code: code}
}

// NewDataBinding creates a binding that does not denote a subroutine.
func NewDataBinding(name string) *Binding {
	return &Binding{Name: name}
}

// Code returns the code object this binding denotes, or nil for data
// bindings.
func (b *Binding) Code() *CodeObject {
	if b == nil {
		return nil
	}
	return b.code
}

// Namespace is a symbol table level: a mapping from name segment to either a
// nested Namespace or a Binding.
type Namespace struct {
	Name     string
	bindings map[string]*Binding
	children map[string]*Namespace
}

// NewNamespace creates an empty namespace level.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:     name,
		bindings: make(map[string]*Binding),
		children: make(map[string]*Namespace),
	}
}

// Bind adds or replaces a binding in this namespace.
func (ns *Namespace) Bind(b *Binding) {
	if b == nil || b.Name == "" {
		return
	}
	ns.bindings[b.Name] = b
}

// Child returns the nested namespace with the given name, creating it if
// needed.
func (ns *Namespace) Child(name string) *Namespace {
	if child, ok := ns.children[name]; ok {
		return child
	}
	child := NewNamespace(name)
	ns.children[name] = child
	return child
}

// Lookup returns the binding with the given name, or nil.
func (ns *Namespace) Lookup(name string) *Binding {
	return ns.bindings[name]
}

// BindingNames returns the binding names at this level, sorted.
func (ns *Namespace) BindingNames() []string {
	names := make([]string, 0, len(ns.bindings))
	for name := range ns.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChildNames returns the nested namespace names at this level, sorted.
func (ns *Namespace) ChildNames() []string {
	names := make([]string, 0, len(ns.children))
	for name := range ns.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Walk visits every binding reachable from ns in sorted name order, calling
// visit with the fully qualified name. Nested namespaces are visited after
// the bindings of their parent.
func (ns *Namespace) Walk(visit func(qualified string, b *Binding)) {
	ns.walk("", visit)
}

func (ns *Namespace) walk(prefix string, visit func(string, *Binding)) {
	qualify := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "::" + name
	}
	for _, name := range ns.BindingNames() {
		visit(qualify(name), ns.bindings[name])
	}
	for _, name := range ns.ChildNames() {
		ns.children[name].walk(qualify(name), visit)
	}
}
