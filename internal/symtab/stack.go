// Package symtab implements the lexical "stack" symbol table the rewriter
// consults to resolve a name reference to the node currently bound to it.
// Scopes push and pop over a slice, the same shape as a parent-tracking
// visitor stack, generalized from "current parent node" to "current scope
// of bindings".
package symtab

import "github.com/killvxk/aura/internal/astnode"

// binding is one name's entry in a scope: the node it resolves to and the
// source line the binding was introduced on, needed by the resolve-variable
// rule's same-line self-reference guard.
type binding struct {
	value astnode.Vertex
	line  int
}

// scope is a single lexical frame: one function, class, or module body.
type scope struct {
	names map[string]binding
}

func newScope() *scope {
	return &scope{names: make(map[string]binding)}
}

// Stack is a LIFO chain of scopes. The zero value is not usable; use New.
type Stack struct {
	frames []*scope
}

// New returns a Stack with a single module-level scope already pushed.
func New() *Stack {
	s := &Stack{}
	s.EnterScope()
	return s
}

// EnterScope pushes a new, empty scope — called on FunctionDef and ClassDef
// boundaries during conversion. The node model has no comprehension
// variant, so comprehensions do not open a scope.
func (s *Stack) EnterScope() {
	s.frames = append(s.frames, newScope())
}

// ExitScope pops the innermost scope. Popping the module scope is a no-op;
// the stack never unwinds past module level.
func (s *Stack) ExitScope() {
	if len(s.frames) <= 1 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Bind records that name currently resolves to v, introduced at line ln, in
// the innermost scope. The symbol table never takes ownership of v — it
// only ever stores a reference already rooted in the tree.
func (s *Stack) Bind(name string, v astnode.Vertex, ln int) {
	top := s.frames[len(s.frames)-1]
	top.names[name] = binding{value: v, line: ln}
}

// Lookup walks the scope chain from innermost to outermost and returns the
// first binding found for name, its introducing line, and whether it was
// found at all.
func (s *Stack) Lookup(name string) (astnode.Vertex, int, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i].names[name]; ok {
			return b.value, b.line, true
		}
	}
	return nil, 0, false
}

// Depth reports how many scopes are currently pushed, for diagnostics and
// tests that assert scope boundaries are entered/exited in balance.
func (s *Stack) Depth() int { return len(s.frames) }
