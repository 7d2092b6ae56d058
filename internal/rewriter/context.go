// Package rewriter implements the convergent tree-rewriting engine: a FIFO
// visitor driver (Visitor) applying a fixed, ordered set of opportunistic
// rewrite rules (Rule) to every node in the tree until no rule fires for a
// full pass, plus a small convergence margin.
package rewriter

import (
	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/symtab"
)

// Context is the per-node unit of work a rule operates on: the node itself,
// its slot (for replacement), and a back-reference to the owning Visitor so
// a rule can consult the symbol table or mark modification.
type Context struct {
	Node     astnode.Vertex
	Parent   astnode.Vertex
	slot     astnode.Slot
	visitor  *Visitor
	Modified bool
}

// Replace swaps the context's node for replacement in its slot, and marks
// both the context and the owning visitor as modified — mirroring
// Visitor._replace_generic / _replace_root, which always set both flags
// together.
func (c *Context) Replace(replacement astnode.Vertex) {
	c.slot.Set(replacement)
	c.Node = replacement
	c.Modified = true
	c.visitor.modified = true
}

// Stack exposes the visitor's symbol table to rules that resolve names.
func (c *Context) Stack() *symtab.Stack { return c.visitor.symbols }

// MarkModified flags the pass as having made progress without replacing the
// node wholesale — for rules like variable/attribute resolution that mutate
// a field of the node in place rather than swapping the node itself out of
// its slot.
func (c *Context) MarkModified() {
	c.Modified = true
	c.visitor.modified = true
}
