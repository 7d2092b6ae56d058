package rewriter

import (
	"log"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/symtab"
)

// Rule is one opportunistic rewrite rule. It returns true if it rewrote
// ctx.Node — either replacing it via ctx.Replace or mutating it in place and
// calling ctx.MarkModified — and false if it does not apply to this node. A rule must never return an error: a rule-local failure (a
// decode error, a missing symbol, a type mismatch) is always "not
// applicable", never a traversal-aborting condition.
type Rule func(ctx *Context) bool

// DefaultRules is the fixed, ordered rule set applied to every node, first
// match wins.
func DefaultRules(opts Options) []Rule {
	return []Rule{
		BinOpRule(opts),
		ResolveVariableRule(),
		StringSliceRule(),
		InlineDecodeRule(),
		RewriteFunctionCallRule(),
		ReplaceStringRule(),
	}
}

// Options pins behaviors that otherwise would be ambiguous defaults.
type Options struct {
	// BinOpAddRightThenLeft concatenates the right operand before the left
	// for BinOp(add) when true (the default). Set false to use
	// conventional left-then-right concatenation.
	BinOpAddRightThenLeft bool
	// ConvergencePasses is how many additional quiet passes are made after
	// the first quiet pass that follows a modifying pass, before the
	// traversal is considered converged. The margin is also counted down by
	// the very first pass, so when that pass is already quiet only
	// ConvergencePasses-1 further passes are made (none for the default 1).
	// 0 is allowed for an audited rule set known to never need a safety
	// margin.
	ConvergencePasses int
	// MaxIterations caps the number of full passes; a tree that has not
	// converged by then is returned as-is, with a log line, and Traversed
	// is still set.
	MaxIterations int
	// MaxQueueSize caps how many pending contexts a single pass may queue;
	// nodes beyond the cap are dropped with a warning, not an error.
	MaxQueueSize int
	// DebugLines, when non-empty, gates a diagnostic log line printed every
	// time a node whose source line appears in the set is visited or
	// rewritten, for tracing a specific construct through convergence.
	DebugLines []int
}

func (o Options) debugLine(line int) bool {
	for _, l := range o.DebugLines {
		if l == line {
			return true
		}
	}
	return false
}

// DefaultOptions returns the traversal bounds (500 iterations, a 10000-node
// per-pass queue cap, a one-pass convergence margin) and the chosen default
// for the BinOp operand order (see DESIGN.md).
func DefaultOptions() Options {
	return Options{
		BinOpAddRightThenLeft: true,
		ConvergencePasses:     1,
		MaxIterations:         500,
		MaxQueueSize:          10000,
	}
}

// Visitor drives the convergent rewriting loop over a tree. Each instance
// owns its own queue, symbol table, and tree pointer — instances are never
// shared, so running one per file concurrently needs no synchronization.
type Visitor struct {
	tree      astnode.Vertex
	rules     []Rule
	symbols   *symtab.Stack
	opts      Options
	modified  bool
	iteration int
	Traversed bool
	Silent    bool
}

// New returns a Visitor ready to traverse tree with rules, using symbols as
// its symbol table (typically populated by a prior conversion pass).
func New(tree astnode.Vertex, rules []Rule, symbols *symtab.Stack, opts Options) *Visitor {
	if symbols == nil {
		symbols = symtab.New()
	}
	return &Visitor{tree: tree, rules: rules, symbols: symbols, opts: opts}
}

// Tree returns the current root of the tree, which may have been replaced
// wholesale by a rule operating on the root context.
func (v *Visitor) Tree() astnode.Vertex { return v.tree }

// Iterations reports how many full passes Traverse made.
func (v *Visitor) Iterations() int { return v.iteration }

type queueItem struct {
	node   astnode.Vertex
	parent astnode.Vertex
	slot   astnode.Slot
}

// Traverse runs the convergent rewriting loop: repeat full FIFO passes
// over the tree, applying the rule set to each node, until a pass both
// makes no modification and the convergence margin is exhausted, or
// MaxIterations is reached.
func (v *Visitor) Traverse() astnode.Vertex {
	v.iteration = 0
	convergence := v.opts.ConvergencePasses

	for v.iteration == 0 || v.modified || convergence > 0 {
		if !v.modified && convergence > 0 {
			convergence--
		} else if v.modified {
			convergence = v.opts.ConvergencePasses
		}
		v.modified = false

		queue := []queueItem{{node: v.tree, slot: astnode.RootSlot(&v.tree)}}
		processed := map[astnode.Vertex]bool{}
		dropped := 0

		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]

			if processed[item.node] {
				continue
			}
			processed[item.node] = true

			ctx := &Context{Node: item.node, Parent: item.parent, slot: item.slot, visitor: v}
			line := item.node.Line()
			v.applyRules(ctx)

			if v.opts.debugLine(line) {
				log.Printf("Debug line %d: visited %T, modified=%t", line, item.node, ctx.Modified)
			}

			if ctx.Modified {
				continue
			}

			for _, slot := range astnode.ChildSlots(ctx.Node) {
				child := slot.Get()
				if child == nil {
					continue
				}
				if len(queue)+1 > v.opts.MaxQueueSize {
					dropped++
					continue
				}
				queue = append(queue, queueItem{node: child, parent: ctx.Node, slot: slot})
			}
		}

		if dropped > 0 && !v.Silent {
			log.Printf("Warning: AST queue size exceeded, dropped %d traversal nodes", dropped)
		}

		v.iteration++
		if v.iteration >= v.opts.MaxIterations {
			if (v.modified || convergence > 0) && !v.Silent {
				log.Printf("Info: AST traversal stopped at the iteration cap (%d passes)", v.iteration)
			}
			break
		}
	}

	v.Traversed = true
	return v.tree
}

// applyRules runs the fixed rule set against ctx, first match wins.
func (v *Visitor) applyRules(ctx *Context) {
	for _, rule := range v.rules {
		if rule(ctx) {
			return
		}
	}
}
