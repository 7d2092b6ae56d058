// Package convert implements the "convert" stage of the pipeline: it lifts
// recognized raw astnode.Mapping shapes into their typed astnode.Vertex
// variant, and performs an initial symbol-collection pass so the rewriter's
// symbol table is populated before rewriting begins. Unrecognized mapping
// shapes (no _type match) are left as Mapping, exactly as the rewriter's
// string-slice rule expects to still find a raw Subscript mapping pre-lift
// when its companion rule runs against the generic shape.
package convert

import (
	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/symtab"
)

// Lift walks tree depth-first and replaces each recognized Mapping with its
// typed equivalent, returning the (possibly replaced) root. Subscript
// mappings are deliberately left untouched — the rewriter's string-slice
// rule consumes that shape directly.
func Lift(tree astnode.Vertex) astnode.Vertex {
	return liftNode(tree)
}

func liftNode(v astnode.Vertex) astnode.Vertex {
	if v == nil {
		return nil
	}
	if m, ok := v.(*astnode.Mapping); ok {
		for _, key := range m.Order {
			child, _ := m.Get(key)
			m.Set(key, liftNode(child))
		}
		return liftMapping(m)
	}
	for _, slot := range astnode.ChildSlots(v) {
		slot.Set(liftNode(slot.Get()))
	}
	return v
}

func liftMapping(m *astnode.Mapping) astnode.Vertex {
	switch m.Type {
	case "Subscript":
		return m // left for internal/rewriter.StringSliceRule
	case "BinOp":
		op, _ := stringField(m, "op")
		left, _ := m.Get("left")
		right, _ := m.Get("right")
		return &astnode.BinOp{Op: op, Left: left, Right: right, Ln: m.Ln}
	case "Attribute":
		src, _ := m.Get("source")
		attr, _ := stringField(m, "attr")
		action, _ := stringField(m, "action")
		return &astnode.Attribute{Source: src, Attr: attr, Action: action, Ln: m.Ln}
	case "Call":
		callee, _ := m.Get("func")
		var args *astnode.Sequence
		if a, ok := m.Get("args"); ok {
			args, _ = a.(*astnode.Sequence)
		}
		var kwargs *astnode.Mapping
		if k, ok := m.Get("kwargs"); ok {
			kwargs, _ = k.(*astnode.Mapping)
		}
		return &astnode.Call{Callee: callee, Args: args, Kwargs: kwargs, Ln: m.Ln}
	case "Var", "Name":
		name, _ := stringField(m, "name")
		return &astnode.Var{Name: name, Ln: m.Ln}
	case "Import":
		aliases := map[string]string{}
		for _, key := range m.Order {
			if v, ok := m.Get(key); ok {
				if s, ok := v.(*astnode.String); ok {
					aliases[key] = s.Value
				}
			}
		}
		return &astnode.Import{Aliases: aliases, Ln: m.Ln}
	case "FunctionDef":
		name, _ := stringField(m, "name")
		var params, body *astnode.Sequence
		if p, ok := m.Get("params"); ok {
			params, _ = p.(*astnode.Sequence)
		}
		if b, ok := m.Get("body"); ok {
			body, _ = b.(*astnode.Sequence)
		}
		return &astnode.FunctionDef{Name: name, Params: params, Body: body, Ln: m.Ln}
	case "ClassDef":
		name, _ := stringField(m, "name")
		var body *astnode.Sequence
		if b, ok := m.Get("body"); ok {
			body, _ = b.(*astnode.Sequence)
		}
		return &astnode.ClassDef{Name: name, Body: body, Ln: m.Ln}
	case "If":
		cond, _ := m.Get("test")
		var then, els *astnode.Sequence
		if tb, ok := m.Get("body"); ok {
			then, _ = tb.(*astnode.Sequence)
		}
		if eb, ok := m.Get("orelse"); ok {
			els, _ = eb.(*astnode.Sequence)
		}
		if then == nil {
			then = astnode.NewSequence(m.Ln)
		}
		if els == nil {
			els = astnode.NewSequence(m.Ln)
		}
		return &astnode.If{Cond: cond, Then: then, Else: els, Ln: m.Ln}
	case "Return":
		val, _ := m.Get("value")
		return &astnode.Return{Value: val, Ln: m.Ln}
	case "Assign":
		target, _ := m.Get("target")
		val, _ := m.Get("value")
		return &astnode.Assign{Target: target, Value: val, Ln: m.Ln}
	case "Root", "Module":
		var body *astnode.Sequence
		if b, ok := m.Get("body"); ok {
			body, _ = b.(*astnode.Sequence)
		}
		if body == nil {
			body = astnode.NewSequence(m.Ln)
		}
		return &astnode.Root{Body: body, Ln: m.Ln}
	default:
		return m
	}
}

func stringField(m *astnode.Mapping, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	if s, ok := v.(*astnode.String); ok {
		return s.Value, true
	}
	return "", false
}

// CollectSymbols walks the converted tree and populates symbols with every
// binding introduced by an Assign, FunctionDef, ClassDef, or Import,
// entering and exiting scopes at function/class boundaries, so the rewriter's
// name-resolution rules have a populated symbol table before the first pass.
func CollectSymbols(tree astnode.Vertex, symbols *symtab.Stack) {
	collect(tree, symbols)
}

func collect(v astnode.Vertex, symbols *symtab.Stack) {
	switch n := v.(type) {
	case *astnode.Root:
		collectSeq(n.Body, symbols)
	case *astnode.Assign:
		collect(n.Value, symbols)
		if name, ok := n.Target.(*astnode.Var); ok {
			name.Value = n.Value
			symbols.Bind(name.Name, name, n.Line())
		}
	case *astnode.FunctionDef:
		symbols.Bind(n.Name, n, n.Line())
		symbols.EnterScope()
		collectSeq(n.Params, symbols)
		collectSeq(n.Body, symbols)
		symbols.ExitScope()
	case *astnode.ClassDef:
		symbols.Bind(n.Name, n, n.Line())
		symbols.EnterScope()
		collectSeq(n.Body, symbols)
		symbols.ExitScope()
	case *astnode.Import:
		for alias := range n.Aliases {
			symbols.Bind(alias, n, n.Line())
		}
	case *astnode.If:
		collect(n.Cond, symbols)
		collectSeq(n.Then, symbols)
		collectSeq(n.Else, symbols)
	case *astnode.Return:
		collect(n.Value, symbols)
	case *astnode.Call:
		collect(n.Callee, symbols)
		collectSeq(n.Args, symbols)
	case *astnode.Mapping:
		for _, key := range n.Order {
			if child, ok := n.Get(key); ok {
				collect(child, symbols)
			}
		}
	case *astnode.Sequence:
		collectSeq(n, symbols)
	}
}

func collectSeq(seq *astnode.Sequence, symbols *symtab.Stack) {
	if seq == nil {
		return
	}
	for _, item := range seq.Items {
		collect(item, symbols)
	}
}
