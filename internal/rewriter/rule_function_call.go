package rewriter

import "github.com/killvxk/aura/internal/astnode"

// RewriteFunctionCallRule tries, in order, import-alias materialization,
// variable-to-callee substitution, and direct callee substitution. Each
// branch is independent and the first one that applies wins.
func RewriteFunctionCallRule() Rule {
	return func(ctx *Context) bool {
		call, ok := ctx.Node.(*astnode.Call)
		if !ok {
			return false
		}

		if materializeImportAlias(call) {
			ctx.MarkModified()
			return true
		}
		if substituteVarCallee(ctx, call) {
			return true
		}
		if substituteDirectCallee(ctx, call) {
			return true
		}
		return false
	}
}

// materializeImportAlias: if the call has no resolved full name yet, its
// callee is an Import, and its Original back-link is a bare name, resolve
// FullName via the import's alias mapping.
func materializeImportAlias(call *astnode.Call) bool {
	if call.FullName != "" {
		return false
	}
	imp, ok := call.Callee.(*astnode.Import)
	if !ok {
		return false
	}
	origName, ok := call.Original.(*astnode.Var)
	if !ok {
		return false
	}
	full, ok := imp.Aliases[origName.Name]
	if !ok {
		return false
	}
	call.FullName = full
	return true
}

// substituteVarCallee resolves a Var callee against the symbol table and
// updates FullName when the target yields a new name, guarding against
// same-line self-reference.
func substituteVarCallee(ctx *Context, call *astnode.Call) bool {
	v, ok := call.Callee.(*astnode.Var)
	if !ok {
		return false
	}
	target, line, found := ctx.Stack().Lookup(v.Name)
	if !found {
		return false
	}

	var name string
	switch t := target.(type) {
	case *astnode.Import:
		n, ok := t.Aliases[v.Name]
		if !ok {
			return false
		}
		name = n
	case *astnode.FunctionDef:
		name = t.Name
	default:
		return false
	}

	if name == "" || name == call.FullName || line == call.Line() {
		return false
	}
	call.FullName = name
	ctx.MarkModified()
	return true
}

// substituteDirectCallee replaces a bare-name callee with the bound node
// from the symbol table, preserving the prior name in Original.
func substituteDirectCallee(ctx *Context, call *astnode.Call) bool {
	v, ok := call.Callee.(*astnode.Var)
	if !ok {
		return false
	}
	target, line, found := ctx.Stack().Lookup(v.Name)
	if !found || line == call.Line() {
		return false
	}
	call.Original = call.Callee
	call.Callee = target
	ctx.MarkModified()
	return true
}
