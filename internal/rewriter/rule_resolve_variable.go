package rewriter

import "github.com/killvxk/aura/internal/astnode"

// ResolveVariableRule: when an Attribute's source is a name bound in the
// symbol table, replace the source with the bound value (materializing a
// literal so later rules such as inline-decode can pattern-match on it),
// unless the binding was introduced on the same source line as the
// attribute access — a same-line self-reference never rewrites.
func ResolveVariableRule() Rule {
	return func(ctx *Context) bool {
		attr, ok := ctx.Node.(*astnode.Attribute)
		if !ok {
			return false
		}
		name, ok := attr.Source.(*astnode.Var)
		if !ok {
			return false
		}

		target, line, found := ctx.Stack().Lookup(name.Name)
		if !found {
			return false
		}
		if line == attr.Line() {
			return false
		}

		attr.Original = attr.Source
		if bound, ok := target.(*astnode.Var); ok && bound.Value != nil {
			attr.Source = bound.Value
		} else {
			attr.Source = target
		}
		ctx.MarkModified()
		return true
	}
}
