package rewriter

import (
	"strings"

	"github.com/killvxk/aura/internal/astnode"
)

// ReplaceStringRule folds `"source".replace("a", "b")` into the resulting
// literal String. Extra or keyword arguments, or any non-String operand,
// defeat the rule.
func ReplaceStringRule() Rule {
	return func(ctx *Context) bool {
		call, ok := ctx.Node.(*astnode.Call)
		if !ok {
			return false
		}
		attr, ok := call.Callee.(*astnode.Attribute)
		if !ok || attr.Attr != "replace" {
			return false
		}
		source, ok := attr.Source.(*astnode.String)
		if !ok {
			return false
		}
		if call.Args == nil || len(call.Args.Items) != 2 {
			return false
		}
		from, ok := call.Args.Items[0].(*astnode.String)
		if !ok {
			return false
		}
		to, ok := call.Args.Items[1].(*astnode.String)
		if !ok {
			return false
		}
		if call.Kwargs != nil && len(call.Kwargs.Fields) > 0 {
			return false
		}

		replaced := strings.ReplaceAll(source.Value, from.Value, to.Value)
		ctx.Replace(astnode.NewString(replaced, call.Line()))
		return true
	}
}
