package rewriter

import "github.com/killvxk/aura/internal/astnode"

// BinOpRule folds a BinOp(add) of two String operands into a single
// String. The right operand concatenates before the left by default —
// reversed from what a reader would expect — kept configurable rather than
// silently corrected; Options.BinOpAddRightThenLeft selects it.
func BinOpRule(opts Options) Rule {
	return func(ctx *Context) bool {
		op, ok := ctx.Node.(*astnode.BinOp)
		if !ok || op.Op != "add" {
			return false
		}
		left, lok := op.Left.(*astnode.String)
		right, rok := op.Right.(*astnode.String)
		if !lok || !rok {
			return false
		}

		var folded string
		if opts.BinOpAddRightThenLeft {
			folded = right.Value + left.Value
		} else {
			folded = left.Value + right.Value
		}
		ctx.Replace(astnode.NewString(folded, op.Line()))
		return true
	}
}
