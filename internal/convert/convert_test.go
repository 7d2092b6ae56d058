package convert

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftBinOpMapping(t *testing.T) {
	m := astnode.NewMapping("BinOp", 1)
	m.Set("op", astnode.NewString("add", 1))
	m.Set("left", astnode.NewString("a", 1))
	m.Set("right", astnode.NewString("b", 1))

	lifted := Lift(m)
	op, ok := lifted.(*astnode.BinOp)
	require.True(t, ok)
	assert.Equal(t, "add", op.Op)
}

func TestLiftLeavesSubscriptAsMapping(t *testing.T) {
	m := astnode.NewMapping("Subscript", 1)
	m.Set("value", astnode.NewString("abc", 1))

	lifted := Lift(m)
	_, ok := lifted.(*astnode.Mapping)
	assert.True(t, ok, "Subscript must stay a Mapping for the string-slice rule")
}

func TestLiftUnknownTypeLeftAsMapping(t *testing.T) {
	m := astnode.NewMapping("SomeFutureNodeKind", 1)
	lifted := Lift(m)
	_, ok := lifted.(*astnode.Mapping)
	assert.True(t, ok)
}

func TestCollectSymbolsBindsAssignAndEntersFunctionScope(t *testing.T) {
	body := astnode.NewSequence(1,
		&astnode.Assign{Target: &astnode.Var{Name: "x", Ln: 1}, Value: astnode.NewString("hi", 1), Ln: 1},
	)
	fn := &astnode.FunctionDef{Name: "f", Body: astnode.NewSequence(2,
		&astnode.Assign{Target: &astnode.Var{Name: "y", Ln: 2}, Value: astnode.NewString("inner", 2), Ln: 2},
	), Ln: 2}
	root := &astnode.Root{Body: astnode.NewSequence(0, body.Items[0], fn)}

	symbols := symtab.New()
	CollectSymbols(root, symbols)

	v, _, ok := symbols.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "hi", v.(*astnode.Var).Value.(*astnode.String).Value)

	_, _, ok = symbols.Lookup("y")
	assert.False(t, ok, "function-local binding must not leak to module scope after collection")

	assert.Equal(t, 1, symbols.Depth(), "scopes must be balanced after collection")
}

func TestCollectSymbolsBindsImportAliases(t *testing.T) {
	imp := &astnode.Import{Aliases: map[string]string{"b64": "base64"}, Ln: 1}
	root := &astnode.Root{Body: astnode.NewSequence(0, imp)}

	symbols := symtab.New()
	CollectSymbols(root, symbols)

	target, _, ok := symbols.Lookup("b64")
	require.True(t, ok)
	assert.Same(t, imp, target.(*astnode.Import))
}
