package rewriter

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinOpRuleIgnoresNonAddOperators(t *testing.T) {
	op := &astnode.BinOp{Op: "sub", Left: astnode.NewString("a", 1), Right: astnode.NewString("b", 1)}
	ctx := &Context{Node: op, visitor: &Visitor{}}
	assert.False(t, BinOpRule(DefaultOptions())(ctx))
}

func TestBinOpRuleIgnoresMixedOperandTypes(t *testing.T) {
	op := &astnode.BinOp{Op: "add", Left: astnode.NewString("a", 1), Right: &astnode.Number{Value: 1}}
	ctx := &Context{Node: op, visitor: &Visitor{}}
	assert.False(t, BinOpRule(DefaultOptions())(ctx))
}

func TestStringSliceNegativeStep(t *testing.T) {
	m := astnode.NewMapping("Subscript", 1)
	m.Set("value", astnode.NewString("abcdef", 1))
	sliceMap := astnode.NewMapping("Slice", 1)
	sliceMap.Set("step", &astnode.Number{Value: -1})
	m.Set("slice", sliceMap)

	v := runToConvergence(m, nil, DefaultOptions())
	result, ok := v.Tree().(*astnode.String)
	require.True(t, ok)
	assert.Equal(t, "fedcba", result.Value)
}

func TestStringSliceDefaultsWhenBoundsAbsent(t *testing.T) {
	m := astnode.NewMapping("Subscript", 1)
	m.Set("value", astnode.NewString("hello", 1))
	m.Set("slice", astnode.NewMapping("Slice", 1))

	v := runToConvergence(m, nil, DefaultOptions())
	result, ok := v.Tree().(*astnode.String)
	require.True(t, ok)
	assert.Equal(t, "hello", result.Value)
}

func TestOptionsDebugLineMatchesOnlyConfiguredLines(t *testing.T) {
	opts := Options{DebugLines: []int{3, 7}}
	assert.True(t, opts.debugLine(3))
	assert.True(t, opts.debugLine(7))
	assert.False(t, opts.debugLine(4))
	assert.False(t, Options{}.debugLine(3))
}

func TestInlineDecodeUnknownCodecIsNoOp(t *testing.T) {
	call := &astnode.Call{
		Callee: &astnode.Attribute{Source: astnode.NewString("data", 1), Attr: "decode"},
		Args:   astnode.NewSequence(1, astnode.NewString("not-a-codec", 1)),
	}
	ctx := &Context{Node: call, visitor: &Visitor{}}
	assert.False(t, InlineDecodeRule()(ctx))
}

func TestInlineDecodeMalformedInputIsNoOp(t *testing.T) {
	call := &astnode.Call{
		Callee: &astnode.Attribute{Source: astnode.NewString("not valid base64!!", 1), Attr: "decode"},
		Args:   astnode.NewSequence(1, astnode.NewString("base64", 1)),
	}
	ctx := &Context{Node: call, visitor: &Visitor{}}
	assert.False(t, InlineDecodeRule()(ctx))
}

func TestReplaceStringRuleDefeatedByKwargs(t *testing.T) {
	kwargs := astnode.NewMapping("Kwargs", 1)
	kwargs.Set("count", &astnode.Number{Value: 1})
	call := &astnode.Call{
		Callee: &astnode.Attribute{Source: astnode.NewString("banana", 1), Attr: "replace"},
		Args:   astnode.NewSequence(1, astnode.NewString("a", 1), astnode.NewString("o", 1)),
		Kwargs: kwargs,
	}
	ctx := &Context{Node: call, visitor: &Visitor{}}
	assert.False(t, ReplaceStringRule()(ctx))
}

func TestReplaceStringRuleDefeatedByExtraArgs(t *testing.T) {
	call := &astnode.Call{
		Callee: &astnode.Attribute{Source: astnode.NewString("banana", 1), Attr: "replace"},
		Args:   astnode.NewSequence(1, astnode.NewString("a", 1), astnode.NewString("o", 1), astnode.NewString("extra", 1)),
	}
	ctx := &Context{Node: call, visitor: &Visitor{}}
	assert.False(t, ReplaceStringRule()(ctx))
}

func TestRuleIdempotenceOnQuiescentTree(t *testing.T) {
	str := astnode.NewString("banana", 1)
	ctx := &Context{Node: str, visitor: &Visitor{}}
	assert.False(t, ReplaceStringRule()(ctx))
	assert.False(t, ReplaceStringRule()(ctx))
}
