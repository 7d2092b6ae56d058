package symtab

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFindsInnermostBindingFirst(t *testing.T) {
	st := New()
	outer := &astnode.String{Value: "outer"}
	st.Bind("x", outer, 1)

	st.EnterScope()
	inner := &astnode.String{Value: "inner"}
	st.Bind("x", inner, 2)

	v, ln, ok := st.Lookup("x")
	require.True(t, ok)
	assert.Same(t, inner, v.(*astnode.String))
	assert.Equal(t, 2, ln)

	st.ExitScope()
	v, _, ok = st.Lookup("x")
	require.True(t, ok)
	assert.Same(t, outer, v.(*astnode.String))
}

func TestLookupWalksOutToModuleScope(t *testing.T) {
	st := New()
	mod := &astnode.Number{Value: 1}
	st.Bind("g", mod, 1)

	st.EnterScope()
	st.EnterScope()

	v, _, ok := st.Lookup("g")
	require.True(t, ok)
	assert.Same(t, mod, v.(*astnode.Number))
}

func TestLookupMissingNameReturnsFalse(t *testing.T) {
	st := New()
	_, _, ok := st.Lookup("never-bound")
	assert.False(t, ok)
}

func TestExitScopeNeverUnwindsModuleScope(t *testing.T) {
	st := New()
	for i := 0; i < 5; i++ {
		st.ExitScope()
	}
	assert.Equal(t, 1, st.Depth())
}

func TestEnterExitBalanced(t *testing.T) {
	st := New()
	assert.Equal(t, 1, st.Depth())
	st.EnterScope()
	st.EnterScope()
	assert.Equal(t, 3, st.Depth())
	st.ExitScope()
	assert.Equal(t, 2, st.Depth())
}
