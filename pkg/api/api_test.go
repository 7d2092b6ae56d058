package api

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Options{Silent: true})
	require.NoError(t, err)
	return e
}

func TestRewriteJSONFoldsStringConcat(t *testing.T) {
	e := newTestEngine(t)

	raw := []byte(`{
		"_type": "Module",
		"body": [
			{"_type": "BinOp", "lineno": 1, "op": "add",
			 "left": "ab", "right": "cd"}
		]
	}`)

	out, err := e.RewriteJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, string(out), "cdab")
}

func TestRewriteJSONRejectsMalformedInput(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.RewriteJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestInspectReportsTaintFinding(t *testing.T) {
	e := newTestEngine(t)

	call := &astnode.Call{FullName: "eval", Args: astnode.NewSequence(1), Ln: 1}
	tree := &astnode.Root{Body: astnode.NewSequence(1, call)}

	result, err := e.Inspect(tree)
	require.NoError(t, err)
	assert.True(t, result.Traversed)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "eval", result.Findings[0].FullName)
}

func TestRewriteTreeAcceptsAlreadyTypedRoot(t *testing.T) {
	e := newTestEngine(t)

	tree := &astnode.Root{Body: astnode.NewSequence(1)}
	out, err := e.RewriteTree(tree)
	require.NoError(t, err)
	assert.IsType(t, &astnode.Root{}, out)
}
