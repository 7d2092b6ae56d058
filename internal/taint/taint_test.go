package taint

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsConfiguredSink(t *testing.T) {
	call := &astnode.Call{FullName: "eval", Args: astnode.NewSequence(1)}
	root := &astnode.Root{Body: astnode.NewSequence(0, call)}

	findings := Scan(root, DefaultSinks)
	require.Len(t, findings, 1)
	assert.Equal(t, "eval", findings[0].FullName)
}

func TestScanIgnoresUnresolvedCalls(t *testing.T) {
	call := &astnode.Call{Args: astnode.NewSequence(1)}
	root := &astnode.Root{Body: astnode.NewSequence(0, call)}

	findings := Scan(root, DefaultSinks)
	assert.Empty(t, findings)
}

func TestMatchPatternsExactNameMatch(t *testing.T) {
	call := &astnode.Call{FullName: "base64.b64decode", Args: astnode.NewSequence(1)}
	root := &astnode.Root{Body: astnode.NewSequence(0, call)}

	matches := MatchPatterns(root, []string{"base64.b64decode"})
	require.Len(t, matches, 1)
}
