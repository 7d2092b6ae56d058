package stage

import (
	"testing"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/rewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineFailsFastOnUnknownStage(t *testing.T) {
	registry := NewDefaultRegistry(rewriter.DefaultOptions(), nil, nil)
	_, err := NewPipeline(registry, []string{"convert", "not-a-real-stage"})
	require.Error(t, err)

	var notFound *StageNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "not-a-real-stage", notFound.Name)
}

func TestDefaultPipelineRunsConvertRewriteTaintReadonly(t *testing.T) {
	registry := NewDefaultRegistry(rewriter.DefaultOptions(), nil, nil)
	pipeline, err := NewPipeline(registry, DefaultStageNames)
	require.NoError(t, err)

	m := astnode.NewMapping("BinOp", 1)
	m.Set("op", astnode.NewString("add", 1))
	m.Set("left", astnode.NewString("ab", 1))
	m.Set("right", astnode.NewString("cd", 1))
	root := &astnode.Root{Body: astnode.NewSequence(0, m)}

	out, err := pipeline.Run(Tree{Root: root})
	require.NoError(t, err)
	assert.True(t, out.Traversed)

	folded, ok := out.Root.(*astnode.Root).Body.Items[0].(*astnode.String)
	require.True(t, ok)
	assert.Equal(t, "cdab", folded.Value)
}

func TestTaintStageAttachesFindingsToTree(t *testing.T) {
	registry := NewDefaultRegistry(rewriter.DefaultOptions(), []string{"eval"}, nil)
	pipeline, err := NewPipeline(registry, DefaultStageNames)
	require.NoError(t, err)

	call := &astnode.Call{FullName: "eval", Args: astnode.NewSequence(0)}
	root := &astnode.Root{Body: astnode.NewSequence(0, call)}

	out, err := pipeline.Run(Tree{Root: root})
	require.NoError(t, err)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, "eval", out.Findings[0].FullName)
}

func TestPatternStageOnlyRunsWhenNamedExplicitly(t *testing.T) {
	assert.NotContains(t, DefaultStageNames, "pattern")

	registry := NewDefaultRegistry(rewriter.DefaultOptions(), nil, []string{"base64.b64decode"})
	pipeline, err := NewPipeline(registry, []string{"convert", "pattern", "readonly"})
	require.NoError(t, err)

	root := &astnode.Root{Body: astnode.NewSequence(0)}
	out, err := pipeline.Run(Tree{Root: root})
	require.NoError(t, err)
	assert.True(t, out.Traversed)
}
