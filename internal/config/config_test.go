package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesSpecDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 500, cfg.MaxASTIterations)
	assert.Equal(t, 10000, cfg.MaxASTQueueSize)
	assert.Equal(t, []string{"convert", "rewrite", "taint_analysis", "readonly"}, cfg.ASTStages)
	assert.True(t, cfg.BinOpAddRightThenLeft)
	assert.Equal(t, 1, cfg.ConvergencePasses)
}

func TestLoadConfigMissingDefaultPathIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadConfigExplicitMissingPathIsAnError(t *testing.T) {
	_, err := LoadConfig("/nonexistent/explicit/aura.yaml")
	assert.Error(t, err)
}

func TestSaveThenLoadConfigRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aura.yaml")

	original := DefaultConfig()
	original.MaxASTIterations = 42
	require.NoError(t, SaveConfig(path, original))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.MaxASTIterations)
}

func TestEnvOverrideAppliesToScalarField(t *testing.T) {
	t.Setenv("AURA_MAX_AST_QUEUE_SIZE", "42")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.MaxASTQueueSize)
}

func TestEnvOverrideAppliesToListField(t *testing.T) {
	t.Setenv("AURA_TAINT_SINKS", "eval,exec")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"eval", "exec"}, cfg.TaintSinks)
}

func TestEnvOverrideLeavesOtherFieldsAtTheirLoadedValue(t *testing.T) {
	t.Setenv("AURA_MAX_AST_QUEUE_SIZE", "42")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxASTIterations)
	assert.Equal(t, []string{"convert", "rewrite", "taint_analysis", "readonly"}, cfg.ASTStages)
}

func TestRewriterOptionsProjection(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.RewriterOptions()
	assert.Equal(t, cfg.MaxASTIterations, opts.MaxIterations)
	assert.Equal(t, cfg.MaxASTQueueSize, opts.MaxQueueSize)
	assert.Equal(t, cfg.BinOpAddRightThenLeft, opts.BinOpAddRightThenLeft)
	assert.Equal(t, cfg.ConvergencePasses, opts.ConvergencePasses)
}
