// Package config loads the engine's configuration: built-in defaults, YAML
// file loading via gopkg.in/yaml.v3, environment-variable overrides bound
// and decoded through github.com/spf13/viper, and a package-level
// Testing/PrintInfo gate so diagnostics stay quiet under test.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/killvxk/aura/internal/rewriter"
)

// Config holds every setting the engine and its CLI recognize.
type Config struct {
	// General behavior
	Silent    bool `mapstructure:"silent" yaml:"silent"`
	DebugMode bool `mapstructure:"debug_mode" yaml:"debug_mode"`

	// File handling for directory-tree rewriting.
	SkipPaths      []string `mapstructure:"skip" yaml:"skip"`
	KeepPaths      []string `mapstructure:"keep" yaml:"keep"`
	FollowSymlinks bool     `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`
	AbortOnError   bool     `mapstructure:"abort_on_error" yaml:"abort_on_error"`

	// Traversal bounds.
	MaxASTIterations int `mapstructure:"max_ast_iterations" yaml:"max_ast_iterations"`
	MaxASTQueueSize  int `mapstructure:"max_ast_queue_size" yaml:"max_ast_queue_size"`

	// Stage pipeline ordering.
	ASTStages []string `mapstructure:"ast_stages" yaml:"ast_stages"`

	// Diagnostic line breakpoints.
	DebugLines []int `mapstructure:"debug_lines" yaml:"debug_lines"`

	// BinOp(add) operand order and the convergence safety-margin pass count.
	BinOpAddRightThenLeft bool `mapstructure:"binop_add_right_then_left" yaml:"binop_add_right_then_left"`
	ConvergencePasses     int  `mapstructure:"convergence_passes" yaml:"convergence_passes"`

	// Taint/pattern stage configuration.
	TaintSinks      []string `mapstructure:"taint_sinks" yaml:"taint_sinks"`
	PatternMatchers []string `mapstructure:"pattern_matchers" yaml:"pattern_matchers"`
}

// RewriterOptions projects the relevant Config fields into a
// rewriter.Options value, so the CLI and pkg/api don't duplicate the
// mapping.
func (c *Config) RewriterOptions() rewriter.Options {
	return rewriter.Options{
		BinOpAddRightThenLeft: c.BinOpAddRightThenLeft,
		ConvergencePasses:     c.ConvergencePasses,
		MaxIterations:         c.MaxASTIterations,
		MaxQueueSize:          c.MaxASTQueueSize,
		DebugLines:            c.DebugLines,
	}
}

// envKeys lists every mapstructure tag on Config, in the same order as the
// struct, so applyEnvOverrides can bind each one to an AURA_-prefixed
// environment variable without repeating the field list.
var envKeys = []string{
	"silent",
	"debug_mode",
	"skip",
	"keep",
	"follow_symlinks",
	"abort_on_error",
	"max_ast_iterations",
	"max_ast_queue_size",
	"ast_stages",
	"debug_lines",
	"binop_add_right_then_left",
	"convergence_passes",
	"taint_sinks",
	"pattern_matchers",
}

var (
	// Testing controls whether PrintInfo's output is suppressed, set by
	// tests that want quiet output.
	Testing bool
)

// PrintInfo prints an informational message unless Testing is set,
// mirroring the reference repo's internal/config.PrintInfo.
func PrintInfo(format string, args ...interface{}) {
	if !Testing {
		fmt.Printf(format, args...)
	}
}

// DefaultConfig returns a Config populated with its built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Silent:                false,
		DebugMode:             false,
		SkipPaths:             []string{"vendor/*", "*.git*"},
		KeepPaths:             []string{},
		FollowSymlinks:        false,
		AbortOnError:          true,
		MaxASTIterations:      500,
		MaxASTQueueSize:       10000,
		ASTStages:             []string{"convert", "rewrite", "taint_analysis", "readonly"},
		DebugLines:            []int{},
		BinOpAddRightThenLeft: true,
		ConvergencePasses:     1,
		TaintSinks:            []string{"eval", "exec", "system", "popen", "unserialize"},
		PatternMatchers:       []string{},
	}
}

// LoadConfig reads configuration from a YAML file at configPath (if it
// exists), layered over the defaults, matching the reference repo's
// LoadConfig semantics: a missing default path is not an error, but an
// explicitly named missing file is.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = "aura.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error unmarshalling config file %s: %w", configPath, err)
		}
		if !cfg.Silent {
			PrintInfo("Info: Loaded configuration from %s\n", configPath)
		}
	} else if os.IsNotExist(err) {
		if configPath != "aura.yaml" {
			return nil, fmt.Errorf("specified config file not found: %s", configPath)
		}
		PrintInfo("Info: Configuration file 'aura.yaml' not found, using default settings.\n")
	} else {
		return nil, fmt.Errorf("error checking config file %s: %w", configPath, err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("error applying environment overrides: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg (DefaultConfig if nil) to configPath as YAML.
func SaveConfig(configPath string, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory for config file %s: %w", configPath, err)
		}
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file %s: %w", configPath, err)
	}
	PrintInfo("Info: Saved configuration to %s\n", configPath)
	return nil
}

// applyEnvOverrides binds every mapstructure key on Config to an
// AURA_-prefixed environment variable via viper, seeds each key's default
// with the value cfg already holds (so an unset env var leaves the
// YAML-loaded or built-in value untouched), then unmarshals back into cfg —
// the same bindEnv-and-decode idiom the reference repo uses with its
// GOPHO_ prefix, but routed through viper's own struct decoding instead of
// a hand-written field switch.
func applyEnvOverrides(cfg *Config) error {
	v := viper.New()
	v.SetDefault("silent", cfg.Silent)
	v.SetDefault("debug_mode", cfg.DebugMode)
	v.SetDefault("skip", cfg.SkipPaths)
	v.SetDefault("keep", cfg.KeepPaths)
	v.SetDefault("follow_symlinks", cfg.FollowSymlinks)
	v.SetDefault("abort_on_error", cfg.AbortOnError)
	v.SetDefault("max_ast_iterations", cfg.MaxASTIterations)
	v.SetDefault("max_ast_queue_size", cfg.MaxASTQueueSize)
	v.SetDefault("ast_stages", cfg.ASTStages)
	v.SetDefault("debug_lines", cfg.DebugLines)
	v.SetDefault("binop_add_right_then_left", cfg.BinOpAddRightThenLeft)
	v.SetDefault("convergence_passes", cfg.ConvergencePasses)
	v.SetDefault("taint_sinks", cfg.TaintSinks)
	v.SetDefault("pattern_matchers", cfg.PatternMatchers)

	for _, key := range envKeys {
		bindEnv(v, key)
	}

	return v.Unmarshal(cfg)
}

func bindEnv(v *viper.Viper, key string) {
	envKey := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	_ = v.BindEnv(key, "AURA_"+envKey)
}
