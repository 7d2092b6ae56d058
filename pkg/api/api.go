// Package api is the public library entry point for the rewriting engine:
// a constructor that loads configuration, and methods that run the
// configured stage pipeline over a tree or a host-supplied JSON parse tree.
package api

import (
	"encoding/json"
	"fmt"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/config"
	"github.com/killvxk/aura/internal/parsetree"
	"github.com/killvxk/aura/internal/stage"
	"github.com/killvxk/aura/internal/symtab"
	"github.com/killvxk/aura/internal/taint"
)

// PrintInfo forwards to internal/config.PrintInfo, respecting the Testing
// gate.
func PrintInfo(format string, args ...interface{}) {
	config.PrintInfo(format, args...)
}

// Options configures a new Engine.
type Options struct {
	// ConfigPath is a YAML config file path; empty reads ./aura.yaml if it
	// exists and uses the built-in defaults otherwise.
	ConfigPath string
	// Silent suppresses informational output, overriding the loaded config.
	Silent bool
}

// Engine runs the configured stage pipeline over trees handed to it. An
// Engine is safe to reuse across calls but not safe for concurrent use on
// the same call — each RewriteTree/RewriteJSON constructs a fresh
// rewriter.Visitor, so concurrent callers should each hold their own
// Engine or serialize calls.
type Engine struct {
	cfg      *config.Config
	pipeline *stage.Pipeline
}

// NewEngine loads configuration from options.ConfigPath (or ./aura.yaml,
// falling back to the built-in defaults, if empty) and resolves the configured ast-stages against the
// default stage registry. An unknown stage name fails here, before any
// tree is ever handed to Run.
func NewEngine(options Options) (*Engine, error) {
	cfg, err := config.LoadConfig(options.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if options.Silent {
		cfg.Silent = true
	}
	return NewEngineWithConfig(cfg)
}

// NewEngineWithConfig builds an Engine from an already-loaded Config,
// letting a caller (cmd/aura-deref) apply its own flag overrides to cfg
// before the stage pipeline is resolved, rather than loading the file a
// second time.
func NewEngineWithConfig(cfg *config.Config) (*Engine, error) {
	registry := stage.NewDefaultRegistry(cfg.RewriterOptions(), cfg.TaintSinks, cfg.PatternMatchers)
	pipeline, err := stage.NewPipeline(registry, cfg.ASTStages)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage pipeline: %w", err)
	}

	return &Engine{cfg: cfg, pipeline: pipeline}, nil
}

// Config exposes the loaded configuration, for callers (notably
// cmd/aura-deref) that need to inspect it without reloading the file.
func (e *Engine) Config() *config.Config { return e.cfg }

// Result carries a rewritten tree plus the diagnostics a caller needs to
// report on it without re-running the pipeline.
type Result struct {
	Tree      astnode.Vertex
	Traversed bool
	Findings  []taint.Finding
}

// RewriteTree runs tree through the configured stage pipeline to
// convergence and returns the rewritten root.
func (e *Engine) RewriteTree(tree astnode.Vertex) (astnode.Vertex, error) {
	result, err := e.rewrite(tree)
	if err != nil {
		return nil, err
	}
	return result.Tree, nil
}

// Inspect runs the same pipeline as RewriteTree but returns the full
// Result, including whether the tree was traversed (also true when the
// rewriter stopped at its iteration cap) and which sink calls the taint
// stage found — the data cmd/aura-deref's "inspect" subcommand
// reports.
func (e *Engine) Inspect(tree astnode.Vertex) (Result, error) {
	return e.rewrite(tree)
}

func (e *Engine) rewrite(tree astnode.Vertex) (Result, error) {
	out, err := e.pipeline.Run(stage.Tree{Root: tree, Symbols: symtab.New()})
	if err != nil {
		return Result{}, fmt.Errorf("pipeline run: %w", err)
	}
	return Result{Tree: out.Root, Traversed: out.Traversed, Findings: out.Findings}, nil
}

// RewriteJSON decodes raw as the external parser's JSON tree
// (internal/parsetree.Decode), runs it through RewriteTree, and re-encodes
// the result in the same wire format, for hosts that round-trip trees
// across a process boundary.
func (e *Engine) RewriteJSON(raw []byte) ([]byte, error) {
	parsed, err := parsetree.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode parse tree: %w", err)
	}

	rewritten, err := e.RewriteTree(parsed.Root)
	if err != nil {
		return nil, err
	}

	lowered, err := parsetree.Encode(rewritten)
	if err != nil {
		return nil, fmt.Errorf("encode parse tree: %w", err)
	}
	out, err := json.Marshal(lowered)
	if err != nil {
		return nil, fmt.Errorf("marshal rewritten tree: %w", err)
	}
	return out, nil
}
