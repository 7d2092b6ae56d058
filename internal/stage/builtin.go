package stage

import (
	"github.com/killvxk/aura/internal/convert"
	"github.com/killvxk/aura/internal/rewriter"
	"github.com/killvxk/aura/internal/symtab"
	"github.com/killvxk/aura/internal/taint"
)

// convertStage lifts raw Mapping shapes into typed nodes and runs the
// initial symbol-collection pass.
type convertStage struct{}

func (convertStage) Name() string { return "convert" }

func (convertStage) Run(in Tree) (Tree, error) {
	root := convert.Lift(in.Root)
	symbols := symtab.New()
	convert.CollectSymbols(root, symbols)
	return Tree{Root: root, Symbols: symbols}, nil
}

// rewriteStage wraps internal/rewriter.Visitor, running it to convergence
// with the default rule set and the stage's configured options.
type rewriteStage struct {
	opts rewriter.Options
}

func (rewriteStage) Name() string { return "rewrite" }

func (s rewriteStage) Run(in Tree) (Tree, error) {
	v := rewriter.New(in.Root, rewriter.DefaultRules(s.opts), in.Symbols, s.opts)
	root := v.Traverse()
	return Tree{Root: root, Symbols: in.Symbols, Traversed: v.Traversed}, nil
}

// NewRewriteStage returns a rewrite-stage Factory parameterized by opts, for
// registries that need non-default iteration/queue/convergence settings.
func NewRewriteStage(opts rewriter.Options) Factory {
	return func() Stage { return rewriteStage{opts: opts} }
}

// taintStage is a minimal downstream consumer illustrating the tree
// interface exposed to later stages: it records which Call nodes target a
// configured sink name. Full taint analysis is out of scope; this only
// demonstrates the seam.
type taintStage struct {
	sinks []string
}

func (taintStage) Name() string { return "taint_analysis" }

func (s taintStage) Run(in Tree) (Tree, error) {
	in.Findings = taint.Scan(in.Root, s.sinks)
	return in, nil
}

// NewTaintStage returns a taint-stage Factory configured with sinks. A nil
// or empty slice falls back to taint.DefaultSinks.
func NewTaintStage(sinks []string) Factory {
	if len(sinks) == 0 {
		sinks = taint.DefaultSinks
	}
	return func() Stage { return taintStage{sinks: sinks} }
}

// readonlyStage is the pipeline's terminal stage: it sets the tree's
// Traversed flag and returns it unchanged.
type readonlyStage struct{}

func (readonlyStage) Name() string { return "readonly" }

func (readonlyStage) Run(in Tree) (Tree, error) {
	in.Traversed = true
	return in, nil
}

// patternStage is an optional idiom-matcher slot; it is never part of
// DefaultStageNames and only runs when named explicitly in ast-stages.
type patternStage struct {
	patterns []string
}

func (patternStage) Name() string { return "pattern" }

func (s patternStage) Run(in Tree) (Tree, error) {
	taint.MatchPatterns(in.Root, s.patterns)
	return in, nil
}

// NewPatternStage returns a pattern-stage Factory configured with the
// FullName patterns to flag on Call nodes.
func NewPatternStage(patterns []string) Factory {
	return func() Stage { return patternStage{patterns: patterns} }
}

// NewDefaultRegistry returns a Registry with convert/rewrite/taint_analysis/
// readonly/pattern registered, ready to build the default pipeline or any
// ast-stages ordering a caller names.
func NewDefaultRegistry(opts rewriter.Options, sinks, patterns []string) *Registry {
	r := NewRegistry()
	r.Register("convert", func() Stage { return convertStage{} })
	r.Register("rewrite", NewRewriteStage(opts))
	r.Register("taint_analysis", NewTaintStage(sinks))
	r.Register("readonly", func() Stage { return readonlyStage{} })
	r.Register("pattern", NewPatternStage(patterns))
	return r
}
