// Package stage implements the ordered stage pipeline: a host-provided
// registry resolves stage names to constructors, an unknown name fails
// fatally before traversal starts, and each stage consumes the tree the
// previous stage produced.
package stage

import (
	"fmt"

	"github.com/killvxk/aura/internal/astnode"
	"github.com/killvxk/aura/internal/symtab"
	"github.com/killvxk/aura/internal/taint"
)

// Tree is the input/output handed between stages: the root node plus the
// symbol table built up so far, whether a traversing stage has run over it
// (set also when the rewriter stopped at its iteration cap), and any sink
// findings the taint stage attached.
type Tree struct {
	Root      astnode.Vertex
	Symbols   *symtab.Stack
	Traversed bool
	Findings  []taint.Finding
}

// Stage is one named step of the pipeline.
type Stage interface {
	Name() string
	Run(in Tree) (Tree, error)
}

// Factory constructs a Stage, given to a Registry under a name.
type Factory func() Stage

// Registry maps stage names to factories. The zero value is usable.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a stage factory under name, overwriting any prior entry —
// matching the entry-point registry's last-registration-wins behavior.
func (r *Registry) Register(name string, f Factory) {
	if r.factories == nil {
		r.factories = map[string]Factory{}
	}
	r.factories[name] = f
}

// StageNotFoundError reports a pipeline name with no registered factory.
type StageNotFoundError struct {
	Name string
}

func (e *StageNotFoundError) Error() string {
	return fmt.Sprintf("stage: unknown AST stage %q", e.Name)
}

// Pipeline runs a sequence of named stages, resolved from a Registry.
type Pipeline struct {
	registry *Registry
	names    []string
}

// NewPipeline validates that every name in names is registered and returns
// a Pipeline ready to Run — names are resolved eagerly so an unknown stage
// fails before traversal starts.
func NewPipeline(registry *Registry, names []string) (*Pipeline, error) {
	for _, name := range names {
		if _, ok := registry.factories[name]; !ok {
			return nil, &StageNotFoundError{Name: name}
		}
	}
	return &Pipeline{registry: registry, names: names}, nil
}

// DefaultStageNames is the default pipeline order.
var DefaultStageNames = []string{"convert", "rewrite", "taint_analysis", "readonly"}

// Run executes each stage in order, handing the previous stage's output
// tree to the next, and returns the final tree.
func (p *Pipeline) Run(in Tree) (Tree, error) {
	current := in
	for _, name := range p.names {
		s := p.registry.factories[name]()
		out, err := s.Run(current)
		if err != nil {
			return Tree{}, fmt.Errorf("stage %q: %w", name, err)
		}
		current = out
	}
	return current, nil
}
