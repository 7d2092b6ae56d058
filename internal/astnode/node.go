// Package astnode defines the tagged-union node model the rewriter operates
// on: typed AST variants alongside the two generic structural containers
// (Mapping, Sequence) that a schema-less front end produces before a
// conversion pass lifts recognized shapes into typed form.
package astnode

// Vertex is implemented by every node in the tree, typed or structural.
// All concrete implementations are pointer types so that two Vertex values
// are comparable by identity, never by content — the cycle guard in
// internal/rewriter keys its "already processed this pass" set on exactly
// this property.
type Vertex interface {
	Line() int
	isVertex()
}

// String is a string literal.
type String struct {
	Value string
	Ln    int
}

func (n *String) Line() int { return n.Ln }
func (*String) isVertex()   {}

// NewString returns a String literal carrying line ln, for rules that
// synthesize a replacement node and want it to inherit the line of the node
// it replaces.
func NewString(value string, ln int) *String { return &String{Value: value, Ln: ln} }

// Bytes is a byte-string literal, produced when a codec decode yields raw
// bytes rather than text.
type Bytes struct {
	Value []byte
	Ln    int
}

func (n *Bytes) Line() int { return n.Ln }
func (*Bytes) isVertex()   {}

// NewBytes returns a Bytes literal carrying line ln.
func NewBytes(value []byte, ln int) *Bytes { return &Bytes{Value: value, Ln: ln} }

// Number is a numeric literal. The source language's int/float distinction
// is not load-bearing for rewriting, so both collapse to float64.
type Number struct {
	Value float64
	Ln    int
}

func (n *Number) Line() int { return n.Ln }
func (*Number) isVertex()   {}

// Var is a name reference. Value holds the node currently believed to be
// bound to this name; internal/convert's symbol collection sets it on the
// target of an Assign, and it is nil otherwise. The rewriter's
// resolve-variable rule reads it but does not update it.
type Var struct {
	Name  string
	Value Vertex
	Ln    int
}

func (n *Var) Line() int { return n.Ln }
func (*Var) isVertex()   {}

// BinOp is a binary operation. Op is the operator tag ("add", "sub", "mul",
// ...); the rewriter's BinOp rule folds only "add".
type BinOp struct {
	Op          string
	Left, Right Vertex
	Ln          int
}

func (n *BinOp) Line() int { return n.Ln }
func (*BinOp) isVertex()   {}

// Attribute is a dotted member access (`source.attr`). Action records
// whether the access is a load, store, or delete. Original is the
// pre-rewrite node, kept so a downstream stage can still see what shape
// produced the replacement.
type Attribute struct {
	Source   Vertex
	Attr     string
	Action   string
	Original Vertex
	Ln       int
}

func (n *Attribute) Line() int { return n.Ln }
func (*Attribute) isVertex()   {}

// Call is a function or method invocation. FullName is the best-effort
// resolved dotted name of the callee (e.g. "base64.b64decode"), populated
// by the rewrite-function-call rule chain; it is empty until resolved.
// Original preserves the pre-rewrite callee node.
type Call struct {
	Callee   Vertex
	Args     *Sequence
	Kwargs   *Mapping
	FullName string
	Original Vertex
	Ln       int
}

func (n *Call) Line() int { return n.Ln }
func (*Call) isVertex()   {}

// Subscript is a string/sequence slice or index, in typed form. The
// string-slice rule operates on the raw Mapping shape (see
// internal/rewriter.StringSliceRule), and internal/convert.Lift leaves
// Subscript mappings untouched, so this typed form only appears in trees a
// caller builds directly.
type Subscript struct {
	Target             Vertex
	Lower, Upper, Step Vertex
	Ln                 int
}

func (n *Subscript) Line() int { return n.Ln }
func (*Subscript) isVertex()   {}

// Import is a module import; Aliases maps the local alias to the
// fully-qualified module name it refers to, used by the function-call
// rewrite rule to materialize a callee's full name.
type Import struct {
	Aliases map[string]string
	Ln      int
}

func (n *Import) Line() int { return n.Ln }
func (*Import) isVertex()   {}

// FunctionDef introduces a new lexical scope.
type FunctionDef struct {
	Name         string
	Params, Body *Sequence
	Ln           int
}

func (n *FunctionDef) Line() int { return n.Ln }
func (*FunctionDef) isVertex()   {}

// ClassDef introduces a new lexical scope.
type ClassDef struct {
	Name string
	Body *Sequence
	Ln   int
}

func (n *ClassDef) Line() int { return n.Ln }
func (*ClassDef) isVertex()   {}

// If is a conditional with two branch sequences, either of which may be
// empty (never nil — an absent else-branch is an empty *Sequence).
type If struct {
	Cond       Vertex
	Then, Else *Sequence
	Ln         int
}

func (n *If) Line() int { return n.Ln }
func (*If) isVertex()   {}

// Return is a return statement; Value is nil for a bare `return`.
type Return struct {
	Value Vertex
	Ln    int
}

func (n *Return) Line() int { return n.Ln }
func (*Return) isVertex()   {}

// Assign is a name or attribute binding.
type Assign struct {
	Target, Value Vertex
	Ln            int
}

func (n *Assign) Line() int { return n.Ln }
func (*Assign) isVertex()   {}

// Root is the entry point of a converted tree.
type Root struct {
	Body *Sequence
	Ln   int
}

func (n *Root) Line() int { return n.Ln }
func (*Root) isVertex()   {}

// Mapping is the generic keyed container a schema-less parser front end
// produces for any node shape the conversion stage does not yet recognize.
// Order preserves field insertion order so traversal and printing stay
// deterministic across runs.
type Mapping struct {
	Type   string
	Fields map[string]Vertex
	Order  []string
	Ln     int
}

func (n *Mapping) Line() int { return n.Ln }
func (*Mapping) isVertex()   {}

// NewMapping returns an empty, ready-to-use Mapping of the given type tag.
func NewMapping(typ string, ln int) *Mapping {
	return &Mapping{Type: typ, Fields: map[string]Vertex{}, Ln: ln}
}

// Set assigns a field, appending it to Order the first time the key is seen.
func (m *Mapping) Set(key string, v Vertex) {
	if _, ok := m.Fields[key]; !ok {
		m.Order = append(m.Order, key)
	}
	m.Fields[key] = v
}

// Get returns the field's value and whether it was present.
func (m *Mapping) Get(key string) (Vertex, bool) {
	v, ok := m.Fields[key]
	return v, ok
}

// Sequence is the generic ordered container for any list-shaped node the
// conversion stage has not lifted into a typed slice field.
type Sequence struct {
	Items []Vertex
	Ln    int
}

func (n *Sequence) Line() int { return n.Ln }
func (*Sequence) isVertex()   {}

// NewSequence returns a Sequence wrapping the given items (may be empty).
func NewSequence(ln int, items ...Vertex) *Sequence {
	return &Sequence{Items: items, Ln: ln}
}
