package astnode

import "fmt"

// Slot is a descriptor for "where a node lives" — root assignment,
// mapping-key assignment, or sequence-index assignment — bundled into a
// single value a rule can hold onto and invoke later without re-deriving
// the parent/key/index it came from.
type Slot interface {
	// Get returns the node currently occupying the slot.
	Get() Vertex
	// Set replaces the node occupying the slot with v.
	Set(v Vertex)
}

// rootSlot is the slot for the tree's root pointer itself.
type rootSlot struct {
	tree *Vertex
}

// RootSlot returns a Slot over the root pointer held by tree.
func RootSlot(tree *Vertex) Slot { return &rootSlot{tree: tree} }

func (s *rootSlot) Get() Vertex  { return *s.tree }
func (s *rootSlot) Set(v Vertex) { *s.tree = v }

// mapSlot is the slot for a single key of a Mapping, or for a single named
// field of a typed node reached through FieldSlot.
type mapSlot struct {
	key string
	get func() Vertex
	set func(Vertex)
}

// MapSlot returns a Slot over key in m.
func MapSlot(m *Mapping, key string) Slot {
	return &mapSlot{
		key: key,
		get: func() Vertex { v, _ := m.Get(key); return v },
		set: func(v Vertex) { m.Set(key, v) },
	}
}

func (s *mapSlot) Get() Vertex  { return s.get() }
func (s *mapSlot) Set(v Vertex) { s.set(v) }

// FieldSlot returns a Slot over a single named field of a typed node,
// dispatched through get/set closures supplied by ChildSlots. This is the
// typed-node analog of MapSlot: the key is the Go field name, purely for
// diagnostics.
func FieldSlot(key string, get func() Vertex, set func(Vertex)) Slot {
	return &mapSlot{key: key, get: get, set: set}
}

// seqSlot is the slot for a single index of a Sequence.
type seqSlot struct {
	seq *Sequence
	idx int
}

// SeqSlot returns a Slot over index idx of seq. idx must be valid; callers
// obtain it only from ChildSlots, which enumerates valid indices.
func SeqSlot(seq *Sequence, idx int) Slot { return &seqSlot{seq: seq, idx: idx} }

func (s *seqSlot) Get() Vertex { return s.seq.Items[s.idx] }
func (s *seqSlot) Set(v Vertex) {
	if s.idx < 0 || s.idx >= len(s.seq.Items) {
		panic(fmt.Sprintf("astnode: seq slot index %d out of range (len %d)", s.idx, len(s.seq.Items)))
	}
	s.seq.Items[s.idx] = v
}
