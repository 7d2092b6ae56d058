package astnode

// ChildSlots enumerates every direct child slot of v, in deterministic
// order. A visitor driver pushes each returned Slot's current node onto its
// work queue; rewrite rules call Slot.Set to replace a child without the
// driver needing to know the parent's concrete shape.
//
// Every node variant reports its own slots here, so the driver and rules
// stay agnostic of the concrete node type instead of needing one switch
// arm per type that knows how to overwrite one specific field.
func ChildSlots(v Vertex) []Slot {
	switch n := v.(type) {
	case *String, *Bytes, *Number, *Import:
		return nil

	case *Var:
		if n.Value == nil {
			return nil
		}
		return []Slot{FieldSlot("Value", func() Vertex { return n.Value }, func(x Vertex) { n.Value = x })}

	case *BinOp:
		slots := []Slot{FieldSlot("Left", func() Vertex { return n.Left }, func(x Vertex) { n.Left = x })}
		if n.Right != nil {
			slots = append(slots, FieldSlot("Right", func() Vertex { return n.Right }, func(x Vertex) { n.Right = x }))
		}
		return slots

	case *Attribute:
		if n.Source == nil {
			return nil
		}
		return []Slot{FieldSlot("Source", func() Vertex { return n.Source }, func(x Vertex) { n.Source = x })}

	case *Call:
		var slots []Slot
		if n.Callee != nil {
			slots = append(slots, FieldSlot("Callee", func() Vertex { return n.Callee }, func(x Vertex) { n.Callee = x }))
		}
		if n.Args != nil {
			slots = append(slots, FieldSlot("Args", func() Vertex { return n.Args }, func(x Vertex) { n.Args = mustSeq(x) }))
		}
		if n.Kwargs != nil {
			slots = append(slots, FieldSlot("Kwargs", func() Vertex { return n.Kwargs }, func(x Vertex) { n.Kwargs = mustMap(x) }))
		}
		return slots

	case *Subscript:
		slots := []Slot{FieldSlot("Target", func() Vertex { return n.Target }, func(x Vertex) { n.Target = x })}
		if n.Lower != nil {
			slots = append(slots, FieldSlot("Lower", func() Vertex { return n.Lower }, func(x Vertex) { n.Lower = x }))
		}
		if n.Upper != nil {
			slots = append(slots, FieldSlot("Upper", func() Vertex { return n.Upper }, func(x Vertex) { n.Upper = x }))
		}
		if n.Step != nil {
			slots = append(slots, FieldSlot("Step", func() Vertex { return n.Step }, func(x Vertex) { n.Step = x }))
		}
		return slots

	case *FunctionDef:
		var slots []Slot
		if n.Params != nil {
			slots = append(slots, FieldSlot("Params", func() Vertex { return n.Params }, func(x Vertex) { n.Params = mustSeq(x) }))
		}
		if n.Body != nil {
			slots = append(slots, FieldSlot("Body", func() Vertex { return n.Body }, func(x Vertex) { n.Body = mustSeq(x) }))
		}
		return slots

	case *ClassDef:
		if n.Body == nil {
			return nil
		}
		return []Slot{FieldSlot("Body", func() Vertex { return n.Body }, func(x Vertex) { n.Body = mustSeq(x) })}

	case *If:
		slots := []Slot{FieldSlot("Cond", func() Vertex { return n.Cond }, func(x Vertex) { n.Cond = x })}
		if n.Then != nil {
			slots = append(slots, FieldSlot("Then", func() Vertex { return n.Then }, func(x Vertex) { n.Then = mustSeq(x) }))
		}
		if n.Else != nil {
			slots = append(slots, FieldSlot("Else", func() Vertex { return n.Else }, func(x Vertex) { n.Else = mustSeq(x) }))
		}
		return slots

	case *Return:
		if n.Value == nil {
			return nil
		}
		return []Slot{FieldSlot("Value", func() Vertex { return n.Value }, func(x Vertex) { n.Value = x })}

	case *Assign:
		return []Slot{
			FieldSlot("Target", func() Vertex { return n.Target }, func(x Vertex) { n.Target = x }),
			FieldSlot("Value", func() Vertex { return n.Value }, func(x Vertex) { n.Value = x }),
		}

	case *Root:
		if n.Body == nil {
			return nil
		}
		return []Slot{FieldSlot("Body", func() Vertex { return n.Body }, func(x Vertex) { n.Body = mustSeq(x) })}

	case *Mapping:
		slots := make([]Slot, 0, len(n.Order))
		for _, key := range n.Order {
			slots = append(slots, MapSlot(n, key))
		}
		return slots

	case *Sequence:
		slots := make([]Slot, 0, len(n.Items))
		for i := range n.Items {
			slots = append(slots, SeqSlot(n, i))
		}
		return slots
	}
	return nil
}

func mustSeq(v Vertex) *Sequence {
	if v == nil {
		return nil
	}
	s, ok := v.(*Sequence)
	if !ok {
		panic("astnode: rule replaced a sequence-typed slot with a non-sequence node")
	}
	return s
}

func mustMap(v Vertex) *Mapping {
	if v == nil {
		return nil
	}
	m, ok := v.(*Mapping)
	if !ok {
		panic("astnode: rule replaced a mapping-typed slot with a non-mapping node")
	}
	return m
}
