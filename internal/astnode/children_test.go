package astnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildSlotsBinOp(t *testing.T) {
	left := &String{Value: "a"}
	right := &String{Value: "b"}
	op := &BinOp{Op: "+", Left: left, Right: right}

	slots := ChildSlots(op)
	require.Len(t, slots, 2)
	assert.Equal(t, Vertex(left), slots[0].Get())
	assert.Equal(t, Vertex(right), slots[1].Get())

	replacement := &String{Value: "ab"}
	slots[0].Set(replacement)
	assert.Equal(t, Vertex(replacement), op.Left)
}

func TestChildSlotsSequenceOrderAndSet(t *testing.T) {
	a := &Number{Value: 1}
	b := &Number{Value: 2}
	seq := NewSequence(0, a, b)

	slots := ChildSlots(seq)
	require.Len(t, slots, 2)
	assert.Same(t, a, slots[0].Get().(*Number))

	replacement := &Number{Value: 9}
	slots[1].Set(replacement)
	assert.Equal(t, Vertex(replacement), seq.Items[1])
}

func TestChildSlotsMappingPreservesInsertionOrder(t *testing.T) {
	m := NewMapping("Custom", 1)
	m.Set("z", &String{Value: "z"})
	m.Set("a", &String{Value: "a"})

	slots := ChildSlots(m)
	require.Len(t, slots, 2)

	replacement := &String{Value: "Z"}
	slots[0].Set(replacement)
	got, ok := m.Get("z")
	require.True(t, ok)
	assert.Equal(t, Vertex(replacement), got)
}

func TestChildSlotsLeafNodesHaveNone(t *testing.T) {
	assert.Nil(t, ChildSlots(&String{Value: "x"}))
	assert.Nil(t, ChildSlots(&Number{Value: 1}))
	assert.Nil(t, ChildSlots(&Import{Aliases: map[string]string{"b64": "base64"}}))
}

func TestRootSlotReplacesTreePointer(t *testing.T) {
	var tree Vertex = &String{Value: "old"}
	slot := RootSlot(&tree)
	assert.Equal(t, Vertex(&String{Value: "old"}), slot.Get())

	replacement := &String{Value: "new"}
	slot.Set(replacement)
	assert.Same(t, replacement, tree.(*String))
}

func TestPointerIdentityDistinguishesEqualValues(t *testing.T) {
	a := &String{Value: "same"}
	b := &String{Value: "same"}
	assert.NotSame(t, a, b)

	seen := map[Vertex]bool{}
	seen[a] = true
	assert.False(t, seen[b])
}
