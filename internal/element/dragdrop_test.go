package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDropPaletteOnInsertionPoint(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)
	anchor := c.Elements[1].ID

	// Top edge inserts before the anchor element.
	dropped := c.ResolveDrop(PaletteItem(TypeSelect), InsertionPoint(anchor, DropTop))
	assert.Equal(t, []Type{TypeTextInput, TypeSelect, TypeEmailInput}, types(dropped))

	// Bottom edge inserts after it.
	dropped = c.ResolveDrop(PaletteItem(TypeSelect), InsertionPoint(anchor, DropBottom))
	assert.Equal(t, []Type{TypeTextInput, TypeEmailInput, TypeSelect}, types(dropped))

	// The new element is selected.
	i := dropped.IndexOf(dropped.SelectedID)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, TypeSelect, dropped.Elements[i].Type)
}

func TestResolveDropPaletteOnCanvasAppends(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput)
	dropped := c.ResolveDrop(PaletteItem(TypeTextarea), CanvasTarget())
	assert.Equal(t, []Type{TypeTextInput, TypeTextarea}, types(dropped))
}

func TestResolveDropReordersExistingElement(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput).Add(TypeSelect)
	first := c.Elements[0].ID
	last := c.Elements[2].ID

	dropped := c.ResolveDrop(CanvasItem(first), ElementTarget(last))
	assert.Equal(t, []Type{TypeEmailInput, TypeSelect, TypeTextInput}, types(dropped))
	assert.ElementsMatch(t, ids(c), ids(dropped))
	assert.Equal(t, first, dropped.SelectedID)
}

func TestResolveDropUnresolvableIsNoOp(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)

	tests := []struct {
		name   string
		item   DragItem
		target DropTarget
	}{
		{"no target", PaletteItem(TypeSelect), DropTarget{Kind: TargetNone}},
		{"insertion point anchor gone", PaletteItem(TypeSelect), InsertionPoint("missing", DropTop)},
		{"palette onto element", PaletteItem(TypeSelect), ElementTarget(c.Elements[0].ID)},
		{"reorder source gone", CanvasItem("missing"), ElementTarget(c.Elements[0].ID)},
		{"reorder target gone", CanvasItem(c.Elements[0].ID), ElementTarget("missing")},
		{"element onto canvas", CanvasItem(c.Elements[0].ID), CanvasTarget()},
		{"empty drag item", DragItem{}, CanvasTarget()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dropped := c.ResolveDrop(tt.item, tt.target)
			assert.Equal(t, ids(c), ids(dropped), "order must be unchanged")
			assert.Len(t, dropped.Elements, len(c.Elements))
		})
	}
}
