package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(c Collection) []string {
	out := make([]string, 0, len(c.Elements))
	for _, e := range c.Elements {
		out = append(out, e.ID)
	}
	return out
}

func types(c Collection) []Type {
	out := make([]Type, 0, len(c.Elements))
	for _, e := range c.Elements {
		out = append(out, e.Type)
	}
	return out
}

func TestNewAppliesTypeDefaults(t *testing.T) {
	t.Parallel()

	text := New(TypeTextInput)
	assert.NotEmpty(t, text.ID)
	assert.Equal(t, TypeTextInput, text.Type)
	assert.Equal(t, "Text Input", text.Label)
	assert.Equal(t, Styling{Width: WidthFull, Size: SizeMedium}, text.Styling)
	assert.Nil(t, text.Options)

	sel := New(TypeSelect)
	assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, sel.Options)

	rate := New(TypeRateScale)
	assert.Equal(t, RateStar, rate.EffectiveRateVariant())
	assert.Equal(t, BooleanToggle, New(TypeBooleanSwitch).EffectiveBooleanVariant())
	assert.Equal(t, DateTimeBoth, New(TypeDateTimePicker).EffectiveDateTimeVariant())
	assert.Equal(t, NumberStandard, New(TypeNumberInput).EffectiveNumberVariant())
}

func TestAddSelectsAndInsertsAfterSelection(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput)
	require.Len(t, c.Elements, 1)
	first := c.Elements[0]
	assert.Equal(t, TypeTextInput, first.Type)
	assert.Equal(t, first.ID, c.SelectedID)

	// Selection sits on the first element, so the next add lands right
	// after it.
	c = c.Add(TypeEmailInput)
	require.Len(t, c.Elements, 2)
	assert.Equal(t, []Type{TypeTextInput, TypeEmailInput}, types(c))
	assert.Equal(t, c.Elements[1].ID, c.SelectedID)

	// No selection: append to the end.
	c = c.Select("").Add(TypeTextarea)
	assert.Equal(t, []Type{TypeTextInput, TypeEmailInput, TypeTextarea}, types(c))
}

func TestAddInsertsAfterMidListSelection(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput).Add(TypeTextarea)
	c = c.Select(c.Elements[0].ID)

	c = c.Add(TypeSelect)
	assert.Equal(t, []Type{TypeTextInput, TypeSelect, TypeEmailInput, TypeTextarea}, types(c))
	assert.Equal(t, c.Elements[1].ID, c.SelectedID)
}

func TestAddAtClampsOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
		want  []Type
	}{
		{"at start", 0, []Type{TypeSelect, TypeTextInput, TypeEmailInput}},
		{"in middle", 1, []Type{TypeTextInput, TypeSelect, TypeEmailInput}},
		{"at end", 2, []Type{TypeTextInput, TypeEmailInput, TypeSelect}},
		{"past end appends", 99, []Type{TypeTextInput, TypeEmailInput, TypeSelect}},
		{"negative appends", -1, []Type{TypeTextInput, TypeEmailInput, TypeSelect}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)
			c = c.AddAt(TypeSelect, tt.index)
			assert.Equal(t, tt.want, types(c))

			i := c.IndexOf(c.SelectedID)
			require.GreaterOrEqual(t, i, 0)
			assert.Equal(t, TypeSelect, c.Elements[i].Type)
		})
	}
}

func TestAddRemoveKeepsIDsUnique(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	for i := 0; i < 10; i++ {
		c = c.Add(TypeTextInput)
	}
	require.Len(t, c.Elements, 10)

	seen := make(map[string]bool)
	for _, id := range ids(c) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	c = c.Remove(c.Elements[3].ID).Remove(c.Elements[0].ID)
	assert.Len(t, c.Elements, 8)
}

func TestUpdatePatchRoundTrips(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput)
	id := c.Elements[0].ID
	original := c.Elements[0]

	required := true
	c = c.Update(id, Patch{Required: &required})
	assert.True(t, c.Elements[0].Required)

	required = false
	c = c.Update(id, Patch{Required: &required})
	assert.Equal(t, original, c.Elements[0])
}

func TestUpdateDoesNotTouchIDOrType(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput)
	id := c.Elements[0].ID

	label := "Your name"
	name := "full-name"
	minLen := 2
	c = c.Update(id, Patch{
		Label:      &label,
		Name:       &name,
		Validation: &Validation{MinLength: &minLen},
		Styling:    &Styling{Width: WidthHalf, Size: SizeLarge},
	})

	e := c.Elements[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, TypeTextInput, e.Type)
	assert.Equal(t, "Your name", e.Label)
	assert.Equal(t, "full-name", e.Name)
	assert.Equal(t, 2, *e.Validation.MinLength)
	assert.Equal(t, WidthHalf, e.Styling.Width)
}

func TestUpdateStaleIDIsNoOp(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput)
	label := "ignored"
	updated := c.Update("missing", Patch{Label: &label})
	assert.Equal(t, c, updated)
}

func TestRemoveClearsSelectionOfRemoved(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)
	selected := c.SelectedID

	c = c.Remove(selected)
	assert.Empty(t, c.SelectedID)
	require.Len(t, c.Elements, 1)

	// Removing a non-selected element keeps the selection.
	c = c.Select(c.Elements[0].ID).Add(TypeTextarea)
	keep := c.SelectedID
	c = c.Remove(c.Elements[0].ID)
	assert.Equal(t, keep, c.SelectedID)

	// Stale id: no-op.
	before := c
	assert.Equal(t, before, c.Remove("missing"))
}

func TestMoveIsAPermutation(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput).Add(TypeSelect).Add(TypeTextarea)
	before := ids(c)

	moved := c.Move(0, 2)
	assert.ElementsMatch(t, before, ids(moved))
	assert.Equal(t, []string{before[1], before[2], before[0], before[3]}, ids(moved))
	assert.Equal(t, before[0], moved.SelectedID)
}

func TestMoveSameIndexIsNoOp(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)
	assert.Equal(t, c, c.Move(1, 1))
}

func TestMoveClampsOutOfRange(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput).Add(TypeSelect)
	before := ids(c)

	// from past the end clamps to the last element.
	moved := c.Move(99, 0)
	assert.Equal(t, []string{before[2], before[0], before[1]}, ids(moved))

	// to below zero clamps to the front.
	moved = c.Move(1, -5)
	assert.Equal(t, []string{before[1], before[0], before[2]}, ids(moved))

	// Empty collection stays empty.
	assert.Equal(t, NewCollection(), NewCollection().Move(0, 1))
}

func TestResetReplacesWholesale(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput)
	replacement := []Element{New(TypeSelect)}

	c = c.Reset(replacement)
	require.Len(t, c.Elements, 1)
	assert.Equal(t, TypeSelect, c.Elements[0].Type)
	assert.Empty(t, c.SelectedID)
}

func TestDuplicateNames(t *testing.T) {
	t.Parallel()

	c := NewCollection().Add(TypeTextInput).Add(TypeEmailInput).Add(TypeTextarea)
	name := "email"
	c = c.Update(c.Elements[0].ID, Patch{Name: &name})
	c = c.Update(c.Elements[1].ID, Patch{Name: &name})

	assert.Equal(t, []string{"email"}, c.DuplicateNames())

	other := "notes"
	c = c.Update(c.Elements[2].ID, Patch{Name: &other})
	assert.Equal(t, []string{"email"}, c.DuplicateNames())
}

func TestBuilderScenario(t *testing.T) {
	t.Parallel()

	// Start empty, add a text input: one element, selected.
	c := NewCollection().Add(TypeTextInput)
	require.Len(t, c.Elements, 1)
	textID := c.Elements[0].ID
	assert.Equal(t, textID, c.SelectedID)

	// Add an email input while the text input is selected: it lands at
	// index 1, right after, and takes the selection.
	c = c.Add(TypeEmailInput)
	require.Len(t, c.Elements, 2)
	emailID := c.Elements[1].ID
	assert.Equal(t, TypeEmailInput, c.Elements[1].Type)
	assert.Equal(t, emailID, c.SelectedID)

	// Move it to the front.
	c = c.Move(1, 0)
	assert.Equal(t, []Type{TypeEmailInput, TypeTextInput}, types(c))
	assert.Equal(t, emailID, c.SelectedID)
}
