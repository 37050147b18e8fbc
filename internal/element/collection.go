package element

// Collection owns the ordered element list for one form plus the
// current selection. All operations are pure: they leave the receiver
// untouched and return the successor state, so the single owner (the
// wizard session or the TUI update loop) can replace its copy
// wholesale.
type Collection struct {
	Elements   []Element `json:"elements" yaml:"elements"`
	SelectedID string    `json:"selectedElementId,omitempty" yaml:"selected_element_id,omitempty"`
}

// Patch describes a partial update to an element. Nil fields are left
// unchanged. ID and Type are not patchable.
type Patch struct {
	Label       *string
	Placeholder *string
	HelpText    *string
	Name        *string
	Required    *bool
	Disabled    *bool
	ReadOnly    *bool

	Validation *Validation
	Styling    *Styling
	Options    *[]string

	NumberVariant   *Variant
	RateVariant     *Variant
	BooleanVariant  *Variant
	DateTimeVariant *Variant
}

// NewCollection returns an empty collection.
func NewCollection() Collection {
	return Collection{}
}

// Len returns the number of elements.
func (c Collection) Len() int {
	return len(c.Elements)
}

// IndexOf resolves an element id to its current position, or -1 when
// the id is absent. Stale ids are a normal race outcome, not an error.
func (c Collection) IndexOf(id string) int {
	for i, e := range c.Elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the element with the given id.
func (c Collection) Get(id string) (Element, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c.Elements[i], true
	}
	return Element{}, false
}

// Selected returns the currently selected element, if any.
func (c Collection) Selected() (Element, bool) {
	if c.SelectedID == "" {
		return Element{}, false
	}
	return c.Get(c.SelectedID)
}

// Add creates a new element of the given type and inserts it after the
// current selection, or at the end when nothing is selected. The new
// element becomes selected.
func (c Collection) Add(t Type) Collection {
	index := len(c.Elements)
	if i := c.IndexOf(c.SelectedID); i >= 0 {
		index = i + 1
	}
	return c.insert(New(t), index)
}

// AddAt creates a new element of the given type at the requested
// position. Out-of-range positions append. The new element becomes
// selected.
func (c Collection) AddAt(t Type, index int) Collection {
	if index < 0 || index > len(c.Elements) {
		index = len(c.Elements)
	}
	return c.insert(New(t), index)
}

func (c Collection) insert(e Element, index int) Collection {
	elements := make([]Element, 0, len(c.Elements)+1)
	elements = append(elements, c.Elements[:index]...)
	elements = append(elements, e)
	elements = append(elements, c.Elements[index:]...)
	return Collection{Elements: elements, SelectedID: e.ID}
}

// Update merges the patch into the element with the given id. A stale
// id is a no-op.
func (c Collection) Update(id string, patch Patch) Collection {
	i := c.IndexOf(id)
	if i < 0 {
		return c
	}

	elements := append([]Element(nil), c.Elements...)
	e := elements[i].Clone()

	if patch.Label != nil {
		e.Label = *patch.Label
	}
	if patch.Placeholder != nil {
		e.Placeholder = *patch.Placeholder
	}
	if patch.HelpText != nil {
		e.HelpText = *patch.HelpText
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Required != nil {
		e.Required = *patch.Required
	}
	if patch.Disabled != nil {
		e.Disabled = *patch.Disabled
	}
	if patch.ReadOnly != nil {
		e.ReadOnly = *patch.ReadOnly
	}
	if patch.Validation != nil {
		e.Validation = *patch.Validation
	}
	if patch.Styling != nil {
		e.Styling = *patch.Styling
	}
	if patch.Options != nil {
		e.Options = append([]string(nil), (*patch.Options)...)
	}
	if patch.NumberVariant != nil {
		e.NumberVariant = *patch.NumberVariant
	}
	if patch.RateVariant != nil {
		e.RateVariant = *patch.RateVariant
	}
	if patch.BooleanVariant != nil {
		e.BooleanVariant = *patch.BooleanVariant
	}
	if patch.DateTimeVariant != nil {
		e.DateTimeVariant = *patch.DateTimeVariant
	}

	elements[i] = e
	return Collection{Elements: elements, SelectedID: c.SelectedID}
}

// Remove deletes the element with the given id; selection is cleared if
// the removed element held it. A stale id is a no-op.
func (c Collection) Remove(id string) Collection {
	i := c.IndexOf(id)
	if i < 0 {
		return c
	}

	elements := make([]Element, 0, len(c.Elements)-1)
	elements = append(elements, c.Elements[:i]...)
	elements = append(elements, c.Elements[i+1:]...)

	selected := c.SelectedID
	if selected == id {
		selected = ""
	}
	return Collection{Elements: elements, SelectedID: selected}
}

// Move reorders a single element: it is removed from position from and
// reinserted at position to, with to interpreted against the list after
// removal. Out-of-range indices are clamped to the valid range rather
// than left undefined. The moved element becomes selected so its
// affordances stay visible across the reorder.
func (c Collection) Move(from, to int) Collection {
	if len(c.Elements) == 0 {
		return c
	}

	from = clamp(from, 0, len(c.Elements)-1)
	to = clamp(to, 0, len(c.Elements)-1)
	if from == to {
		return c
	}

	moved := c.Elements[from]
	rest := make([]Element, 0, len(c.Elements)-1)
	rest = append(rest, c.Elements[:from]...)
	rest = append(rest, c.Elements[from+1:]...)

	elements := make([]Element, 0, len(c.Elements))
	elements = append(elements, rest[:to]...)
	elements = append(elements, moved)
	elements = append(elements, rest[to:]...)

	return Collection{Elements: elements, SelectedID: moved.ID}
}

// Select sets the selection. The id is not checked for existence: a
// stale id simply renders nothing selected. Pass "" to clear.
func (c Collection) Select(id string) Collection {
	return Collection{Elements: c.Elements, SelectedID: id}
}

// Reset replaces the element list wholesale and clears the selection.
// Used when loading external or initial data.
func (c Collection) Reset(elements []Element) Collection {
	return Collection{Elements: append([]Element(nil), elements...)}
}

// DuplicateNames returns the non-empty field names used by more than
// one element, in first-seen order. The collection itself does not
// enforce name uniqueness; callers decide whether to warn or reject.
func (c Collection) DuplicateNames() []string {
	seen := make(map[string]int, len(c.Elements))
	var duplicates []string
	for _, e := range c.Elements {
		if e.Name == "" {
			continue
		}
		seen[e.Name]++
		if seen[e.Name] == 2 {
			duplicates = append(duplicates, e.Name)
		}
	}
	return duplicates
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
