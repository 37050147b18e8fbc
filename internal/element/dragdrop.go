package element

// DropPosition identifies which edge of an element an insertion point
// is bound to.
type DropPosition string

const (
	DropTop    DropPosition = "top"
	DropBottom DropPosition = "bottom"
)

// DragItemKind discriminates what is being dragged.
type DragItemKind string

const (
	// DragPalette is a new element being dragged in from the palette.
	DragPalette DragItemKind = "palette"
	// DragElement is an existing canvas element being reordered.
	DragElement DragItemKind = "element"
)

// DragItem describes the payload of a drag gesture: either a palette
// entry (Type set) or an existing element (ElementID set).
type DragItem struct {
	Kind      DragItemKind
	Type      Type
	ElementID string
}

// PaletteItem builds the drag payload for a new element of type t.
func PaletteItem(t Type) DragItem {
	return DragItem{Kind: DragPalette, Type: t}
}

// CanvasItem builds the drag payload for reordering an existing element.
func CanvasItem(id string) DragItem {
	return DragItem{Kind: DragElement, ElementID: id}
}

// DropTargetKind discriminates where a drag gesture ended.
type DropTargetKind string

const (
	// TargetInsertionPoint is a drop zone bound to a specific element's
	// top or bottom edge.
	TargetInsertionPoint DropTargetKind = "insertion-point"
	// TargetCanvas is the generic canvas drop zone.
	TargetCanvas DropTargetKind = "canvas"
	// TargetElement is another canvas element (reorder target).
	TargetElement DropTargetKind = "element"
	// TargetNone means the gesture ended with no resolvable target.
	TargetNone DropTargetKind = "none"
)

// DropTarget describes where a drag gesture ended.
type DropTarget struct {
	Kind      DropTargetKind
	ElementID string
	Position  DropPosition
}

// InsertionPoint builds a drop target bound to one edge of an element.
func InsertionPoint(elementID string, position DropPosition) DropTarget {
	return DropTarget{Kind: TargetInsertionPoint, ElementID: elementID, Position: position}
}

// CanvasTarget builds the generic canvas drop target.
func CanvasTarget() DropTarget {
	return DropTarget{Kind: TargetCanvas}
}

// ElementTarget builds a reorder drop target over an existing element.
func ElementTarget(id string) DropTarget {
	return DropTarget{Kind: TargetElement, ElementID: id}
}

// ResolveDrop applies one completed drop intent to the collection.
// Dragging must never corrupt the list: any combination that cannot be
// resolved against the current state returns the collection unchanged.
//
//   - Palette item onto an insertion point: the bound element's current
//     index decides the position (top inserts before, bottom after).
//     If the element is gone by drop time, the drop is ignored.
//   - Palette item onto the canvas: append.
//   - Existing element onto another element: reorder via Move with both
//     indices computed against the current order.
//   - Everything else: no-op.
func (c Collection) ResolveDrop(item DragItem, target DropTarget) Collection {
	switch item.Kind {
	case DragPalette:
		switch target.Kind {
		case TargetInsertionPoint:
			i := c.IndexOf(target.ElementID)
			if i < 0 {
				return c
			}
			if target.Position == DropBottom {
				i++
			}
			return c.AddAt(item.Type, i)
		case TargetCanvas:
			return c.AddAt(item.Type, len(c.Elements))
		}

	case DragElement:
		if target.Kind != TargetElement {
			return c
		}
		from := c.IndexOf(item.ElementID)
		to := c.IndexOf(target.ElementID)
		if from < 0 || to < 0 {
			return c
		}
		return c.Move(from, to)
	}

	return c
}
