package element

import (
	"github.com/google/uuid"
)

var defaultLabels = map[Type]string{
	TypeTextInput:      "Text Input",
	TypeEmailInput:     "Email Address",
	TypeNumberInput:    "Number",
	TypeTextarea:       "Long Answer",
	TypeSelect:         "Dropdown",
	TypeCheckbox:       "Checkboxes",
	TypeRadio:          "Multiple Choice",
	TypeSubmitButton:   "Submit",
	TypeResetButton:    "Reset",
	TypeImage:          "Image",
	TypeRateScale:      "Rating",
	TypeBooleanSwitch:  "Yes / No",
	TypeDateTimePicker: "Date & Time",
	TypeFullName:       "Full Name",
}

var defaultPlaceholders = map[Type]string{
	TypeTextInput:   "Enter text...",
	TypeEmailInput:  "name@example.com",
	TypeNumberInput: "0",
	TypeTextarea:    "Type your answer here...",
	TypeFullName:    "First and last name",
}

var defaultOptions = []string{"Option 1", "Option 2", "Option 3"}

// DefaultLabel returns the human-readable label new elements of type t
// start with. Useful for palette listings.
func DefaultLabel(t Type) string {
	return defaultLabels[t]
}

// New creates an element of the given type with a generated id and
// type-appropriate defaults. The type is assumed to be a member of the
// closed palette enum.
func New(t Type) Element {
	e := Element{
		ID:      uuid.New().String(),
		Type:    t,
		Label:   defaultLabels[t],
		Styling: Styling{Width: WidthFull, Size: SizeMedium},
	}

	if placeholder, ok := defaultPlaceholders[t]; ok {
		e.Placeholder = placeholder
	}
	if t.IsChoice() {
		e.Options = append([]string(nil), defaultOptions...)
	}

	return e
}
