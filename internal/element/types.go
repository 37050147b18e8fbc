package element

// Type enumerates the palette of form element kinds.
type Type string

const (
	TypeTextInput      Type = "text-input"
	TypeEmailInput     Type = "email-input"
	TypeNumberInput    Type = "number-input"
	TypeTextarea       Type = "textarea"
	TypeSelect         Type = "select"
	TypeCheckbox       Type = "checkbox"
	TypeRadio          Type = "radio"
	TypeSubmitButton   Type = "submit-button"
	TypeResetButton    Type = "reset-button"
	TypeImage          Type = "image"
	TypeRateScale      Type = "rate-scale"
	TypeBooleanSwitch  Type = "boolean-switch"
	TypeDateTimePicker Type = "datetime-picker"
	TypeFullName       Type = "full-name"
)

// Palette lists every element type in the order it is offered for
// insertion.
var Palette = []Type{
	TypeTextInput,
	TypeEmailInput,
	TypeNumberInput,
	TypeTextarea,
	TypeSelect,
	TypeCheckbox,
	TypeRadio,
	TypeSubmitButton,
	TypeResetButton,
	TypeImage,
	TypeRateScale,
	TypeBooleanSwitch,
	TypeDateTimePicker,
	TypeFullName,
}

// IsValid reports whether t is a known element type.
func (t Type) IsValid() bool {
	for _, candidate := range Palette {
		if candidate == t {
			return true
		}
	}
	return false
}

// IsChoice reports whether the type carries an ordered option list.
func (t Type) IsChoice() bool {
	return t == TypeSelect || t == TypeRadio || t == TypeCheckbox
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Width enumerates the layout widths an element can occupy.
type Width string

const (
	WidthFull  Width = "full"
	WidthHalf  Width = "half"
	WidthThird Width = "third"
)

// Size enumerates element rendering sizes.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Styling is always present on an element; defaults are applied at
// creation time.
type Styling struct {
	Width Width `json:"width" yaml:"width" validate:"oneof=full half third"`
	Size  Size  `json:"size" yaml:"size" validate:"oneof=small medium large"`
}

// Validation holds optional per-element constraints. Only the subset
// relevant to the element type is meaningful; the rest is ignored by
// renderers.
type Validation struct {
	MinLength *int     `json:"minLength,omitempty" yaml:"min_length,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"max_length,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Variant selects a rendering/formatting sub-mode for types that have
// more than one presentation.
type Variant string

const (
	// Number input variants. Default: NumberStandard.
	NumberStandard Variant = "standard"
	NumberSlider   Variant = "slider"

	// Rate scale variants. Default: RateStar.
	RateStar  Variant = "star"
	RateHeart Variant = "heart"
	RateScale Variant = "scale"

	// Boolean switch variants. Default: BooleanToggle.
	BooleanToggle   Variant = "toggle"
	BooleanCheckbox Variant = "checkbox"

	// Date/time picker variants. Default: DateTimeBoth.
	DateTimeBoth Variant = "datetime"
	DateOnly     Variant = "date"
	TimeOnly     Variant = "time"
)

// Element is one configured form field. ID and Type are fixed at
// creation; everything else is mutable through Collection.Update.
type Element struct {
	ID          string `json:"id" yaml:"id"`
	Type        Type   `json:"type" yaml:"type"`
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"help_text,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,field_name"`
	Required    bool   `json:"required" yaml:"required"`
	Disabled    bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ReadOnly    bool   `json:"readonly,omitempty" yaml:"readonly,omitempty"`

	Validation Validation `json:"validation" yaml:"validation"`
	Styling    Styling    `json:"styling" yaml:"styling"`

	// Options is present only for choice types; order is display order.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	NumberVariant   Variant `json:"numberVariant,omitempty" yaml:"number_variant,omitempty"`
	RateVariant     Variant `json:"rateVariant,omitempty" yaml:"rate_variant,omitempty"`
	BooleanVariant  Variant `json:"booleanVariant,omitempty" yaml:"boolean_variant,omitempty"`
	DateTimeVariant Variant `json:"dateTimeVariant,omitempty" yaml:"date_time_variant,omitempty"`
}

// EffectiveNumberVariant returns the number rendering mode, applying the
// documented default when unset.
func (e Element) EffectiveNumberVariant() Variant {
	if e.NumberVariant == "" {
		return NumberStandard
	}
	return e.NumberVariant
}

// EffectiveRateVariant returns the rate-scale rendering mode.
func (e Element) EffectiveRateVariant() Variant {
	if e.RateVariant == "" {
		return RateStar
	}
	return e.RateVariant
}

// EffectiveBooleanVariant returns the boolean rendering mode.
func (e Element) EffectiveBooleanVariant() Variant {
	if e.BooleanVariant == "" {
		return BooleanToggle
	}
	return e.BooleanVariant
}

// EffectiveDateTimeVariant returns the date/time rendering mode.
func (e Element) EffectiveDateTimeVariant() Variant {
	if e.DateTimeVariant == "" {
		return DateTimeBoth
	}
	return e.DateTimeVariant
}

// Clone returns a deep copy of the element. Options is the only
// reference field.
func (e Element) Clone() Element {
	clone := e
	if e.Options != nil {
		clone.Options = append([]string(nil), e.Options...)
	}
	return clone
}
