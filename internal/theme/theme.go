package theme

// Font enumerates the font families a custom palette can select.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
)

// Styles bundles the class strings a renderer applies to each region of
// a form. The values are opaque to the builder core; it only carries
// them through.
type Styles struct {
	Container     string `json:"container" yaml:"container"`
	Header        string `json:"header" yaml:"header"`
	Field         string `json:"field" yaml:"field"`
	Label         string `json:"label" yaml:"label"`
	Input         string `json:"input" yaml:"input"`
	Button        string `json:"button" yaml:"button"`
	Background    string `json:"background" yaml:"background"`
	BooleanSwitch string `json:"booleanSwitch,omitempty" yaml:"boolean_switch,omitempty"`
	ProgressBar   string `json:"progressBar,omitempty" yaml:"progress_bar,omitempty"`
}

// CustomColors is a per-session override of a theme's color, gradient
// and font values. A *Gradient field, when present, takes precedence
// over its solid counterpart.
type CustomColors struct {
	Text               string `json:"text" yaml:"text"`
	TextGradient       string `json:"textGradient,omitempty" yaml:"text_gradient,omitempty"`
	Font               Font   `json:"font" yaml:"font"`
	Background         string `json:"background" yaml:"background"`
	BackgroundGradient string `json:"backgroundGradient,omitempty" yaml:"background_gradient,omitempty"`
	Button             string `json:"button" yaml:"button"`
	ButtonGradient     string `json:"buttonGradient,omitempty" yaml:"button_gradient,omitempty"`
	Header             string `json:"header" yaml:"header"`
	HeaderGradient     string `json:"headerGradient,omitempty" yaml:"header_gradient,omitempty"`
}

// EffectiveText returns the text color, preferring the gradient.
func (c CustomColors) EffectiveText() string {
	if c.TextGradient != "" {
		return c.TextGradient
	}
	return c.Text
}

// EffectiveBackground returns the background color, preferring the gradient.
func (c CustomColors) EffectiveBackground() string {
	if c.BackgroundGradient != "" {
		return c.BackgroundGradient
	}
	return c.Background
}

// EffectiveButton returns the button color, preferring the gradient.
func (c CustomColors) EffectiveButton() string {
	if c.ButtonGradient != "" {
		return c.ButtonGradient
	}
	return c.Button
}

// EffectiveHeader returns the header color, preferring the gradient.
func (c CustomColors) EffectiveHeader() string {
	if c.HeaderGradient != "" {
		return c.HeaderGradient
	}
	return c.Header
}

// Theme is a named, immutable style record from the catalog. The
// builder never mutates catalog entries; user customization travels on
// CustomColors attached to a per-session copy.
type Theme struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description" yaml:"description"`
	Preview      string        `json:"preview" yaml:"preview"`
	Styles       Styles        `json:"styles" yaml:"styles"`
	CustomColors *CustomColors `json:"customColors,omitempty" yaml:"custom_colors,omitempty"`
}

// ApplyColors returns a copy of the theme with the colors attached. The
// receiver and the catalog entry it came from are left untouched, so
// several sessions can layer different overrides on the same base
// theme.
func ApplyColors(t Theme, colors CustomColors) Theme {
	clone := t
	c := colors
	clone.CustomColors = &c
	return clone
}

// Catalog is the ordered set of themes offered by the style step. It is
// injected, never a package-level mutable global; test fixtures supply
// their own.
type Catalog []Theme

// Lookup finds a theme by id.
func (c Catalog) Lookup(id string) (Theme, bool) {
	for _, t := range c {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// IDs returns the catalog's theme ids in display order.
func (c Catalog) IDs() []string {
	out := make([]string, 0, len(c))
	for _, t := range c {
		out = append(out, t.ID)
	}
	return out
}
