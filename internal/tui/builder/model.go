package builder

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/logger"
	"github.com/formcanvas/formcanvas/internal/registry"
	"github.com/formcanvas/formcanvas/internal/theme"
	"github.com/formcanvas/formcanvas/internal/wizard"
)

// Focus identifies which pane of the build step owns the cursor.
type Focus int

const (
	FocusPalette Focus = iota
	FocusCanvas
)

// editField identifies what the inline text input is editing.
type editField int

const (
	editNone editField = iota
	editTitle
	editLabel
	editName
	editPlaceholder
	editOptions
	editColor
)

// colorField indexes the customizer's editable palette entries.
var colorFields = []string{"text", "background", "button", "header", "font"}

// placement tracks an in-progress insertion-point choice. Slot i aims
// above element i; the slot past the end aims below the last element.
type placement struct {
	Type element.Type
	Slot int
}

// Model is the Bubbletea state for the form builder wizard.
type Model struct {
	session *wizard.Session
	catalog theme.Catalog
	forms   *registry.Registry
	log     *logger.Logger

	// Build step
	collection    element.Collection
	title         string
	settings      wizard.Settings
	focus         Focus
	paletteCursor int
	canvasCursor  int
	placing       *placement

	// Style step
	themeCursor int
	customizing bool
	colorCursor int
	colors      theme.CustomColors

	// Inline editing
	editing editField
	input   textinput.Model

	// Transient UI state
	warning      string
	status       string
	confirmReset bool

	width  int
	height int

	confirmations bool
	quitting      bool
}

// NewModel constructs the builder TUI around a rehydrated session.
func NewModel(session *wizard.Session, catalog theme.Catalog, forms *registry.Registry, log *logger.Logger, confirmations bool) Model {
	state := session.State()

	input := textinput.New()
	input.CharLimit = 120

	m := Model{
		session:       session,
		catalog:       catalog,
		forms:         forms,
		log:           log,
		collection:    element.Collection{Elements: state.FormData.Elements},
		title:         state.FormData.Title,
		settings:      state.FormData.Settings,
		focus:         FocusPalette,
		input:         input,
		confirmations: confirmations,
		width:         80,
		height:        24,
	}

	if state.SelectedTheme != nil {
		for i, id := range catalog.IDs() {
			if id == state.SelectedTheme.ID {
				m.themeCursor = i
				break
			}
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Step returns the active wizard step.
func (m Model) Step() wizard.Step {
	return m.session.Step()
}

// selectedTheme returns the session's selected theme, if any.
func (m Model) selectedTheme() *theme.Theme {
	return m.session.State().SelectedTheme
}

// cursorTheme returns the catalog entry under the style-step cursor.
func (m Model) cursorTheme() (theme.Theme, bool) {
	if m.themeCursor < 0 || m.themeCursor >= len(m.catalog) {
		return theme.Theme{}, false
	}
	return m.catalog[m.themeCursor], true
}

// canLeaveBuild gates the build step: the state machine itself never
// blocks a transition, the builder UI does.
func (m Model) canLeaveBuild() bool {
	return m.collection.Len() > 0
}

// syncFormData pushes the working copy into the session, which persists
// it best-effort.
func (m *Model) syncFormData() {
	m.session.UpdateFormData(m.title, m.collection.Elements, &m.settings)
}
