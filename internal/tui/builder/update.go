package builder

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/registry"
	"github.com/formcanvas/formcanvas/internal/theme"
	"github.com/formcanvas/formcanvas/internal/wizard"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case formSavedMsg:
		if msg.Err != nil {
			m.warning = "save failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = "saved " + strings.TrimSpace(msg.Title)
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.session.Flush()
		m.quitting = true
		return m, tea.Quit
	}

	if m.editing != editNone {
		return m.handleEditKey(msg)
	}

	if m.confirmReset {
		return m.handleConfirmKey(msg)
	}

	if m.placing != nil {
		return m.handlePlacementKey(msg)
	}

	switch msg.String() {
	case "q":
		m.session.Flush()
		m.quitting = true
		return m, tea.Quit
	}

	m.warning = ""

	switch m.session.Step() {
	case wizard.StepBuild:
		return m.handleBuildKey(msg)
	case wizard.StepStyle:
		return m.handleStyleKey(msg)
	case wizard.StepPreview:
		return m.handlePreviewKey(msg)
	}

	return m, nil
}

// handleBuildKey drives the palette/canvas panes of the build step.
func (m Model) handleBuildKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if m.focus == FocusPalette {
			m.focus = FocusCanvas
		} else {
			m.focus = FocusPalette
		}

	case "up", "k":
		if m.focus == FocusPalette {
			if m.paletteCursor > 0 {
				m.paletteCursor--
			}
		} else {
			m.moveCanvasCursor(-1)
		}

	case "down", "j":
		if m.focus == FocusPalette {
			if m.paletteCursor < len(element.Palette)-1 {
				m.paletteCursor++
			}
		} else {
			m.moveCanvasCursor(1)
		}

	case "enter":
		if m.focus == FocusPalette {
			if m.collection.Len() == 0 {
				m.dropOnCanvas(element.Palette[m.paletteCursor])
			} else {
				m.placing = &placement{Type: element.Palette[m.paletteCursor], Slot: m.collection.Len()}
			}
		} else if sel, ok := m.collection.Selected(); ok {
			return m.beginEdit(editLabel, sel.Label, "Label"), nil
		}

	case "a":
		m.collection = m.collection.Add(element.Palette[m.paletteCursor])
		m.canvasCursor = m.collection.IndexOf(m.collection.SelectedID)
		m.syncFormData()

	case "d", "delete", "backspace":
		if m.focus == FocusCanvas {
			if sel, ok := m.collection.Selected(); ok {
				m.collection = m.collection.Remove(sel.ID)
				m.moveCanvasCursor(0)
				m.syncFormData()
			}
		}

	case "r":
		if sel, ok := m.collection.Selected(); ok {
			required := !sel.Required
			m.collection = m.collection.Update(sel.ID, element.Patch{Required: &required})
			m.syncFormData()
		}

	case "shift+up", "K":
		if i := m.selectedIndex(); i > 0 {
			m.collection = m.collection.Move(i, i-1)
			m.canvasCursor = i - 1
			m.syncFormData()
		}

	case "shift+down", "J":
		if i := m.selectedIndex(); i >= 0 && i < m.collection.Len()-1 {
			m.collection = m.collection.Move(i, i+1)
			m.canvasCursor = i + 1
			m.syncFormData()
		}

	case "t":
		return m.beginEdit(editTitle, m.title, "Form title"), nil

	case "e":
		if sel, ok := m.collection.Selected(); ok {
			return m.beginEdit(editLabel, sel.Label, "Label"), nil
		}

	case "n":
		if sel, ok := m.collection.Selected(); ok {
			return m.beginEdit(editName, sel.Name, "Field name"), nil
		}

	case "p":
		if sel, ok := m.collection.Selected(); ok {
			return m.beginEdit(editPlaceholder, sel.Placeholder, "Placeholder"), nil
		}

	case "o":
		if sel, ok := m.collection.Selected(); ok {
			if !sel.Type.IsChoice() {
				m.warning = "only choice elements have options"
				return m, nil
			}
			return m.beginEdit(editOptions, strings.Join(sel.Options, ", "), "Options (comma separated)"), nil
		}

	case "right":
		if !m.canLeaveBuild() {
			m.warning = "add at least one element before styling"
			return m, nil
		}
		if dups := m.collection.DuplicateNames(); len(dups) > 0 {
			m.warning = "duplicate field names: " + strings.Join(dups, ", ")
			return m, nil
		}
		m.session.NextStep()
	}

	return m, nil
}

// handlePlacementKey walks the insertion points while a palette element
// is being placed.
func (m Model) handlePlacementKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.placing = nil

	case "up", "k":
		if m.placing.Slot > 0 {
			m.placing.Slot--
		}

	case "down", "j":
		if m.placing.Slot < m.collection.Len() {
			m.placing.Slot++
		}

	case "enter":
		item := element.PaletteItem(m.placing.Type)
		target := m.placementTarget()
		m.collection = m.collection.ResolveDrop(item, target)
		m.canvasCursor = m.collection.IndexOf(m.collection.SelectedID)
		m.placing = nil
		m.focus = FocusCanvas
		m.syncFormData()
	}

	return m, nil
}

// placementTarget converts the placement slot into a drop target. Slot
// i aims at the top edge of element i; the final slot aims below the
// last element.
func (m Model) placementTarget() element.DropTarget {
	if m.collection.Len() == 0 {
		return element.CanvasTarget()
	}
	if m.placing.Slot < m.collection.Len() {
		return element.InsertionPoint(m.collection.Elements[m.placing.Slot].ID, element.DropTop)
	}
	last := m.collection.Elements[m.collection.Len()-1]
	return element.InsertionPoint(last.ID, element.DropBottom)
}

// handleStyleKey drives the theme list and the color customizer.
func (m Model) handleStyleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.customizing {
		switch msg.String() {
		case "esc":
			m.customizing = false

		case "up", "k":
			if m.colorCursor > 0 {
				m.colorCursor--
			}

		case "down", "j":
			if m.colorCursor < len(colorFields)-1 {
				m.colorCursor++
			}

		case "enter":
			return m.beginEdit(editColor, m.colorFieldValue(m.colorCursor), colorFields[m.colorCursor]), nil

		case "R":
			m.session.ResetColors()
			if sel := m.selectedTheme(); sel != nil {
				m.colors = theme.SeedColors(*sel)
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.themeCursor > 0 {
			m.themeCursor--
		}

	case "down", "j":
		if m.themeCursor < len(m.catalog)-1 {
			m.themeCursor++
		}

	case "enter":
		if t, ok := m.cursorTheme(); ok {
			m.session.SelectTheme(t)
		}

	case "c":
		sel := m.selectedTheme()
		if sel == nil {
			m.warning = "select a theme first"
			return m, nil
		}
		m.colors = theme.SeedColors(*sel)
		m.colorCursor = 0
		m.customizing = true

	case "R":
		m.session.ResetColors()

	case "left":
		m.session.PreviousStep()

	case "right":
		m.session.NextStep()
	}

	return m, nil
}

// handlePreviewKey drives the preview step: settings toggles, complete,
// save, and reset.
func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left":
		m.session.PreviousStep()

	case "1":
		m.settings.ShowProgressBar = !m.settings.ShowProgressBar
		m.syncFormData()
	case "2":
		m.settings.AllowSaveProgress = !m.settings.AllowSaveProgress
		m.syncFormData()
	case "3":
		m.settings.ShowFormTitle = !m.settings.ShowFormTitle
		m.syncFormData()
	case "4":
		m.settings.CompactMode = !m.settings.CompactMode
		m.syncFormData()

	case "enter":
		m.session.Complete()
		m.status = "form completed"
		return m, clearStatusCmd()

	case "s":
		if m.forms == nil {
			m.warning = "no form registry configured"
			return m, nil
		}
		return m, saveFormCmd(m.forms, m.buildForm())

	case "R":
		if m.confirmations {
			m.confirmReset = true
			return m, nil
		}
		m.resetWizard()
	}

	return m, nil
}

// handleConfirmKey resolves the reset confirmation prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmReset = false
		m.resetWizard()
	case "n", "N", "esc":
		m.confirmReset = false
	}
	return m, nil
}

// handleEditKey feeds keys into the inline text input until commit or
// cancel.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		return m, nil

	case "enter":
		return m.commitEdit(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// beginEdit focuses the inline input on a field.
func (m Model) beginEdit(field editField, value, placeholder string) Model {
	m.editing = field
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

// commitEdit applies the inline input's value to whatever it was
// editing.
func (m Model) commitEdit() Model {
	value := strings.TrimSpace(m.input.Value())
	field := m.editing
	m.editing = editNone
	m.input.Blur()

	switch field {
	case editTitle:
		if value == "" {
			value = wizard.DefaultTitle
		}
		m.title = value
		m.syncFormData()

	case editLabel:
		if sel, ok := m.collection.Selected(); ok {
			m.collection = m.collection.Update(sel.ID, element.Patch{Label: &value})
			m.syncFormData()
		}

	case editName:
		if value != "" && !element.ValidName(value) {
			m.warning = "field names are lowercase letters and hyphens, starting with a letter"
			return m
		}
		if sel, ok := m.collection.Selected(); ok {
			m.collection = m.collection.Update(sel.ID, element.Patch{Name: &value})
			m.syncFormData()
			if dups := m.collection.DuplicateNames(); len(dups) > 0 {
				m.warning = "duplicate field names: " + strings.Join(dups, ", ")
			}
		}

	case editPlaceholder:
		if sel, ok := m.collection.Selected(); ok {
			m.collection = m.collection.Update(sel.ID, element.Patch{Placeholder: &value})
			m.syncFormData()
		}

	case editOptions:
		if sel, ok := m.collection.Selected(); ok {
			options := splitOptions(value)
			m.collection = m.collection.Update(sel.ID, element.Patch{Options: &options})
			m.syncFormData()
		}

	case editColor:
		m.setColorField(m.colorCursor, value)
	}

	return m
}

// setColorField writes one customizer entry and pushes the whole
// palette into the session.
func (m *Model) setColorField(i int, value string) {
	switch colorFields[i] {
	case "text":
		m.colors.Text = value
	case "background":
		m.colors.Background = value
	case "button":
		m.colors.Button = value
	case "header":
		m.colors.Header = value
	case "font":
		switch theme.Font(value) {
		case theme.FontSans, theme.FontSerif, theme.FontMono:
			m.colors.Font = theme.Font(value)
		default:
			m.warning = "font must be sans, serif, or mono"
			return
		}
	}
	m.session.CustomizeColors(m.colors)
}

// colorFieldValue reads the customizer entry under the cursor.
func (m Model) colorFieldValue(i int) string {
	switch colorFields[i] {
	case "text":
		return m.colors.Text
	case "background":
		return m.colors.Background
	case "button":
		return m.colors.Button
	case "header":
		return m.colors.Header
	case "font":
		return string(m.colors.Font)
	}
	return ""
}

// dropOnCanvas appends a palette element to an empty or full canvas.
func (m *Model) dropOnCanvas(t element.Type) {
	m.collection = m.collection.ResolveDrop(element.PaletteItem(t), element.CanvasTarget())
	m.canvasCursor = m.collection.IndexOf(m.collection.SelectedID)
	m.focus = FocusCanvas
	m.syncFormData()
}

// moveCanvasCursor shifts the canvas cursor and keeps the collection's
// selection in step with it.
func (m *Model) moveCanvasCursor(delta int) {
	if m.collection.Len() == 0 {
		m.canvasCursor = 0
		return
	}
	m.canvasCursor += delta
	if m.canvasCursor < 0 {
		m.canvasCursor = 0
	}
	if m.canvasCursor >= m.collection.Len() {
		m.canvasCursor = m.collection.Len() - 1
	}
	m.collection = m.collection.Select(m.collection.Elements[m.canvasCursor].ID)
}

func (m Model) selectedIndex() int {
	return m.collection.IndexOf(m.collection.SelectedID)
}

// resetWizard clears the session and the working copies.
func (m *Model) resetWizard() {
	m.session.Reset()
	state := m.session.State()
	m.collection = element.Collection{Elements: state.FormData.Elements}
	m.title = state.FormData.Title
	m.settings = state.FormData.Settings
	m.focus = FocusPalette
	m.paletteCursor = 0
	m.canvasCursor = 0
	m.themeCursor = 0
	m.customizing = false
	m.placing = nil
	m.status = "wizard reset"
}

// buildForm snapshots the working state into a registry form.
func (m Model) buildForm() registry.Form {
	return registry.NewForm(m.title, m.settings.Description, m.collection.Elements, m.settings)
}

func splitOptions(value string) []string {
	parts := strings.Split(value, ",")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}
