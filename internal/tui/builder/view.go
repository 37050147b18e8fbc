package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/theme"
	"github.com/formcanvas/formcanvas/internal/wizard"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.confirmReset {
		content.WriteString(m.renderConfirm())
		return content.String()
	}

	switch m.session.Step() {
	case wizard.StepBuild:
		content.WriteString(m.renderBuild())
	case wizard.StepStyle:
		content.WriteString(m.renderStyle())
	case wizard.StepPreview:
		content.WriteString(m.renderPreview())
	}

	if m.editing != editNone {
		content.WriteString("\n")
		content.WriteString(itemStyle.Render(m.input.Placeholder+": ") + m.input.View())
	}

	if m.warning != "" {
		content.WriteString("\n")
		content.WriteString(warningStyle.Render("! " + m.warning))
	}
	if m.status != "" {
		content.WriteString("\n")
		content.WriteString(statusStyle.Render(m.status))
	}

	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and the step indicator
func (m Model) renderHeader() string {
	title := titleStyle.Render("FormCanvas")

	parts := make([]string, 0, len(wizard.Steps))
	for _, step := range wizard.Steps {
		label := fmt.Sprintf("%d. %s", step.Index()+1, step.Title())
		if step == m.session.Step() {
			parts = append(parts, stepActiveStyle.Render(label))
		} else {
			parts = append(parts, stepInactiveStyle.Render(label))
		}
	}
	indicator := itemStyle.Render(strings.Join(parts, mutedStyle.Render("  ›  ")))

	return lipgloss.JoinVertical(lipgloss.Left, title, indicator)
}

// renderBuild renders the palette and canvas panes side by side
func (m Model) renderBuild() string {
	palette := m.renderPalette()
	canvas := m.renderCanvas()
	return lipgloss.JoinHorizontal(lipgloss.Top, palette, " ", canvas)
}

func (m Model) renderPalette() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Elements"))
	b.WriteString("\n")

	for i, t := range element.Palette {
		label := element.DefaultLabel(t)
		if i == m.paletteCursor && m.focus == FocusPalette {
			b.WriteString(selectedItemStyle.Render("> " + label))
		} else {
			b.WriteString(itemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	style := paneStyle
	if m.focus == FocusPalette && m.placing == nil {
		style = paneFocusedStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCanvas() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(m.title))
	b.WriteString("\n")

	if m.collection.Len() == 0 && m.placing == nil {
		b.WriteString(mutedStyle.Render("  Drop elements here"))
	}

	for i, e := range m.collection.Elements {
		if m.placing != nil && m.placing.Slot == i {
			b.WriteString(insertionPointStyle.Render("  ── insert here ──"))
			b.WriteString("\n")
		}
		b.WriteString(m.renderCanvasRow(i, e))
		b.WriteString("\n")
	}
	if m.placing != nil && m.placing.Slot == m.collection.Len() {
		b.WriteString(insertionPointStyle.Render("  ── insert here ──"))
		b.WriteString("\n")
	}

	style := paneStyle
	if m.focus == FocusCanvas || m.placing != nil {
		style = paneFocusedStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCanvasRow(i int, e element.Element) string {
	label := e.Label
	if label == "" {
		label = string(e.Type)
	}
	row := fmt.Sprintf("%s  %s", label, mutedStyle.Render("("+string(e.Type)+")"))
	if e.Name != "" {
		row += mutedStyle.Render("  #" + e.Name)
	}
	if e.Required {
		row += requiredMarkStyle.Render(" *")
	}

	if e.ID == m.collection.SelectedID && m.focus == FocusCanvas && m.placing == nil {
		return selectedItemStyle.Render("> " + row)
	}
	return itemStyle.Render(row)
}

// renderStyle renders the theme list next to the detail or customizer pane
func (m Model) renderStyle() string {
	list := m.renderThemeList()

	var detail string
	if m.customizing {
		detail = m.renderCustomizer()
	} else {
		detail = m.renderThemeDetail()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
}

func (m Model) renderThemeList() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Themes"))
	b.WriteString("\n")

	selected := m.selectedTheme()
	for i, t := range m.catalog {
		mark := "  "
		if selected != nil && selected.ID == t.ID {
			mark = "✓ "
		}
		if i == m.themeCursor && !m.customizing {
			b.WriteString(selectedItemStyle.Render("> " + mark + t.Name))
		} else {
			b.WriteString(itemStyle.Render(mark + t.Name))
		}
		b.WriteString("\n")
	}

	style := paneStyle
	if !m.customizing {
		style = paneFocusedStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderThemeDetail() string {
	t, ok := m.cursorTheme()
	if !ok {
		return paneStyle.Render(mutedStyle.Render("no theme"))
	}

	colors := theme.SeedColors(t)

	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(t.Name))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render(t.Description))
	b.WriteString("\n\n")
	b.WriteString(itemStyle.Render("text       " + swatch(colors.Text)))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render("background " + swatch(colors.Background)))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render("button     " + swatch(colors.EffectiveButton())))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render("header     " + swatch(colors.EffectiveHeader())))
	b.WriteString("\n")
	b.WriteString(itemStyle.Render("font       " + string(colors.Font)))

	return paneStyle.Render(b.String())
}

func (m Model) renderCustomizer() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Customize colors"))
	b.WriteString("\n")

	for i, field := range colorFields {
		value := m.colorFieldValue(i)
		row := fmt.Sprintf("%-10s %s %s", field, swatch(value), value)
		if i == m.colorCursor {
			b.WriteString(selectedItemStyle.Render("> " + row))
		} else {
			b.WriteString(itemStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return paneFocusedStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderPreview renders the form roughly as a respondent would see it,
// using the selected theme's colors.
func (m Model) renderPreview() string {
	colors := m.previewColors()

	headerStyle := lipgloss.NewStyle().Bold(true)
	textStyle := lipgloss.NewStyle()
	buttonStyle := lipgloss.NewStyle().Bold(true).Padding(0, 2)
	if c := solidColor(colors.EffectiveHeader()); c != "" {
		headerStyle = headerStyle.Foreground(lipgloss.Color(c))
	}
	if c := solidColor(colors.EffectiveText()); c != "" {
		textStyle = textStyle.Foreground(lipgloss.Color(c))
	}
	if c := solidColor(colors.EffectiveButton()); c != "" {
		buttonStyle = buttonStyle.Background(lipgloss.Color(c))
	}

	var b strings.Builder

	if m.settings.ShowFormTitle {
		b.WriteString(headerStyle.Render(m.title))
		b.WriteString("\n")
	}
	if m.settings.Description != "" {
		b.WriteString(textStyle.Render(m.settings.Description))
		b.WriteString("\n")
	}
	if m.settings.ShowProgressBar {
		b.WriteString(mutedStyle.Render("▰▱▱▱▱▱▱▱"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, e := range m.collection.Elements {
		b.WriteString(renderPreviewElement(e, textStyle, buttonStyle))
		if !m.settings.CompactMode {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderSettingsPanel())

	if m.session.IsComplete() {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("✓ form complete"))
	}

	return paneStyle.Width(min(m.width-4, 64)).Render(b.String())
}

func renderPreviewElement(e element.Element, textStyle, buttonStyle lipgloss.Style) string {
	label := e.Label
	if e.Required {
		label += " *"
	}

	var b strings.Builder
	switch {
	case e.Type == element.TypeSubmitButton || e.Type == element.TypeResetButton:
		b.WriteString(buttonStyle.Render(label))
	case e.Type.IsChoice():
		b.WriteString(textStyle.Render(label))
		for _, opt := range e.Options {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("  ○ " + opt))
		}
	case e.Type == element.TypeTextarea:
		b.WriteString(textStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  ┆ " + placeholderOf(e)))
	default:
		b.WriteString(textStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  [ " + placeholderOf(e) + " ]"))
	}
	b.WriteString("\n")
	return b.String()
}

func placeholderOf(e element.Element) string {
	if e.Placeholder != "" {
		return e.Placeholder
	}
	return "..."
}

func (m Model) renderSettingsPanel() string {
	rows := []struct {
		key   string
		name  string
		value bool
	}{
		{"1", "progress bar", m.settings.ShowProgressBar},
		{"2", "save progress", m.settings.AllowSaveProgress},
		{"3", "show title", m.settings.ShowFormTitle},
		{"4", "compact mode", m.settings.CompactMode},
	}

	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Settings"))
	for _, r := range rows {
		mark := "✗"
		if r.value {
			mark = "✓"
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  [%s] %s %s", r.key, mark, r.name)))
	}
	return b.String()
}

// previewColors resolves the palette the preview renders with.
func (m Model) previewColors() theme.CustomColors {
	if sel := m.selectedTheme(); sel != nil {
		return theme.SeedColors(*sel)
	}
	return theme.CustomColors{}
}

func (m Model) renderConfirm() string {
	return warningStyle.Render("Reset the wizard and clear the saved session? (y/n)")
}

// renderFooter renders the context-sensitive key help
func (m Model) renderFooter() string {
	var help string
	switch {
	case m.editing != editNone:
		help = "enter confirm • esc cancel"
	case m.placing != nil:
		help = "↑/↓ choose slot • enter place • esc cancel"
	case m.customizing:
		help = "↑/↓ field • enter edit • R reset • esc close"
	default:
		switch m.session.Step() {
		case wizard.StepBuild:
			help = "tab panes • enter add/edit • d delete • shift+↑/↓ reorder • t/e/n/p/o edit • r required • → next • q quit"
		case wizard.StepStyle:
			help = "↑/↓ browse • enter select • c customize • R reset colors • ←/→ steps • q quit"
		case wizard.StepPreview:
			help = "1-4 settings • enter complete • s save • R reset • ← back • q quit"
		}
	}
	return helpStyle.Render(help)
}

// swatch renders a colored block for a solid color value, or the raw
// value when it is not a plain color.
func swatch(value string) string {
	if c := solidColor(value); c != "" {
		return lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	if value == "" {
		return mutedStyle.Render("··")
	}
	return mutedStyle.Render("≈≈")
}

// solidColor returns value when it is a plain hex color, empty when it
// is a gradient or blank.
func solidColor(value string) string {
	if strings.HasPrefix(value, "#") {
		return value
	}
	return ""
}
