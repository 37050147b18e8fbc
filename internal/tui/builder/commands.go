package builder

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/formcanvas/formcanvas/internal/registry"
)

// saveFormCmd writes the completed form into the registry and reports
// the result back to the update loop.
func saveFormCmd(reg *registry.Registry, form registry.Form) tea.Cmd {
	return func() tea.Msg {
		if errs := form.Validate(); len(errs) > 0 {
			return formSavedMsg{Title: form.Title, Err: errs[0]}
		}
		if err := reg.Add(form); err != nil {
			return formSavedMsg{Title: form.Title, Err: err}
		}
		if err := reg.Save(); err != nil {
			return formSavedMsg{Title: form.Title, Err: err}
		}
		return formSavedMsg{Title: form.Title}
	}
}

// clearStatusCmd expires the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
