package wizard

import (
	"encoding/json"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/logger"
	"github.com/formcanvas/formcanvas/internal/store"
	"github.com/formcanvas/formcanvas/internal/theme"
)

// DefaultTitle is the placeholder title a fresh session starts with.
const DefaultTitle = "Untitled Form"

// Settings is a free-form bag of presentation toggles. The session
// passes it through without validation.
type Settings struct {
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	ShowProgressBar   bool   `json:"showProgressBar" yaml:"show_progress_bar"`
	AllowSaveProgress bool   `json:"allowSaveProgress" yaml:"allow_save_progress"`
	ShowFormTitle     bool   `json:"showFormTitle" yaml:"show_form_title"`
	CompactMode       bool   `json:"compactMode" yaml:"compact_mode"`
}

// DefaultSettings returns the presentation toggles for a fresh form.
func DefaultSettings() Settings {
	return Settings{ShowProgressBar: true, ShowFormTitle: true}
}

// FormData is the build-step payload: the form being assembled.
type FormData struct {
	Title    string            `json:"title" yaml:"title"`
	Elements []element.Element `json:"elements" yaml:"elements"`
	Settings Settings          `json:"settings" yaml:"settings"`
}

// State is the complete persisted session snapshot.
type State struct {
	CurrentStep   Step         `json:"currentStep" yaml:"current_step"`
	FormData      FormData     `json:"formData" yaml:"form_data"`
	SelectedTheme *theme.Theme `json:"selectedTheme,omitempty" yaml:"selected_theme,omitempty"`
	IsComplete    bool         `json:"isComplete" yaml:"is_complete"`
}

func initialState() State {
	return State{
		CurrentStep: StepBuild,
		FormData: FormData{
			Title:    DefaultTitle,
			Elements: []element.Element{},
			Settings: DefaultSettings(),
		},
	}
}

// Session is the wizard state machine. Every mutating operation
// computes the successor state and then best-effort persists it: a
// failing store degrades to "the edit won't survive a restart", never
// to a failed edit. The theme catalog is injected so tests can supply
// fixtures.
type Session struct {
	state   State
	catalog theme.Catalog
	store   store.Store
	log     *logger.Logger
}

// NewSession constructs a session, rehydrating from the store when a
// parsable snapshot exists and falling back to the initial state
// otherwise. The loaded value wins wholesale; there is no merging.
func NewSession(catalog theme.Catalog, st store.Store, log *logger.Logger) *Session {
	s := &Session{state: initialState(), catalog: catalog, store: st, log: log}

	data, ok, err := st.Load()
	if err != nil {
		log.Error(err, "session rehydration failed, starting fresh")
		return s
	}
	if !ok {
		return s
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Error(err, "persisted session is unparsable, starting fresh")
		return s
	}
	if loaded.CurrentStep == "" {
		loaded.CurrentStep = StepBuild
	}
	if loaded.FormData.Elements == nil {
		loaded.FormData.Elements = []element.Element{}
	}

	s.state = loaded
	return s
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	return s.state
}

// Step returns the active wizard step.
func (s *Session) Step() Step {
	return s.state.CurrentStep
}

// IsComplete reports whether the wizard has been completed.
func (s *Session) IsComplete() bool {
	return s.state.IsComplete
}

// NextStep advances the wizard. The transition itself is unconditional;
// gating ("at least one element before styling") is a presentation
// concern layered on top. Preview has no next.
func (s *Session) NextStep() {
	next := s.state.CurrentStep.Next()
	if next == s.state.CurrentStep {
		return
	}
	s.state.CurrentStep = next
	s.persist()
}

// PreviousStep moves the wizard back. Build has no previous.
func (s *Session) PreviousStep() {
	prev := s.state.CurrentStep.Previous()
	if prev == s.state.CurrentStep {
		return
	}
	s.state.CurrentStep = prev
	s.persist()
}

// UpdateFormData replaces the build-step payload wholesale. A nil
// settings keeps the previous value.
func (s *Session) UpdateFormData(title string, elements []element.Element, settings *Settings) {
	data := FormData{
		Title:    title,
		Elements: append([]element.Element(nil), elements...),
		Settings: s.state.FormData.Settings,
	}
	if data.Elements == nil {
		data.Elements = []element.Element{}
	}
	if settings != nil {
		data.Settings = *settings
	}
	s.state.FormData = data
	s.persist()
}

// SelectTheme sets the selected theme to the given catalog entry,
// dropping any previous color customization.
func (s *Session) SelectTheme(t theme.Theme) {
	clone := t
	clone.CustomColors = nil
	s.state.SelectedTheme = &clone
	s.persist()
}

// CustomizeColors attaches the colors to the currently selected theme.
// The selected theme is shallow-cloned; the catalog entry it came from
// is never touched. Without a selected theme this is a no-op.
func (s *Session) CustomizeColors(colors theme.CustomColors) {
	if s.state.SelectedTheme == nil {
		return
	}
	customized := theme.ApplyColors(*s.state.SelectedTheme, colors)
	s.state.SelectedTheme = &customized
	s.persist()
}

// ResetColors discards any customization by re-reading the original
// catalog entry for the selected theme's id. A theme id that has left
// the catalog is a benign race, not an error: the state is left
// unchanged.
func (s *Session) ResetColors() {
	if s.state.SelectedTheme == nil {
		return
	}
	original, ok := s.catalog.Lookup(s.state.SelectedTheme.ID)
	if !ok {
		return
	}
	original.CustomColors = nil
	s.state.SelectedTheme = &original
	s.persist()
}

// Complete marks the wizard finished. It deliberately does not clear
// the store: a completed-but-not-reset session rehydrates back into the
// completed screen on restart. Only Reset clears storage.
func (s *Session) Complete() {
	s.state.IsComplete = true
	s.persist()
}

// Reset returns the session to its initial defaulted state and clears
// every storage tier. This is the only operation that clears the store.
func (s *Session) Reset() {
	s.state = initialState()
	if err := s.store.Clear(); err != nil {
		s.log.Error(err, "failed to clear session store")
	}
}

// Flush performs one last best-effort persist of the latest state. The
// TUI calls it on the way out to cover any still-pending state.
func (s *Session) Flush() {
	s.persist()
}

func (s *Session) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error(err, "failed to encode session state")
		return
	}
	if err := s.store.Save(data); err != nil {
		s.log.Error(err, "failed to persist session, edits will not survive a restart")
	}
}
