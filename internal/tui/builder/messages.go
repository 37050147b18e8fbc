package builder

// formSavedMsg reports the outcome of persisting the completed form to
// the registry.
type formSavedMsg struct {
	Title string
	Err   error
}

// clearStatusMsg wipes the transient status line.
type clearStatusMsg struct{}
