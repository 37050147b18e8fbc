package wizard

// Step enumerates the three ordered wizard steps.
type Step string

const (
	StepBuild   Step = "build"
	StepStyle   Step = "style"
	StepPreview Step = "preview"
)

// Steps lists the wizard steps in order.
var Steps = []Step{StepBuild, StepStyle, StepPreview}

// Next returns the following step; the last step returns itself.
func (s Step) Next() Step {
	switch s {
	case StepBuild:
		return StepStyle
	case StepStyle:
		return StepPreview
	default:
		return s
	}
}

// Previous returns the preceding step; the first step returns itself.
func (s Step) Previous() Step {
	switch s {
	case StepPreview:
		return StepStyle
	case StepStyle:
		return StepBuild
	default:
		return s
	}
}

// Index returns the zero-based position of the step in the flow.
func (s Step) Index() int {
	for i, candidate := range Steps {
		if candidate == s {
			return i
		}
	}
	return 0
}

// Title returns the display title of the step.
func (s Step) Title() string {
	switch s {
	case StepBuild:
		return "Build"
	case StepStyle:
		return "Style"
	case StepPreview:
		return "Preview"
	default:
		return string(s)
	}
}

// String returns the string representation of the step.
func (s Step) String() string {
	return string(s)
}
