package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/wizard"
	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

// Form is a saved form definition. This is the record the HTTP CRUD
// surface operates on; it is unrelated to the browser-local wizard
// session snapshot.
type Form struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Elements    []element.Element `json:"elements" yaml:"elements"`
	Settings    wizard.Settings   `json:"settings" yaml:"settings"`
	CreatedAt   time.Time         `json:"createdAt" yaml:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" yaml:"updated_at"`
}

// NewForm creates a form record with a generated id and timestamps.
func NewForm(title, description string, elements []element.Element, settings wizard.Settings) Form {
	now := time.Now().UTC()
	return Form{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Elements:    append([]element.Element(nil), elements...),
		Settings:    settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the record before it is accepted into the registry.
// Unlike the in-editor collection, the registry does enforce field name
// uniqueness: two elements colliding on a submission key is a saved
// defect, not a transient editing state.
func (f Form) Validate() []error {
	var errs []error

	if f.Title == "" {
		errs = append(errs, apperrors.NewValidationError("title", "title is required", nil))
	}

	for i, e := range f.Elements {
		if !e.Type.IsValid() {
			errs = append(errs, apperrors.NewValidationError(
				indexedField(i, "type"), "unknown element type "+e.Type.String(), nil))
			continue
		}
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	collection := element.Collection{Elements: f.Elements}
	for _, name := range collection.DuplicateNames() {
		errs = append(errs, apperrors.NewValidationError(
			"elements", "field name used more than once: "+name, nil))
	}

	return errs
}

func indexedField(i int, field string) string {
	return fmt.Sprintf("elements[%d].%s", i, field)
}

// File is the JSON layout of the registry on disk.
type File struct {
	Version string `json:"version"`
	Forms   []Form `json:"forms"`
}
