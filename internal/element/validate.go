package element

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Field names become the submission keys, so they follow the HTML
	// name convention used throughout: lowercase letters and hyphens,
	// starting with a letter.
	fieldNamePattern = regexp.MustCompile(`^[a-z][a-z-]*$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the element package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_name", func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the
// element package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidName reports whether name is a well-formed field name.
func ValidName(name string) bool {
	return fieldNamePattern.MatchString(name)
}

// Validate checks the element against its structural rules. The editor
// tolerates transient invalid states (an emptied option list, a blank
// name), so this is called at save/export boundaries rather than on
// every keystroke.
func (e Element) Validate() error {
	if err := validatorInstance().Struct(e); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return apperrors.NewValidationError(first.Field(), validationMessage(first), err)
		}
		return err
	}

	if e.Type.IsChoice() && len(e.Options) == 0 {
		return apperrors.NewValidationError("options", "choice elements need at least one option", nil)
	}

	if e.Validation.MinLength != nil && e.Validation.MaxLength != nil &&
		*e.Validation.MinLength > *e.Validation.MaxLength {
		return apperrors.NewValidationError("validation", "minLength exceeds maxLength", nil)
	}
	if e.Validation.Min != nil && e.Validation.Max != nil &&
		*e.Validation.Min > *e.Validation.Max {
		return apperrors.NewValidationError("validation", "min exceeds max", nil)
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "field_name":
		return "must be lowercase letters and hyphens, starting with a letter"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}
