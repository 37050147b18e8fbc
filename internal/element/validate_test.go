package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "email", true},
		{"hyphenated", "full-name", true},
		{"single letter", "a", true},
		{"leading hyphen", "-name", false},
		{"leading digit", "1name", false},
		{"uppercase", "Email", false},
		{"underscore", "full_name", false},
		{"empty", "", false},
		{"spaces", "full name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, ValidName(tt.input))
		})
	}
}

func TestElementValidate(t *testing.T) {
	t.Parallel()

	e := New(TypeTextInput)
	require.NoError(t, e.Validate())

	e.Name = "Bad Name"
	err := e.Validate()
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	e.Name = "good-name"
	require.NoError(t, e.Validate())
}

func TestElementValidateChoiceOptions(t *testing.T) {
	t.Parallel()

	e := New(TypeSelect)
	require.NoError(t, e.Validate())

	// The editor tolerates a transient empty option list, but a choice
	// element cannot be saved without options.
	e.Options = nil
	err := e.Validate()
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "options", validationErr.Field)
}

func TestElementValidateConstraintRanges(t *testing.T) {
	t.Parallel()

	e := New(TypeTextInput)
	minLen, maxLen := 10, 5
	e.Validation = Validation{MinLength: &minLen, MaxLength: &maxLen}
	require.Error(t, e.Validate())

	minLen, maxLen = 5, 10
	require.NoError(t, e.Validate())

	n := New(TypeNumberInput)
	lo, hi := 9.0, 3.0
	n.Validation = Validation{Min: &lo, Max: &hi}
	require.Error(t, n.Validate())
}
