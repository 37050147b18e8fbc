package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("form.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "form.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "form.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("elements[1].name", "must start with a letter", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "elements[1].name", validationErr.Field)
	require.Contains(t, validationErr.Message, "must start with a letter")
}

func TestNotFoundErrorIncludesKindAndID(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("form", "f-123")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "form", notFound.Kind)
	require.Equal(t, "f-123", notFound.ID)
	require.Contains(t, err.Error(), "f-123")
}

func TestStorageErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewStorageError("file", "save", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "file", storageErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "save")
}
