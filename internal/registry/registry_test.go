package registry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/wizard"
	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "forms.json"))
	require.NoError(t, err)
	return reg
}

func sampleForm(title string) Form {
	return NewForm(title, "a sample form",
		[]element.Element{element.New(element.TypeTextInput)},
		wizard.DefaultSettings())
}

func TestRegistryNewStartsEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Empty(t, reg.List())
}

func TestRegistryAddAndGet(t *testing.T) {
	reg := newTestRegistry(t)

	form := sampleForm("Contact")
	require.NoError(t, reg.Add(form))

	got, err := reg.Get(form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contact", got.Title)

	assert.Error(t, reg.Add(form), "duplicate id is rejected")
}

func TestRegistryGetMissingReturnsNotFound(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Get("missing")
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "form", notFound.Kind)
}

func TestRegistryUpdateBumpsUpdatedAt(t *testing.T) {
	reg := newTestRegistry(t)

	form := sampleForm("Contact")
	form.CreatedAt = form.CreatedAt.Add(-time.Hour)
	form.UpdatedAt = form.CreatedAt
	require.NoError(t, reg.Add(form))

	form.Title = "Contact Us"
	require.NoError(t, reg.Update(form))

	got, err := reg.Get(form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contact Us", got.Title)
	assert.Equal(t, form.CreatedAt, got.CreatedAt, "CreatedAt carries over")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	missing := sampleForm("Other")
	assert.Error(t, reg.Update(missing))
}

func TestRegistryRemove(t *testing.T) {
	reg := newTestRegistry(t)

	form := sampleForm("Contact")
	require.NoError(t, reg.Add(form))
	require.NoError(t, reg.Remove(form.ID))
	assert.Empty(t, reg.List())

	assert.Error(t, reg.Remove(form.ID))
}

func TestRegistrySaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forms.json")

	reg, err := NewRegistry(path)
	require.NoError(t, err)
	form := sampleForm("Contact")
	require.NoError(t, reg.Add(form))
	require.NoError(t, reg.Save())

	reloaded, err := NewRegistry(path)
	require.NoError(t, err)
	forms := reloaded.List()
	require.Len(t, forms, 1)
	assert.Equal(t, form.ID, forms[0].ID)
	require.Len(t, forms[0].Elements, 1)
	assert.Equal(t, element.TypeTextInput, forms[0].Elements[0].Type)
}

func TestRegistryListReturnsCopy(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.Add(sampleForm("Contact")))

	list := reg.List()
	list[0].Title = "mutated"

	got := reg.List()
	assert.Equal(t, "Contact", got[0].Title)
}

func TestFormValidate(t *testing.T) {
	form := sampleForm("Contact")
	assert.Empty(t, form.Validate())

	form.Title = ""
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "title")
}

func TestFormValidateRejectsDuplicateNames(t *testing.T) {
	a := element.New(element.TypeTextInput)
	a.Name = "email"
	b := element.New(element.TypeEmailInput)
	b.Name = "email"

	form := NewForm("Contact", "", []element.Element{a, b}, wizard.DefaultSettings())
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "email")
}

func TestFormValidateRejectsBadElements(t *testing.T) {
	bad := element.New(element.TypeTextInput)
	bad.Name = "Not Valid"

	unknown := element.Element{ID: "x", Type: element.Type("mystery")}

	form := NewForm("Contact", "", []element.Element{bad, unknown}, wizard.DefaultSettings())
	errs := form.Validate()
	assert.Len(t, errs, 2)
}
