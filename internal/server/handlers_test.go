package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/logger"
	"github.com/formcanvas/formcanvas/internal/registry"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	forms, err := registry.NewRegistry(filepath.Join(t.TempDir(), "forms.json"))
	require.NoError(t, err)

	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)

	return New(Options{Addr: ":0"}, forms, log)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)
	return rec
}

func createSample(t *testing.T, srv *Server) registry.Form {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/forms", map[string]any{
		"title":    "Contact",
		"elements": []element.Element{element.New(element.TypeTextInput)},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var form registry.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	return form
}

func TestListFormsEmpty(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/forms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateAndGetForm(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	form := createSample(t, srv)
	assert.NotEmpty(t, form.ID)
	assert.Equal(t, "Contact", form.Title)
	assert.False(t, form.CreatedAt.IsZero())

	rec := doJSON(t, srv, http.MethodGet, "/api/forms/"+form.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got registry.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, form.ID, got.ID)
	require.Len(t, got.Elements, 1)
	assert.Equal(t, element.TypeTextInput, got.Elements[0].Type)
}

func TestCreateFormValidation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	// Missing title.
	rec := doJSON(t, srv, http.MethodPost, "/api/forms", map[string]any{
		"elements": []element.Element{element.New(element.TypeTextInput)},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "title", resp.Errors[0].Field)

	// Malformed body.
	req := httptest.NewRequest(http.MethodPost, "/api/forms", bytes.NewBufferString("{nope"))
	rec = httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFormRejectsDuplicateFieldNames(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	a := element.New(element.TypeTextInput)
	a.Name = "email"
	b := element.New(element.TypeEmailInput)
	b.Name = "email"

	rec := doJSON(t, srv, http.MethodPost, "/api/forms", map[string]any{
		"title":    "Contact",
		"elements": []element.Element{a, b},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestUpdateForm(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	form := createSample(t, srv)

	rec := doJSON(t, srv, http.MethodPut, "/api/forms/"+form.ID, map[string]any{
		"title":    "Contact Us",
		"elements": form.Elements,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated registry.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Contact Us", updated.Title)
	assert.Equal(t, form.ID, updated.ID)

	// Unknown id: 404.
	rec = doJSON(t, srv, http.MethodPut, "/api/forms/missing", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteForm(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	form := createSample(t, srv)

	rec := doJSON(t, srv, http.MethodDelete, "/api/forms/"+form.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/forms/"+form.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/forms/"+form.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	opts, err := OptionsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3000", opts.Addr)
	assert.NotZero(t, opts.ReadTimeout)
}
