package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/formcanvas/formcanvas/internal/element"
	"github.com/formcanvas/formcanvas/internal/registry"
	"github.com/formcanvas/formcanvas/internal/wizard"
	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

// formRequest is the request body for create and update.
type formRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Elements    []element.Element `json:"elements"`
	Settings    *wizard.Settings  `json:"settings,omitempty"`
}

// fieldError is one entry of a 400 response's structured error list.
type fieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Errors []fieldError `json:"errors"`
}

func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.forms.List())
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	form, err := s.forms.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) createForm(w http.ResponseWriter, r *http.Request) {
	var req formRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidationErrors(w, []error{apperrors.NewValidationError("", "malformed request body", err)})
		return
	}

	settings := wizard.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	form := registry.NewForm(req.Title, req.Description, req.Elements, settings)
	if errs := form.Validate(); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}

	if err := s.forms.Add(form); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.forms.Save(); err != nil {
		s.log.Error(err, "failed to persist form registry")
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

func (s *Server) updateForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := s.forms.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req formRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeValidationErrors(w, []error{apperrors.NewValidationError("", "malformed request body", err)})
		return
	}

	updated := existing
	updated.Title = req.Title
	updated.Description = req.Description
	updated.Elements = req.Elements
	if req.Settings != nil {
		updated.Settings = *req.Settings
	}

	if errs := updated.Validate(); len(errs) > 0 {
		s.writeValidationErrors(w, errs)
		return
	}

	if err := s.forms.Update(updated); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.forms.Save(); err != nil {
		s.log.Error(err, "failed to persist form registry")
		s.writeError(w, err)
		return
	}

	form, err := s.forms.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) deleteForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.forms.Remove(id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.forms.Save(); err != nil {
		s.log.Error(err, "failed to persist form registry")
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeValidationErrors(w http.ResponseWriter, errs []error) {
	resp := errorResponse{Errors: make([]fieldError, 0, len(errs))}
	for _, err := range errs {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			resp.Errors = append(resp.Errors, fieldError{Field: validationErr.Field, Message: validationErr.Message})
			continue
		}
		resp.Errors = append(resp.Errors, fieldError{Message: err.Error()})
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Errors: []fieldError{{Message: err.Error()}}})
		return
	}

	s.log.Error(err, "request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Errors: []fieldError{{Message: "internal server error"}}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
