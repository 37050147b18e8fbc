package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

// Registry manages saved-form persistence.
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	forms   []Form
}

// NewRegistry creates a Registry instance and loads it from disk.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}

	// Load existing registry or start with an empty one
	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.forms = []Form{}
	}

	return r, nil
}

// Load reads the registry from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse form registry: %w", err)
	}

	r.version = file.Version
	r.forms = file.Forms

	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := File{
		Version: r.version,
		Forms:   r.forms,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal form registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all saved forms.
func (r *Registry) List() []Form {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]Form, len(r.forms))
	copy(result, r.forms)
	return result
}

// Get retrieves a form by ID.
func (r *Registry) Get(id string) (Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.forms {
		if f.ID == id {
			return f, nil
		}
	}

	return Form{}, apperrors.NewNotFoundError("form", id)
}

// Add adds a new form to the registry.
func (r *Registry) Add(f Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.forms {
		if existing.ID == f.ID {
			return fmt.Errorf("form with ID %s already exists", f.ID)
		}
	}

	r.forms = append(r.forms, f)
	return nil
}

// Update replaces an existing form and bumps its UpdatedAt. CreatedAt
// is carried over from the stored record.
func (r *Registry) Update(f Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.forms {
		if existing.ID == f.ID {
			f.CreatedAt = existing.CreatedAt
			f.UpdatedAt = time.Now().UTC()
			r.forms[i] = f
			return nil
		}
	}

	return apperrors.NewNotFoundError("form", f.ID)
}

// Remove removes a form from the registry.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.forms {
		if f.ID == id {
			r.forms = append(r.forms[:i], r.forms[i+1:]...)
			return nil
		}
	}

	return apperrors.NewNotFoundError("form", id)
}
