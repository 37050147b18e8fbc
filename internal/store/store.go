// Package store provides the durable key-value tiers the wizard session
// persists itself to. Each backend holds one opaque payload under one
// fixed logical key; the session layer owns the encoding.
package store

import (
	"errors"

	"github.com/formcanvas/formcanvas/internal/logger"
)

// Store is one durable backend. Load reports ok=false when no payload
// has been saved yet; that is not an error.
type Store interface {
	Save(data []byte) error
	Load() (data []byte, ok bool, err error)
	Clear() error
	Name() string
}

// Tiered tries an ordered list of backends in sequence. A failing tier
// never prevents trying the next: saves land on the first tier that
// accepts them, loads return the first tier that has a payload, and
// clears are attempted everywhere.
type Tiered struct {
	backends []Store
	log      *logger.Logger
}

// NewTiered builds a tiered store over the given backends, primary
// first.
func NewTiered(log *logger.Logger, backends ...Store) *Tiered {
	return &Tiered{backends: backends, log: log}
}

// Name identifies the tiered store in logs.
func (t *Tiered) Name() string {
	return "tiered"
}

// Save writes to the first backend that accepts the payload. It fails
// only when every tier fails.
func (t *Tiered) Save(data []byte) error {
	var errs []error
	for _, backend := range t.backends {
		err := backend.Save(data)
		if err == nil {
			return nil
		}
		t.log.WithFields(map[string]any{"backend": backend.Name()}).Error(err, "store save failed, trying next tier")
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load returns the payload from the first backend that has one. Backend
// errors are logged and skipped; an empty result across all tiers is
// ok=false with a nil error.
func (t *Tiered) Load() ([]byte, bool, error) {
	for _, backend := range t.backends {
		data, ok, err := backend.Load()
		if err != nil {
			t.log.WithFields(map[string]any{"backend": backend.Name()}).Error(err, "store load failed, trying next tier")
			continue
		}
		if ok {
			return data, true, nil
		}
	}
	return nil, false, nil
}

// Clear removes the payload from every tier, attempting all of them
// even when one fails.
func (t *Tiered) Clear() error {
	var errs []error
	for _, backend := range t.backends {
		if err := backend.Clear(); err != nil {
			t.log.WithFields(map[string]any{"backend": backend.Name()}).Error(err, "store clear failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
