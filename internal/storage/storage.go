// Package storage persists AddressBook snapshots. The JSON store in
// this package is the default backend; internal/sqlite provides the
// same interface on SQLite. Both rehydrate through the model's
// validating constructors, so a malformed snapshot fails with a typed
// error and a duplicate identity fails the whole load.
package storage

import (
	"errors"

	"github.com/ovenworks/bakebook/pkg/model"
)

// Store loads and saves full AddressBook snapshots.
type Store interface {
	// Load reads the snapshot and rehydrates a book. A missing data
	// file yields an empty book, not an error.
	Load() (*model.AddressBook, error)

	// Save writes the whole book atomically.
	Save(book *model.AddressBook) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// ErrInvalidSnapshot wraps every load-time validation failure.
var ErrInvalidSnapshot = errors.New("invalid snapshot data")
