package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovenworks/bakebook/pkg/model"
)

// snapshot is the on-disk JSON document.
type snapshot struct {
	Persons  []PersonRecord `json:"persons"`
	Pastries []PastryRecord `json:"pastries"`
	Orders   []OrderRecord  `json:"orders"`
}

// JSONStore persists the book as one JSON snapshot file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store writing to path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads and validates the snapshot file. A missing file yields an
// empty book. Any malformed field or duplicate identity fails the load.
func (s *JSONStore) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, ErrInvalidSnapshot)
	}
	return rehydrate(snap)
}

// Save writes the book atomically using the temp-file, fsync, rename
// pattern.
func (s *JSONStore) Save(book *model.AddressBook) error {
	snap := takeSnapshot(book)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return writeFileAtomic(s.path, append(data, '\n'))
}

// Close is a no-op; the JSON store holds no resources between calls.
func (s *JSONStore) Close() error { return nil }

// takeSnapshot converts the book into its serialized form.
func takeSnapshot(book *model.AddressBook) snapshot {
	var snap snapshot
	for _, p := range book.Persons() {
		snap.Persons = append(snap.Persons, NewPersonRecord(p))
	}
	for _, p := range book.Pastries() {
		snap.Pastries = append(snap.Pastries, NewPastryRecord(p))
	}
	for _, o := range book.Orders() {
		snap.Orders = append(snap.Orders, NewOrderRecord(o))
	}
	return snap
}

// rehydrate validates every record and resets a fresh book from the
// result. Duplicate identities surface as model.ErrDuplicate.
func rehydrate(snap snapshot) (*model.AddressBook, error) {
	persons := make([]*model.Person, 0, len(snap.Persons))
	for _, record := range snap.Persons {
		person, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	pastries := make([]*model.Pastry, 0, len(snap.Pastries))
	for _, record := range snap.Pastries {
		pastry, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		pastries = append(pastries, pastry)
	}
	orders := make([]*model.Order, 0, len(snap.Orders))
	for _, record := range snap.Orders {
		order, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	book := model.NewAddressBook()
	if err := book.ResetData(persons, pastries, orders); err != nil {
		return nil, err
	}
	return book, nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory, fsyncing before the rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".bakebook-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
