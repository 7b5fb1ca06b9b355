// Package sqlite implements the SQLite snapshot store for bakebook.
// It persists the same record shapes as the JSON store into three
// tables and rehydrates through the model's validating constructors.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ovenworks/bakebook/internal/storage"
	"github.com/ovenworks/bakebook/pkg/model"
)

// Store is a storage.Store backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens (or creates) the database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range allTables {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load reads all three tables in position order and rehydrates a book.
// An empty database yields an empty book.
func (s *Store) Load() (*model.AddressBook, error) {
	persons, err := s.loadPersons()
	if err != nil {
		return nil, err
	}
	pastries, err := s.loadPastries()
	if err != nil {
		return nil, err
	}
	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}

	book := model.NewAddressBook()
	if err := book.ResetData(persons, pastries, orders); err != nil {
		return nil, err
	}
	return book, nil
}

// Save replaces the stored snapshot with book inside one transaction.
func (s *Store) Save(book *model.AddressBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"persons", "pastries", "orders"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, p := range book.Persons() {
		record := storage.NewPersonRecord(p)
		tags, err := json.Marshal(record.Tags)
		if err != nil {
			return fmt.Errorf("marshaling tags: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO persons (position, name, phone, email, address, tags) VALUES (?, ?, ?, ?, ?, ?)",
			i, record.Name, record.Phone, record.Email, record.Address, string(tags))
		if err != nil {
			return fmt.Errorf("inserting person: %w", err)
		}
	}

	for i, p := range book.Pastries() {
		record := storage.NewPastryRecord(p)
		_, err := tx.Exec(
			"INSERT INTO pastries (position, name, price) VALUES (?, ?, ?)",
			i, record.Name, record.Price)
		if err != nil {
			return fmt.Errorf("inserting pastry: %w", err)
		}
	}

	for i, o := range book.Orders() {
		record := storage.NewOrderRecord(o)
		customer, err := json.Marshal(record.Customer)
		if err != nil {
			return fmt.Errorf("marshaling customer: %w", err)
		}
		items, err := json.Marshal(record.Items)
		if err != nil {
			return fmt.Errorf("marshaling items: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO orders (position, order_id, customer, items, order_date, status) VALUES (?, ?, ?, ?, ?, ?)",
			i, record.OrderID, string(customer), string(items), record.OrderDate, record.Status)
		if err != nil {
			return fmt.Errorf("inserting order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (s *Store) loadPersons() ([]*model.Person, error) {
	rows, err := s.db.Query("SELECT name, phone, email, address, tags FROM persons ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var persons []*model.Person
	for rows.Next() {
		var record storage.PersonRecord
		var tags string
		if err := rows.Scan(&record.Name, &record.Phone, &record.Email, &record.Address, &tags); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &record.Tags); err != nil {
			return nil, fmt.Errorf("person tags: %w", storage.ErrInvalidSnapshot)
		}
		person, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	return persons, rows.Err()
}

func (s *Store) loadPastries() ([]*model.Pastry, error) {
	rows, err := s.db.Query("SELECT name, price FROM pastries ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying pastries: %w", err)
	}
	defer rows.Close()

	var pastries []*model.Pastry
	for rows.Next() {
		var record storage.PastryRecord
		if err := rows.Scan(&record.Name, &record.Price); err != nil {
			return nil, fmt.Errorf("scanning pastry: %w", err)
		}
		pastry, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		pastries = append(pastries, pastry)
	}
	return pastries, rows.Err()
}

func (s *Store) loadOrders() ([]*model.Order, error) {
	rows, err := s.db.Query("SELECT order_id, customer, items, order_date, status FROM orders ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		var record storage.OrderRecord
		var customer, items string
		if err := rows.Scan(&record.OrderID, &customer, &items, &record.OrderDate, &record.Status); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		if err := json.Unmarshal([]byte(customer), &record.Customer); err != nil {
			return nil, fmt.Errorf("order customer: %w", storage.ErrInvalidSnapshot)
		}
		if err := json.Unmarshal([]byte(items), &record.Items); err != nil {
			return nil, fmt.Errorf("order items: %w", storage.ErrInvalidSnapshot)
		}
		order, err := record.ToModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
