package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakebook/pkg/model"
)

func mustPerson(t *testing.T, name, phone, email, address string, tags ...string) *model.Person {
	t.Helper()
	n, err := model.NewName(name)
	require.NoError(t, err)
	p, err := model.NewPhone(phone)
	require.NoError(t, err)
	e, err := model.NewEmail(email)
	require.NoError(t, err)
	a, err := model.NewAddress(address)
	require.NoError(t, err)
	ts := make([]model.Tag, 0, len(tags))
	for _, s := range tags {
		tag, err := model.NewTag(s)
		require.NoError(t, err)
		ts = append(ts, tag)
	}
	return model.NewPerson(n, p, e, a, ts)
}

func mustPastry(t *testing.T, name, price string) *model.Pastry {
	t.Helper()
	n, err := model.NewName(name)
	require.NoError(t, err)
	p, err := model.NewPrice(price)
	require.NoError(t, err)
	return model.NewPastry(n, p)
}

func seededBook(t *testing.T) *model.AddressBook {
	t.Helper()
	book := model.NewAddressBook()
	alice := mustPerson(t, "Alice Pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6", "friends")
	require.NoError(t, book.AddPerson(alice))
	require.NoError(t, book.AddPerson(mustPerson(t, "Benson Meier", "98765432", "johnd@example.com", "311 Clementi Ave 2")))

	croissant := mustPastry(t, "Croissant", "4.50")
	require.NoError(t, book.AddPastry(croissant))
	require.NoError(t, book.AddPastry(mustPastry(t, "Bagel", "2.50")))

	item, err := model.NewOrderItem(croissant, 2)
	require.NoError(t, err)
	order, err := model.NewOrder(alice, []*model.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, book.AddOrder(order))
	return book
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakebook.json")
	store := NewJSONStore(path)

	book := seededBook(t)
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, book.Equals(loaded))

	// Order contents survive beyond the id-only list equality.
	orders := loaded.Orders()
	require.Len(t, orders, 1)
	original := book.Orders()[0]
	assert.Equal(t, original.ID(), orders[0].ID())
	assert.True(t, orders[0].Customer().Equals(original.Customer()))
	assert.Equal(t, original.Status(), orders[0].Status())
	assert.Equal(t, "9.00", orders[0].TotalPrice().StringFixed(2))
	require.Len(t, orders[0].Items(), 1)
	assert.Equal(t, 2, orders[0].Items()[0].Quantity())
}

func TestJSONStoreMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"))
	book, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, book.Persons())
	assert.Empty(t, book.Pastries())
	assert.Empty(t, book.Orders())
}

func TestJSONStoreLoadErrors(t *testing.T) {
	write := func(t *testing.T, content string) *JSONStore {
		t.Helper()
		path := filepath.Join(t.TempDir(), "bakebook.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return NewJSONStore(path)
	}

	t.Run("malformed json", func(t *testing.T) {
		store := write(t, "{not json")
		_, err := store.Load()
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})

	t.Run("invalid person phone", func(t *testing.T) {
		store := write(t, `{"persons":[{"name":"Alice Pauline","phone":"12","email":"alice@example.com","address":"somewhere"}]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, model.ErrInvalidPhone)
	})

	t.Run("invalid pastry price", func(t *testing.T) {
		store := write(t, `{"pastries":[{"name":"Croissant","price":"4.505"}]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, model.ErrInvalidPrice)
	})

	t.Run("duplicate person identity fails the whole load", func(t *testing.T) {
		store := write(t, `{"persons":[
			{"name":"Alice Pauline","phone":"94351253","email":"alice@example.com","address":"a"},
			{"name":"Alice Pauline","phone":"11111111","email":"other@example.com","address":"b"}
		]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, model.ErrDuplicate)
	})

	t.Run("order missing items", func(t *testing.T) {
		store := write(t, `{"orders":[{
			"orderId":"7b1c2f64-9df2-4e0e-b0ab-2f2f6c6b9a01",
			"customer":{"name":"Alice Pauline","phone":"94351253","email":"alice@example.com","address":"a"},
			"orderDate":"2026-08-29T12:00:00Z",
			"status":"PENDING"
		}]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("order bad status", func(t *testing.T) {
		store := write(t, `{"orders":[{
			"orderId":"7b1c2f64-9df2-4e0e-b0ab-2f2f6c6b9a01",
			"customer":{"name":"Alice Pauline","phone":"94351253","email":"alice@example.com","address":"a"},
			"items":[{"pastry":{"name":"Croissant","price":"4.50"},"quantity":1}],
			"orderDate":"2026-08-29T12:00:00Z",
			"status":"SHIPPED"
		}]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
	})

	t.Run("order bad id", func(t *testing.T) {
		store := write(t, `{"orders":[{
			"orderId":"not-a-uuid",
			"customer":{"name":"Alice Pauline","phone":"94351253","email":"alice@example.com","address":"a"},
			"items":[{"pastry":{"name":"Croissant","price":"4.50"},"quantity":1}],
			"orderDate":"2026-08-29T12:00:00Z",
			"status":"PENDING"
		}]}`)
		_, err := store.Load()
		assert.ErrorIs(t, err, model.ErrInvalidOrderID)
	})
}

func TestJSONStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakebook.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Save(seededBook(t)))

	empty := model.NewAddressBook()
	require.NoError(t, store.Save(empty))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Persons())
	assert.Empty(t, loaded.Orders())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bakebook.json", entries[0].Name())
}
