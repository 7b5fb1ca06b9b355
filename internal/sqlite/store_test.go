package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakebook/pkg/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "bakebook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seededBook(t *testing.T) *model.AddressBook {
	t.Helper()
	book := model.NewAddressBook()

	name, err := model.NewName("Alice Pauline")
	require.NoError(t, err)
	phone, err := model.NewPhone("94351253")
	require.NoError(t, err)
	email, err := model.NewEmail("alice@example.com")
	require.NoError(t, err)
	address, err := model.NewAddress("123 Jurong West Ave 6")
	require.NoError(t, err)
	tag, err := model.NewTag("friends")
	require.NoError(t, err)
	alice := model.NewPerson(name, phone, email, address, []model.Tag{tag})
	require.NoError(t, book.AddPerson(alice))

	pastryName, err := model.NewName("Croissant")
	require.NoError(t, err)
	price, err := model.NewPrice("4.50")
	require.NoError(t, err)
	croissant := model.NewPastry(pastryName, price)
	require.NoError(t, book.AddPastry(croissant))

	item, err := model.NewOrderItem(croissant, 3)
	require.NoError(t, err)
	order, err := model.NewOrder(alice, []*model.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, book.AddOrder(order))

	return book
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	book := seededBook(t)
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, book.Equals(loaded))

	persons := loaded.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, "Alice Pauline", persons[0].Name().String())
	require.Len(t, persons[0].Tags(), 1)

	orders := loaded.Orders()
	require.Len(t, orders, 1)
	original := book.Orders()[0]
	assert.Equal(t, original.ID(), orders[0].ID())
	assert.Equal(t, model.StatusPending, orders[0].Status())
	assert.True(t, orders[0].Customer().Equals(persons[0]))
	assert.Equal(t, "13.50", orders[0].TotalPrice().StringFixed(2))
}

func TestStoreEmptyDatabase(t *testing.T) {
	store := openTestStore(t)
	book, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, book.Persons())
	assert.Empty(t, book.Pastries())
	assert.Empty(t, book.Orders())
}

func TestStoreSaveReplacesSnapshot(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(seededBook(t)))
	require.NoError(t, store.Save(model.NewAddressBook()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Persons())
	assert.Empty(t, loaded.Pastries())
	assert.Empty(t, loaded.Orders())
}

func TestStorePreservesCollectionOrder(t *testing.T) {
	store := openTestStore(t)
	book := model.NewAddressBook()
	for _, n := range []string{"Eclair", "Bagel", "Croissant"} {
		name, err := model.NewName(n)
		require.NoError(t, err)
		price, err := model.NewPrice("1.00")
		require.NoError(t, err)
		require.NoError(t, book.AddPastry(model.NewPastry(name, price)))
	}
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	pastries := loaded.Pastries()
	require.Len(t, pastries, 3)
	assert.Equal(t, "Eclair", pastries[0].Name().String())
	assert.Equal(t, "Bagel", pastries[1].Name().String())
	assert.Equal(t, "Croissant", pastries[2].Name().String())
}

func TestStoreCloseIdempotent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "bakebook.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
