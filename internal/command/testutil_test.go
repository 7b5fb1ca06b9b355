package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovenworks/bakebook/pkg/model"
)

// Fixture helpers. These panic on invalid literals so test bodies stay
// compact; value validation is covered by the model tests.

func mustPerson(name, phone, email, address string, tags ...string) *model.Person {
	n, err := model.NewName(name)
	if err != nil {
		panic(err)
	}
	p, err := model.NewPhone(phone)
	if err != nil {
		panic(err)
	}
	e, err := model.NewEmail(email)
	if err != nil {
		panic(err)
	}
	a, err := model.NewAddress(address)
	if err != nil {
		panic(err)
	}
	ts := make([]model.Tag, 0, len(tags))
	for _, s := range tags {
		tag, err := model.NewTag(s)
		if err != nil {
			panic(err)
		}
		ts = append(ts, tag)
	}
	return model.NewPerson(n, p, e, a, ts)
}

func mustPastry(name, price string) *model.Pastry {
	n, err := model.NewName(name)
	if err != nil {
		panic(err)
	}
	p, err := model.NewPrice(price)
	if err != nil {
		panic(err)
	}
	return model.NewPastry(n, p)
}

func mustName(s string) *model.Name {
	n, err := model.NewName(s)
	if err != nil {
		panic(err)
	}
	return &n
}

func mustPrice(s string) *model.Price {
	p, err := model.NewPrice(s)
	if err != nil {
		panic(err)
	}
	return &p
}

func mustPhone(s string) *model.Phone {
	p, err := model.NewPhone(s)
	if err != nil {
		panic(err)
	}
	return &p
}

func alice() *model.Person {
	return mustPerson("Alice Pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6", "friends")
}

func benson() *model.Person {
	return mustPerson("Benson Meier", "98765432", "johnd@example.com", "311 Clementi Ave 2", "owesMoney")
}

func croissant() *model.Pastry { return mustPastry("Croissant", "4.50") }
func bagel() *model.Pastry     { return mustPastry("Bagel", "2.50") }

// seededModel returns a model with two clients, two pastries and one
// order for alice.
func seededModel(t *testing.T) *model.Model {
	t.Helper()
	book := model.NewAddressBook()
	require.NoError(t, book.AddPerson(alice()))
	require.NoError(t, book.AddPerson(benson()))
	require.NoError(t, book.AddPastry(croissant()))
	require.NoError(t, book.AddPastry(bagel()))

	item, err := model.NewOrderItem(croissant(), 2)
	require.NoError(t, err)
	order, err := model.NewOrder(alice(), []*model.OrderItem{item})
	require.NoError(t, err)
	require.NoError(t, book.AddOrder(order))

	return model.NewModel(book)
}
