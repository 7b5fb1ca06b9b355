package model

import "fmt"

// AddressBook is the aggregate root: the single owner of the person,
// pastry and order collections. All cross-entity consistency rules live
// here. No entity is shared across collections; an order's customer is a
// snapshot, which is why SetPerson must cascade.
type AddressBook struct {
	persons  *UniquePersonList
	pastries *UniquePastryList
	orders   *UniqueOrderList
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		persons:  NewUniquePersonList(),
		pastries: NewUniquePastryList(),
		orders:   NewUniqueOrderList(),
	}
}

// HasPerson reports whether a person with the same identity exists.
func (b *AddressBook) HasPerson(person *Person) (bool, error) {
	return b.persons.Contains(person)
}

// AddPerson adds a person. The person must not already exist.
func (b *AddressBook) AddPerson(person *Person) error {
	return b.persons.Add(person)
}

// SetPerson replaces target with edited, then rewrites the customer
// snapshot of every order whose customer equals the original person:
// each such order keeps its id, items, date and status and points at
// the edited person. The cascade visits every matching order.
func (b *AddressBook) SetPerson(target, edited *Person) error {
	if err := b.persons.Set(target, edited); err != nil {
		return err
	}
	for _, order := range b.orders.Orders() {
		if !order.Customer().Equals(target) {
			continue
		}
		if err := b.orders.Set(order, order.WithCustomer(edited)); err != nil {
			return fmt.Errorf("rewriting order %s customer: %w", order.ID(), err)
		}
	}
	return nil
}

// RemovePerson deletes the person fully equal to person. Orders keep
// their committed customer snapshots, so deleting a client with open
// orders is allowed and leaves those orders intact.
func (b *AddressBook) RemovePerson(person *Person) error {
	return b.persons.Remove(person)
}

// HasPastry reports whether a pastry with the same identity exists.
func (b *AddressBook) HasPastry(pastry *Pastry) (bool, error) {
	return b.pastries.Contains(pastry)
}

// AddPastry adds a pastry. The pastry must not already exist.
func (b *AddressBook) AddPastry(pastry *Pastry) error {
	return b.pastries.Add(pastry)
}

// SetPastry replaces target with edited.
func (b *AddressBook) SetPastry(target, edited *Pastry) error {
	return b.pastries.Set(target, edited)
}

// RemovePastry deletes the pastry fully equal to pastry.
func (b *AddressBook) RemovePastry(pastry *Pastry) error {
	return b.pastries.Remove(pastry)
}

// HasOrder reports whether an order with the same id exists.
func (b *AddressBook) HasOrder(order *Order) (bool, error) {
	return b.orders.Contains(order)
}

// AddOrder adds an order. The order must not already exist.
func (b *AddressBook) AddOrder(order *Order) error {
	return b.orders.Add(order)
}

// SetOrder replaces target with edited.
func (b *AddressBook) SetOrder(target, edited *Order) error {
	return b.orders.Set(target, edited)
}

// RemoveOrder deletes the order with the same id as order.
func (b *AddressBook) RemoveOrder(order *Order) error {
	return b.orders.Remove(order)
}

// Persons returns a copy of the person sequence.
func (b *AddressBook) Persons() []*Person { return b.persons.Persons() }

// Pastries returns a copy of the pastry sequence.
func (b *AddressBook) Pastries() []*Pastry { return b.pastries.Pastries() }

// Orders returns a copy of the order sequence.
func (b *AddressBook) Orders() []*Order { return b.orders.Orders() }

// ResetData atomically replaces all three collections from a snapshot.
// Each collection is validated for duplicates independently, but any
// duplicate anywhere fails the whole reset and leaves the book
// unchanged.
func (b *AddressBook) ResetData(persons []*Person, pastries []*Pastry, orders []*Order) error {
	newPersons := NewUniquePersonList()
	if err := newPersons.SetAll(persons); err != nil {
		return fmt.Errorf("persons list: %w", err)
	}
	newPastries := NewUniquePastryList()
	if err := newPastries.SetAll(pastries); err != nil {
		return fmt.Errorf("pastries list: %w", err)
	}
	newOrders := NewUniqueOrderList()
	if err := newOrders.SetAll(orders); err != nil {
		return fmt.Errorf("orders list: %w", err)
	}
	b.persons = newPersons
	b.pastries = newPastries
	b.orders = newOrders
	return nil
}

// Equals reports whether other holds pairwise equal sequences in all
// three collections.
func (b *AddressBook) Equals(other *AddressBook) bool {
	if other == nil {
		return false
	}
	return b.persons.Equals(other.persons) &&
		b.pastries.Equals(other.pastries) &&
		b.orders.Equals(other.orders)
}
