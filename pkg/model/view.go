package model

import "strings"

// PersonPredicate filters the displayed person list. nil means show all.
type PersonPredicate func(*Person) bool

// PastryPredicate filters the displayed pastry list.
type PastryPredicate func(*Pastry) bool

// OrderPredicate filters the displayed order list.
type OrderPredicate func(*Order) bool

// Model wraps an AddressBook together with the three filter predicates
// that define the currently displayed views. Command indices always
// resolve against the filtered slices, never the underlying storage
// order.
type Model struct {
	book         *AddressBook
	personFilter PersonPredicate
	pastryFilter PastryPredicate
	orderFilter  OrderPredicate
}

// NewModel returns a Model over book with all filters showing
// everything.
func NewModel(book *AddressBook) *Model {
	return &Model{book: book}
}

// Book returns the underlying address book.
func (m *Model) Book() *AddressBook { return m.book }

// FilteredPersons returns the currently displayed person list.
func (m *Model) FilteredPersons() []*Person {
	persons := m.book.Persons()
	if m.personFilter == nil {
		return persons
	}
	out := persons[:0:0]
	for _, p := range persons {
		if m.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilteredPastries returns the currently displayed pastry list.
func (m *Model) FilteredPastries() []*Pastry {
	pastries := m.book.Pastries()
	if m.pastryFilter == nil {
		return pastries
	}
	out := pastries[:0:0]
	for _, p := range pastries {
		if m.pastryFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilteredOrders returns the currently displayed order list.
func (m *Model) FilteredOrders() []*Order {
	orders := m.book.Orders()
	if m.orderFilter == nil {
		return orders
	}
	out := orders[:0:0]
	for _, o := range orders {
		if m.orderFilter(o) {
			out = append(out, o)
		}
	}
	return out
}

// UpdateFilteredPersons installs pred as the person filter. nil shows
// all persons.
func (m *Model) UpdateFilteredPersons(pred PersonPredicate) { m.personFilter = pred }

// UpdateFilteredPastries installs pred as the pastry filter.
func (m *Model) UpdateFilteredPastries(pred PastryPredicate) { m.pastryFilter = pred }

// UpdateFilteredOrders installs pred as the order filter.
func (m *Model) UpdateFilteredOrders(pred OrderPredicate) { m.orderFilter = pred }

// PersonNameContains matches persons whose name contains any of the
// keywords as a whole word, case-insensitively.
func PersonNameContains(keywords []string) PersonPredicate {
	return func(p *Person) bool {
		return nameMatchesKeywords(p.Name().String(), keywords)
	}
}

// PastryNameContains matches pastries whose name contains any of the
// keywords as a whole word, case-insensitively.
func PastryNameContains(keywords []string) PastryPredicate {
	return func(p *Pastry) bool {
		return nameMatchesKeywords(p.Name().String(), keywords)
	}
}

// OrderCustomerNameContains matches orders whose customer name contains
// any of the keywords as a whole word, case-insensitively.
func OrderCustomerNameContains(keywords []string) OrderPredicate {
	return func(o *Order) bool {
		return nameMatchesKeywords(o.Customer().Name().String(), keywords)
	}
}

func nameMatchesKeywords(name string, keywords []string) bool {
	words := strings.Fields(name)
	for _, keyword := range keywords {
		for _, word := range words {
			if strings.EqualFold(word, keyword) {
				return true
			}
		}
	}
	return false
}
