package model

// uniqueList is the ordered collection pattern shared by the person,
// pastry and order lists. No two members may be related by the identity
// relation (same). Add and Set enforce uniqueness through same, so that
// a legitimate field edit does not register as a new entity; Remove
// requires strict equality, so a caller must hold the exact snapshot it
// is deleting. This double standard is deliberate.
type uniqueList[T comparable] struct {
	items []T
	same  func(a, b T) bool
	equal func(a, b T) bool
}

// contains reports whether any stored element is the same as item under
// the identity relation.
func (l *uniqueList[T]) contains(item T) bool {
	for _, existing := range l.items {
		if l.same(existing, item) {
			return true
		}
	}
	return false
}

// add appends item at the end. Returns ErrDuplicate if an element with
// the same identity is already present.
func (l *uniqueList[T]) add(item T) error {
	if l.contains(item) {
		return ErrDuplicate
	}
	l.items = append(l.items, item)
	return nil
}

// set replaces target with edited, preserving position. The target is
// located by reference or full equality. Returns ErrNotFound if target
// is absent, ErrDuplicate if edited collides with a different existing
// element.
func (l *uniqueList[T]) set(target, edited T) error {
	index := -1
	for i, existing := range l.items {
		if existing == target || l.equal(existing, target) {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}
	if !l.same(target, edited) && l.contains(edited) {
		return ErrDuplicate
	}
	l.items[index] = edited
	return nil
}

// remove deletes the element strictly equal to item. Returns
// ErrNotFound if no stored element is fully equal, even when one shares
// its identity.
func (l *uniqueList[T]) remove(item T) error {
	for i, existing := range l.items {
		if existing == item || l.equal(existing, item) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// setAll atomically replaces the backing sequence with items, preserving
// their order. Returns ErrDuplicate if items contains any pair related
// by identity; the list is left unchanged on failure.
func (l *uniqueList[T]) setAll(items []T) error {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return ErrDuplicate
			}
		}
	}
	replacement := make([]T, len(items))
	copy(replacement, items)
	l.items = replacement
	return nil
}

// all returns a copy of the backing sequence. Mutating the copy cannot
// bypass the invariant checks.
func (l *uniqueList[T]) all() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// UniquePersonList is an ordered list of persons with no two members
// sharing a name.
type UniquePersonList struct {
	list uniqueList[*Person]
}

// NewUniquePersonList returns an empty person list.
func NewUniquePersonList() *UniquePersonList {
	return &UniquePersonList{list: uniqueList[*Person]{
		same:  func(a, b *Person) bool { return a.IsSame(b) },
		equal: func(a, b *Person) bool { return a.Equals(b) },
	}}
}

// Contains reports whether a person with the same identity is stored.
// Returns ErrNilEntity if person is nil.
func (l *UniquePersonList) Contains(person *Person) (bool, error) {
	if person == nil {
		return false, ErrNilEntity
	}
	return l.list.contains(person), nil
}

// Add appends person. Returns ErrNilEntity or ErrDuplicate.
func (l *UniquePersonList) Add(person *Person) error {
	if person == nil {
		return ErrNilEntity
	}
	return l.list.add(person)
}

// Set replaces target with edited in place.
func (l *UniquePersonList) Set(target, edited *Person) error {
	if target == nil || edited == nil {
		return ErrNilEntity
	}
	return l.list.set(target, edited)
}

// Remove deletes the person fully equal to person.
func (l *UniquePersonList) Remove(person *Person) error {
	if person == nil {
		return ErrNilEntity
	}
	return l.list.remove(person)
}

// SetAll replaces the whole list with persons.
func (l *UniquePersonList) SetAll(persons []*Person) error {
	for _, p := range persons {
		if p == nil {
			return ErrNilEntity
		}
	}
	return l.list.setAll(persons)
}

// Persons returns a copy of the stored sequence.
func (l *UniquePersonList) Persons() []*Person { return l.list.all() }

// Equals reports elementwise full equality with other.
func (l *UniquePersonList) Equals(other *UniquePersonList) bool {
	if other == nil || len(l.list.items) != len(other.list.items) {
		return false
	}
	for i := range l.list.items {
		if !l.list.items[i].Equals(other.list.items[i]) {
			return false
		}
	}
	return true
}

// UniquePastryList is an ordered list of pastries with no two members
// sharing a name.
type UniquePastryList struct {
	list uniqueList[*Pastry]
}

// NewUniquePastryList returns an empty pastry list.
func NewUniquePastryList() *UniquePastryList {
	return &UniquePastryList{list: uniqueList[*Pastry]{
		same:  func(a, b *Pastry) bool { return a.IsSame(b) },
		equal: func(a, b *Pastry) bool { return a.Equals(b) },
	}}
}

// Contains reports whether a pastry with the same identity is stored.
// Returns ErrNilEntity if pastry is nil.
func (l *UniquePastryList) Contains(pastry *Pastry) (bool, error) {
	if pastry == nil {
		return false, ErrNilEntity
	}
	return l.list.contains(pastry), nil
}

// Add appends pastry. Returns ErrNilEntity or ErrDuplicate.
func (l *UniquePastryList) Add(pastry *Pastry) error {
	if pastry == nil {
		return ErrNilEntity
	}
	return l.list.add(pastry)
}

// Set replaces target with edited in place.
func (l *UniquePastryList) Set(target, edited *Pastry) error {
	if target == nil || edited == nil {
		return ErrNilEntity
	}
	return l.list.set(target, edited)
}

// Remove deletes the pastry fully equal to pastry.
func (l *UniquePastryList) Remove(pastry *Pastry) error {
	if pastry == nil {
		return ErrNilEntity
	}
	return l.list.remove(pastry)
}

// SetAll replaces the whole list with pastries.
func (l *UniquePastryList) SetAll(pastries []*Pastry) error {
	for _, p := range pastries {
		if p == nil {
			return ErrNilEntity
		}
	}
	return l.list.setAll(pastries)
}

// Pastries returns a copy of the stored sequence.
func (l *UniquePastryList) Pastries() []*Pastry { return l.list.all() }

// Equals reports elementwise full equality with other.
func (l *UniquePastryList) Equals(other *UniquePastryList) bool {
	if other == nil || len(l.list.items) != len(other.list.items) {
		return false
	}
	for i := range l.list.items {
		if !l.list.items[i].Equals(other.list.items[i]) {
			return false
		}
	}
	return true
}

// UniqueOrderList is an ordered list of orders with no two members
// sharing an id.
type UniqueOrderList struct {
	list uniqueList[*Order]
}

// NewUniqueOrderList returns an empty order list.
func NewUniqueOrderList() *UniqueOrderList {
	return &UniqueOrderList{list: uniqueList[*Order]{
		same:  func(a, b *Order) bool { return a.IsSame(b) },
		equal: func(a, b *Order) bool { return a.Equals(b) },
	}}
}

// Contains reports whether an order with the same id is stored.
// Returns ErrNilEntity if order is nil.
func (l *UniqueOrderList) Contains(order *Order) (bool, error) {
	if order == nil {
		return false, ErrNilEntity
	}
	return l.list.contains(order), nil
}

// Add appends order. Returns ErrNilEntity or ErrDuplicate.
func (l *UniqueOrderList) Add(order *Order) error {
	if order == nil {
		return ErrNilEntity
	}
	return l.list.add(order)
}

// Set replaces target with edited in place.
func (l *UniqueOrderList) Set(target, edited *Order) error {
	if target == nil || edited == nil {
		return ErrNilEntity
	}
	return l.list.set(target, edited)
}

// Remove deletes the order equal to order. Order equality is id-only,
// so holding any order value with the right id suffices here.
func (l *UniqueOrderList) Remove(order *Order) error {
	if order == nil {
		return ErrNilEntity
	}
	return l.list.remove(order)
}

// SetAll replaces the whole list with orders.
func (l *UniqueOrderList) SetAll(orders []*Order) error {
	for _, o := range orders {
		if o == nil {
			return ErrNilEntity
		}
	}
	return l.list.setAll(orders)
}

// Orders returns a copy of the stored sequence.
func (l *UniqueOrderList) Orders() []*Order { return l.list.all() }

// Equals reports elementwise equality with other. Order equality is
// id-only, so this compares id sequences.
func (l *UniqueOrderList) Equals(other *UniqueOrderList) bool {
	if other == nil || len(l.list.items) != len(other.list.items) {
		return false
	}
	for i := range l.list.items {
		if !l.list.items[i].Equals(other.list.items[i]) {
			return false
		}
	}
	return true
}
