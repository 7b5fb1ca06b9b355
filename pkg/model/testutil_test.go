package model

// Test fixture helpers. These panic on invalid input so table entries
// stay compact; validity itself is covered by the field tests.

func testName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func testPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func testPerson(name, phone, email, address string, tags ...string) *Person {
	n, err := NewName(name)
	if err != nil {
		panic(err)
	}
	p, err := NewPhone(phone)
	if err != nil {
		panic(err)
	}
	e, err := NewEmail(email)
	if err != nil {
		panic(err)
	}
	a, err := NewAddress(address)
	if err != nil {
		panic(err)
	}
	ts := make([]Tag, 0, len(tags))
	for _, s := range tags {
		t, err := NewTag(s)
		if err != nil {
			panic(err)
		}
		ts = append(ts, t)
	}
	return NewPerson(n, p, e, a, ts)
}

func testPastry(name, price string) *Pastry {
	return NewPastry(testName(name), testPrice(price))
}

func testItem(pastry *Pastry, quantity int) *OrderItem {
	item, err := NewOrderItem(pastry, quantity)
	if err != nil {
		panic(err)
	}
	return item
}

func testOrder(customer *Person, items ...*OrderItem) *Order {
	order, err := NewOrder(customer, items)
	if err != nil {
		panic(err)
	}
	return order
}

// Shared typical fixtures.
func alice() *Person {
	return testPerson("Alice Pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6", "friends")
}

func benson() *Person {
	return testPerson("Benson Meier", "98765432", "johnd@example.com", "311 Clementi Ave 2", "owesMoney", "friends")
}

func croissant() *Pastry { return testPastry("Croissant", "4.50") }
func bagel() *Pastry     { return testPastry("Bagel", "2.50") }
