package model

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Price is a non-negative amount with at most two fraction digits,
// normalized to exactly two on construction. Stored as a decimal so
// order totals are exact.
type Price struct {
	amount decimal.Decimal
}

// NewPrice validates and returns a Price. The input must contain only
// digits with an optional fraction of up to 2 digits, e.g. "3", "12.5"
// or "0.99".
func NewPrice(s string) (Price, error) {
	if !pricePattern.MatchString(s) {
		return Price{}, ErrInvalidPrice
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, ErrInvalidPrice
	}
	return Price{amount: amount.Round(2)}, nil
}

// Amount returns the decimal value of the price.
func (p Price) Amount() decimal.Decimal { return p.amount }

// Equals reports whether other is numerically equal.
func (p Price) Equals(other Price) bool { return p.amount.Equal(other.amount) }

// String renders the price with two fraction digits, e.g. "4.50".
func (p Price) String() string { return p.amount.StringFixed(2) }

// Pastry is a product the bakery sells. Immutable.
type Pastry struct {
	name  Name
	price Price
}

// NewPastry builds a Pastry from validated field values.
func NewPastry(name Name, price Price) *Pastry {
	return &Pastry{name: name, price: price}
}

func (p *Pastry) Name() Name   { return p.name }
func (p *Pastry) Price() Price { return p.price }

// IsSame reports whether other is the same pastry: names must match
// exactly. Two pastries with the same name and different prices are the
// same pastry but not equal.
func (p *Pastry) IsSame(other *Pastry) bool {
	if other == p {
		return true
	}
	return other != nil && other.name == p.name
}

// Equals reports whether other matches on name and price.
func (p *Pastry) Equals(other *Pastry) bool {
	if other == p {
		return true
	}
	return other != nil && other.name == p.name && p.price.Equals(other.price)
}

func (p *Pastry) String() string {
	return fmt.Sprintf("%s; Price: %s", p.name, p.price)
}
