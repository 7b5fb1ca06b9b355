package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderID is the generated unique identifier of an order. Two orders
// with the same id are the same order regardless of every other field.
type OrderID string

// NewOrderID generates a fresh random order id.
func NewOrderID() OrderID {
	return OrderID(uuid.NewString())
}

// ParseOrderID validates a stored id string.
// Returns ErrInvalidOrderID if the string is not a UUID.
func ParseOrderID(s string) (OrderID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", ErrInvalidOrderID
	}
	return OrderID(s), nil
}

func (id OrderID) String() string { return string(id) }

// Order statuses. An order starts Pending; Cancelled is reachable from
// any non-terminal status. Status transitions are not enforced here:
// WithStatus accepts any status value, and only ParseOrderStatus checks
// membership in the closed set.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusReady      OrderStatus = "READY"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// orderStatusDisplay maps each status to its user-facing label.
var orderStatusDisplay = map[OrderStatus]string{
	StatusPending:    "Pending",
	StatusProcessing: "Processing",
	StatusReady:      "Ready for delivery",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

// ParseOrderStatus matches s against the closed status set,
// case-insensitively. Returns ErrInvalidStatus for anything else.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(s))
	if _, ok := orderStatusDisplay[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Display returns the user-facing label for the status.
func (s OrderStatus) Display() string {
	if label, ok := orderStatusDisplay[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) String() string { return string(s) }

// OrderItem is one line of an order: a pastry and a positive quantity.
// Immutable.
type OrderItem struct {
	pastry   *Pastry
	quantity int
}

// NewOrderItem builds an OrderItem.
// Returns ErrNilEntity if pastry is nil, ErrInvalidQuantity if quantity
// is less than 1. No upper bound is enforced.
func NewOrderItem(pastry *Pastry, quantity int) (*OrderItem, error) {
	if pastry == nil {
		return nil, ErrNilEntity
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &OrderItem{pastry: pastry, quantity: quantity}, nil
}

func (i *OrderItem) Pastry() *Pastry { return i.pastry }
func (i *OrderItem) Quantity() int   { return i.quantity }

// Subtotal returns price × quantity, exactly.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.pastry.Price().Amount().Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Equals reports whether other matches on pastry and quantity.
func (i *OrderItem) Equals(other *OrderItem) bool {
	if other == i {
		return true
	}
	return other != nil && i.pastry.Equals(other.pastry) && i.quantity == other.quantity
}

// Order is a customer purchase: an id, a snapshot of the customer at
// commit time, an ordered item list, a creation timestamp and a status.
// The customer field is a copy, not a live link; editing the client
// record afterwards does not change committed orders except through the
// AddressBook cascade. Immutable.
type Order struct {
	id        OrderID
	customer  *Person
	items     []*OrderItem
	orderDate time.Time
	status    OrderStatus
}

// NewOrder creates a fresh order with a generated id, the current time
// and Pending status. Returns ErrNilEntity if customer or items is nil.
// An empty (non-nil) item slice is accepted here; the add-order command
// is the boundary that requires at least one item.
func NewOrder(customer *Person, items []*OrderItem) (*Order, error) {
	if customer == nil || items == nil {
		return nil, ErrNilEntity
	}
	return &Order{
		id:        NewOrderID(),
		customer:  customer,
		items:     copyItems(items),
		orderDate: time.Now(),
		status:    StatusPending,
	}, nil
}

// RehydrateOrder rebuilds an order with every field explicit. Used when
// loading saved orders. Returns ErrNilEntity if customer or items is nil.
func RehydrateOrder(id OrderID, customer *Person, items []*OrderItem, orderDate time.Time, status OrderStatus) (*Order, error) {
	if customer == nil || items == nil {
		return nil, ErrNilEntity
	}
	return &Order{
		id:        id,
		customer:  customer,
		items:     copyItems(items),
		orderDate: orderDate,
		status:    status,
	}, nil
}

func (o *Order) ID() OrderID          { return o.id }
func (o *Order) Customer() *Person    { return o.customer }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) Status() OrderStatus  { return o.status }

// Items returns a copy of the item list.
func (o *Order) Items() []*OrderItem {
	return copyItems(o.items)
}

// WithStatus returns a new Order identical in every field except status.
func (o *Order) WithStatus(status OrderStatus) *Order {
	return &Order{
		id:        o.id,
		customer:  o.customer,
		items:     copyItems(o.items),
		orderDate: o.orderDate,
		status:    status,
	}
}

// WithCustomer returns a new Order identical in every field except the
// customer snapshot. Used by the AddressBook cascade when a client
// record is edited.
func (o *Order) WithCustomer(customer *Person) *Order {
	return &Order{
		id:        o.id,
		customer:  customer,
		items:     copyItems(o.items),
		orderDate: o.orderDate,
		status:    o.status,
	}
}

// TotalPrice sums the item subtotals. Recomputed on every call, never
// cached.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsSame reports whether other has the same id, regardless of other
// fields.
func (o *Order) IsSame(other *Order) bool {
	if other == o {
		return true
	}
	return other != nil && other.id == o.id
}

// Equals is likewise id-only: two orders with matching ids are equal
// even if their customer or items differ. The uniqueness checks depend
// on this.
func (o *Order) Equals(other *Order) bool {
	return o.IsSame(other)
}

func (o *Order) String() string {
	return fmt.Sprintf("%s; Customer: %s; Date: %s; Status: %s; Total: %s",
		o.id, o.customer.Name(), o.orderDate.Format(time.RFC3339), o.status.Display(), o.TotalPrice().StringFixed(2))
}

func copyItems(items []*OrderItem) []*OrderItem {
	out := make([]*OrderItem, len(items))
	copy(out, items)
	return out
}
