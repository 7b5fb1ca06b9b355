package storage

import (
	"fmt"
	"time"

	"github.com/ovenworks/bakebook/pkg/model"
)

// Serialized record shapes, shared by the JSON and SQLite stores.
// Every field round-trips through the model's validating constructors
// on load.

// PersonRecord is the serialized form of a Person.
type PersonRecord struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}

// PastryRecord is the serialized form of a Pastry.
type PastryRecord struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OrderItemRecord is the serialized form of an OrderItem.
type OrderItemRecord struct {
	Pastry   PastryRecord `json:"pastry"`
	Quantity int          `json:"quantity"`
}

// OrderRecord is the serialized form of an Order. The customer is the
// committed snapshot, not a reference into the persons list.
type OrderRecord struct {
	OrderID   string            `json:"orderId"`
	Customer  *PersonRecord     `json:"customer"`
	Items     []OrderItemRecord `json:"items"`
	OrderDate string            `json:"orderDate"`
	Status    string            `json:"status"`
}

// NewPersonRecord converts a Person for serialization.
func NewPersonRecord(p *model.Person) PersonRecord {
	tags := p.Tags()
	tagStrings := make([]string, len(tags))
	for i, t := range tags {
		tagStrings[i] = t.String()
	}
	return PersonRecord{
		Name:    p.Name().String(),
		Phone:   p.Phone().String(),
		Email:   p.Email().String(),
		Address: p.Address().String(),
		Tags:    tagStrings,
	}
}

// ToModel validates the record and rebuilds the Person.
func (r PersonRecord) ToModel() (*model.Person, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return nil, fmt.Errorf("person name %q: %w", r.Name, err)
	}
	phone, err := model.NewPhone(r.Phone)
	if err != nil {
		return nil, fmt.Errorf("person phone %q: %w", r.Phone, err)
	}
	email, err := model.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("person email %q: %w", r.Email, err)
	}
	address, err := model.NewAddress(r.Address)
	if err != nil {
		return nil, fmt.Errorf("person address %q: %w", r.Address, err)
	}
	tags := make([]model.Tag, 0, len(r.Tags))
	for _, s := range r.Tags {
		tag, err := model.NewTag(s)
		if err != nil {
			return nil, fmt.Errorf("person tag %q: %w", s, err)
		}
		tags = append(tags, tag)
	}
	return model.NewPerson(name, phone, email, address, tags), nil
}

// NewPastryRecord converts a Pastry for serialization.
func NewPastryRecord(p *model.Pastry) PastryRecord {
	return PastryRecord{
		Name:  p.Name().String(),
		Price: p.Price().String(),
	}
}

// ToModel validates the record and rebuilds the Pastry.
func (r PastryRecord) ToModel() (*model.Pastry, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return nil, fmt.Errorf("pastry name %q: %w", r.Name, err)
	}
	price, err := model.NewPrice(r.Price)
	if err != nil {
		return nil, fmt.Errorf("pastry price %q: %w", r.Price, err)
	}
	return model.NewPastry(name, price), nil
}

// NewOrderRecord converts an Order for serialization. The order date is
// stored as RFC 3339 and the status as its enum name.
func NewOrderRecord(o *model.Order) OrderRecord {
	items := o.Items()
	itemRecords := make([]OrderItemRecord, len(items))
	for i, item := range items {
		itemRecords[i] = OrderItemRecord{
			Pastry:   NewPastryRecord(item.Pastry()),
			Quantity: item.Quantity(),
		}
	}
	customer := NewPersonRecord(o.Customer())
	return OrderRecord{
		OrderID:   o.ID().String(),
		Customer:  &customer,
		Items:     itemRecords,
		OrderDate: o.OrderDate().Format(time.RFC3339Nano),
		Status:    o.Status().String(),
	}
}

// ToModel validates the record and rebuilds the Order. A missing or
// malformed field fails with a typed error; the item list must be
// non-empty.
func (r OrderRecord) ToModel() (*model.Order, error) {
	if r.OrderID == "" {
		return nil, missingField("orderId")
	}
	id, err := model.ParseOrderID(r.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order id %q: %w", r.OrderID, err)
	}

	if r.Customer == nil {
		return nil, missingField("customer")
	}
	customer, err := r.Customer.ToModel()
	if err != nil {
		return nil, fmt.Errorf("order customer: %w", err)
	}

	if len(r.Items) == 0 {
		return nil, missingField("items")
	}
	items := make([]*model.OrderItem, 0, len(r.Items))
	for _, itemRecord := range r.Items {
		pastry, err := itemRecord.Pastry.ToModel()
		if err != nil {
			return nil, fmt.Errorf("order item: %w", err)
		}
		item, err := model.NewOrderItem(pastry, itemRecord.Quantity)
		if err != nil {
			return nil, fmt.Errorf("order item quantity %d: %w", itemRecord.Quantity, err)
		}
		items = append(items, item)
	}

	if r.OrderDate == "" {
		return nil, missingField("orderDate")
	}
	orderDate, err := time.Parse(time.RFC3339Nano, r.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("order date %q: %w", r.OrderDate, ErrInvalidSnapshot)
	}

	if r.Status == "" {
		return nil, missingField("status")
	}
	status, err := model.ParseOrderStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("order status %q: %w", r.Status, err)
	}

	return model.RehydrateOrder(id, customer, items, orderDate, status)
}

func missingField(field string) error {
	return fmt.Errorf("order's %s field is missing: %w", field, ErrInvalidSnapshot)
}
