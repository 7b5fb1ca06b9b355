package command

import (
	"fmt"
	"strings"

	"github.com/ovenworks/bakebook/pkg/model"
)

// AddPayload is the closed union of add targets.
type AddPayload interface {
	isAddPayload()
}

// AddClient adds a fully specified client record.
type AddClient struct {
	Person *model.Person
}

// AddPastry adds a product with a name and price.
type AddPastry struct {
	Pastry *model.Pastry
}

// AddOrder commits a new order for the client at ClientIndex in the
// displayed client list, with items resolved against the displayed
// pastry list.
type AddOrder struct {
	ClientIndex int
	Items       []ItemSpec
}

// ItemSpec names one order line before pastry resolution. The pastry
// name matches the displayed pastry list case-insensitively.
type ItemSpec struct {
	PastryName string
	Quantity   int
}

func (AddClient) isAddPayload() {}
func (AddPastry) isAddPayload() {}
func (AddOrder) isAddPayload()  {}

// Add is the add verb for all three entity kinds.
type Add struct {
	Payload AddPayload
}

// Execute dispatches on the payload variant and performs one mutation
// on the book. The state is unchanged on any error.
func (c Add) Execute(m *model.Model) (Result, error) {
	switch p := c.Payload.(type) {
	case AddClient:
		return addClient(m, p)
	case AddPastry:
		return addPastry(m, p)
	case AddOrder:
		return addOrder(m, p)
	default:
		return Result{}, ErrUnknownEntity
	}
}

func addClient(m *model.Model, p AddClient) (Result, error) {
	if p.Person == nil {
		return Result{}, model.ErrNilEntity
	}
	ok, err := m.Book().HasPerson(p.Person)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return Result{}, fmt.Errorf("%s: %w", msgDuplicateClient, model.ErrDuplicate)
	}
	if err := m.Book().AddPerson(p.Person); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgAddedClient, p.Person), KindClient), nil
}

func addPastry(m *model.Model, p AddPastry) (Result, error) {
	if p.Pastry == nil {
		return Result{}, model.ErrNilEntity
	}
	ok, err := m.Book().HasPastry(p.Pastry)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return Result{}, fmt.Errorf("%s: %w", msgDuplicatePastry, model.ErrDuplicate)
	}
	if err := m.Book().AddPastry(p.Pastry); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgAddedPastry, p.Pastry), KindPastry), nil
}

func addOrder(m *model.Model, p AddOrder) (Result, error) {
	clients := m.FilteredPersons()
	if p.ClientIndex < 0 || p.ClientIndex >= len(clients) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidClientIndex, ErrInvalidIndex)
	}
	customer := clients[p.ClientIndex]

	// The item list must be non-empty at the point the order is
	// committed; the Order constructor itself accepts an empty list.
	if len(p.Items) == 0 {
		return Result{}, ErrEmptyOrder
	}

	items, err := resolveItems(m.FilteredPastries(), p.Items)
	if err != nil {
		return Result{}, err
	}

	order, err := model.NewOrder(customer, items)
	if err != nil {
		return Result{}, err
	}
	ok, err := m.Book().HasOrder(order)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return Result{}, fmt.Errorf("%s: %w", msgDuplicateOrder, model.ErrDuplicate)
	}
	if err := m.Book().AddOrder(order); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgAddedOrder, order), KindOrder), nil
}

// resolveItems maps item specs to order items against the displayed
// pastry list. Pastry names match case-insensitively; a name absent
// from the displayed list or repeated across specs is an error.
func resolveItems(displayed []*model.Pastry, specs []ItemSpec) ([]*model.OrderItem, error) {
	seen := make(map[string]bool, len(specs))
	items := make([]*model.OrderItem, 0, len(specs))
	for _, spec := range specs {
		var pastry *model.Pastry
		for _, candidate := range displayed {
			if strings.EqualFold(candidate.Name().String(), spec.PastryName) {
				pastry = candidate
				break
			}
		}
		if pastry == nil {
			return nil, fmt.Errorf("%q: %w", spec.PastryName, ErrUnknownPastry)
		}
		key := strings.ToLower(pastry.Name().String())
		if seen[key] {
			return nil, fmt.Errorf("%q: %w", spec.PastryName, ErrRepeatedItem)
		}
		seen[key] = true

		item, err := model.NewOrderItem(pastry, spec.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
