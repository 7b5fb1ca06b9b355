package command

import (
	"fmt"

	"github.com/ovenworks/bakebook/pkg/model"
)

// EditPayload is the closed union of edit targets.
type EditPayload interface {
	isEditPayload()
}

// EditClient edits the client at Index in the displayed client list.
type EditClient struct {
	Index      int
	Descriptor PersonDescriptor
}

// EditPastry edits the pastry at Index in the displayed pastry list.
type EditPastry struct {
	Index      int
	Descriptor PastryDescriptor
}

// EditOrder sets the status of the order at Index in the displayed
// order list. Status is the only editable order field.
type EditOrder struct {
	Index  int
	Status model.OrderStatus
}

func (EditClient) isEditPayload() {}
func (EditPastry) isEditPayload() {}
func (EditOrder) isEditPayload()  {}

// PersonDescriptor holds the fields to change on a client. Nil fields
// keep the current value. Tags, when non-nil, replace the whole tag set.
type PersonDescriptor struct {
	Name    *model.Name
	Phone   *model.Phone
	Email   *model.Email
	Address *model.Address
	Tags    []model.Tag
}

// IsAnyFieldSet reports whether the descriptor changes anything.
func (d PersonDescriptor) IsAnyFieldSet() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// apply builds the edited person from target and the descriptor.
func (d PersonDescriptor) apply(target *model.Person) *model.Person {
	name := target.Name()
	if d.Name != nil {
		name = *d.Name
	}
	phone := target.Phone()
	if d.Phone != nil {
		phone = *d.Phone
	}
	email := target.Email()
	if d.Email != nil {
		email = *d.Email
	}
	address := target.Address()
	if d.Address != nil {
		address = *d.Address
	}
	tags := target.Tags()
	if d.Tags != nil {
		tags = d.Tags
	}
	return model.NewPerson(name, phone, email, address, tags)
}

// PastryDescriptor holds the fields to change on a pastry.
type PastryDescriptor struct {
	Name  *model.Name
	Price *model.Price
}

// IsAnyFieldSet reports whether the descriptor changes anything.
func (d PastryDescriptor) IsAnyFieldSet() bool {
	return d.Name != nil || d.Price != nil
}

func (d PastryDescriptor) apply(target *model.Pastry) *model.Pastry {
	name := target.Name()
	if d.Name != nil {
		name = *d.Name
	}
	price := target.Price()
	if d.Price != nil {
		price = *d.Price
	}
	return model.NewPastry(name, price)
}

// Edit is the edit verb for all three entity kinds.
type Edit struct {
	Payload EditPayload
}

// Execute dispatches on the payload variant. Indices resolve against
// the displayed views; the duplicate identity check runs against the
// whole collection, because a filtered view can hide an existing
// duplicate.
func (c Edit) Execute(m *model.Model) (Result, error) {
	switch p := c.Payload.(type) {
	case EditClient:
		return editClient(m, p)
	case EditPastry:
		return editPastry(m, p)
	case EditOrder:
		return editOrder(m, p)
	default:
		return Result{}, ErrUnknownEntity
	}
}

func editClient(m *model.Model, p EditClient) (Result, error) {
	if !p.Descriptor.IsAnyFieldSet() {
		return Result{}, ErrNoFieldEdited
	}
	displayed := m.FilteredPersons()
	if p.Index < 0 || p.Index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidClientIndex, ErrInvalidIndex)
	}
	target := displayed[p.Index]
	edited := p.Descriptor.apply(target)

	if !target.IsSame(edited) {
		ok, err := m.Book().HasPerson(edited)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{}, fmt.Errorf("%s: %w", msgDuplicateClient, model.ErrDuplicate)
		}
	}

	// SetPerson also rewrites the customer snapshot of every order that
	// references the original person.
	if err := m.Book().SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersons(nil)
	return newResult(fmt.Sprintf(msgEditedClient, edited), KindClient), nil
}

func editPastry(m *model.Model, p EditPastry) (Result, error) {
	if !p.Descriptor.IsAnyFieldSet() {
		return Result{}, ErrNoFieldEdited
	}
	displayed := m.FilteredPastries()
	if p.Index < 0 || p.Index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidPastryIndex, ErrInvalidIndex)
	}
	target := displayed[p.Index]
	edited := p.Descriptor.apply(target)

	if !target.IsSame(edited) {
		ok, err := m.Book().HasPastry(edited)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{}, fmt.Errorf("%s: %w", msgDuplicatePastry, model.ErrDuplicate)
		}
	}

	if err := m.Book().SetPastry(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPastries(nil)
	return newResult(fmt.Sprintf(msgEditedPastry, edited), KindPastry), nil
}

func editOrder(m *model.Model, p EditOrder) (Result, error) {
	displayed := m.FilteredOrders()
	if p.Index < 0 || p.Index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidOrderIndex, ErrInvalidIndex)
	}
	target := displayed[p.Index]
	edited := target.WithStatus(p.Status)

	if err := m.Book().SetOrder(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredOrders(nil)
	return newResult(fmt.Sprintf(msgEditedOrder, edited), KindOrder), nil
}
