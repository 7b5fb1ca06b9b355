package command

import (
	"fmt"

	"github.com/ovenworks/bakebook/pkg/model"
)

// Delete removes the entity at Index in the displayed view of Kind.
// The removal passes the exact displayed snapshot to the collection,
// which matches by strict equality.
type Delete struct {
	Kind  EntityKind
	Index int
}

// Execute dispatches on the entity kind.
func (c Delete) Execute(m *model.Model) (Result, error) {
	switch c.Kind {
	case KindClient:
		return deleteClient(m, c.Index)
	case KindPastry:
		return deletePastry(m, c.Index)
	case KindOrder:
		return deleteOrder(m, c.Index)
	default:
		return Result{}, ErrUnknownEntity
	}
}

func deleteClient(m *model.Model, index int) (Result, error) {
	displayed := m.FilteredPersons()
	if index < 0 || index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidClientIndex, ErrInvalidIndex)
	}
	target := displayed[index]
	if err := m.Book().RemovePerson(target); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgDeletedClient, target), KindClient), nil
}

func deletePastry(m *model.Model, index int) (Result, error) {
	displayed := m.FilteredPastries()
	if index < 0 || index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidPastryIndex, ErrInvalidIndex)
	}
	target := displayed[index]
	if err := m.Book().RemovePastry(target); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgDeletedPastry, target), KindPastry), nil
}

func deleteOrder(m *model.Model, index int) (Result, error) {
	displayed := m.FilteredOrders()
	if index < 0 || index >= len(displayed) {
		return Result{}, fmt.Errorf("%s: %w", msgInvalidOrderIndex, ErrInvalidIndex)
	}
	target := displayed[index]
	if err := m.Book().RemoveOrder(target); err != nil {
		return Result{}, err
	}
	return newResult(fmt.Sprintf(msgDeletedOrder, target), KindOrder), nil
}
