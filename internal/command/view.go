package command

import (
	"fmt"

	"github.com/ovenworks/bakebook/pkg/model"
)

// View resets the filter of the selected kind and focuses its view.
// For orders, Index may select a single order in the displayed list to
// focus its details; NoIndex shows the whole list.
type View struct {
	Kind  EntityKind
	Index int
}

// Execute resets filters and returns the focus for the presentation
// layer.
func (c View) Execute(m *model.Model) (Result, error) {
	switch c.Kind {
	case KindClient:
		m.UpdateFilteredPersons(nil)
		return newResult(fmt.Sprintf(msgViewingList, c.Kind), KindClient), nil
	case KindPastry:
		m.UpdateFilteredPastries(nil)
		return newResult(fmt.Sprintf(msgViewingList, c.Kind), KindPastry), nil
	case KindOrder:
		if c.Index == NoIndex {
			m.UpdateFilteredOrders(nil)
			return newResult(fmt.Sprintf(msgViewingList, c.Kind), KindOrder), nil
		}
		displayed := m.FilteredOrders()
		if c.Index < 0 || c.Index >= len(displayed) {
			return Result{}, fmt.Errorf("%s: %w", msgInvalidOrderIndex, ErrInvalidIndex)
		}
		return newIndexResult(fmt.Sprintf(msgViewingIndex, c.Kind, c.Index+1), KindOrder, c.Index), nil
	default:
		return Result{}, ErrUnknownEntity
	}
}
