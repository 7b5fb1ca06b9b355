package command

import (
	"fmt"

	"github.com/ovenworks/bakebook/pkg/model"
)

// Find narrows the displayed view of Kind to entries whose name
// contains any of the keywords. Orders match on their customer's name.
type Find struct {
	Kind     EntityKind
	Keywords []string
}

// Execute installs the keyword filter and reports the match count.
func (c Find) Execute(m *model.Model) (Result, error) {
	switch c.Kind {
	case KindClient:
		m.UpdateFilteredPersons(model.PersonNameContains(c.Keywords))
		return newResult(fmt.Sprintf(msgClientsListed, len(m.FilteredPersons())), KindClient), nil
	case KindPastry:
		m.UpdateFilteredPastries(model.PastryNameContains(c.Keywords))
		return newResult(fmt.Sprintf(msgPastriesListed, len(m.FilteredPastries())), KindPastry), nil
	case KindOrder:
		m.UpdateFilteredOrders(model.OrderCustomerNameContains(c.Keywords))
		return newResult(fmt.Sprintf(msgOrdersListed, len(m.FilteredOrders())), KindOrder), nil
	default:
		return Result{}, ErrUnknownEntity
	}
}
