package command

import "github.com/ovenworks/bakebook/pkg/model"

// Clear resets the whole book to empty and shows the client view.
type Clear struct{}

// Execute replaces all three collections with empty ones.
func (c Clear) Execute(m *model.Model) (Result, error) {
	if err := m.Book().ResetData(nil, nil, nil); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersons(nil)
	m.UpdateFilteredPastries(nil)
	m.UpdateFilteredOrders(nil)
	return newResult(msgCleared, KindClient), nil
}
