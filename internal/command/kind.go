// Package command implements the entity-resolving commands of the
// bakebook core: add, edit, delete, find, view and clear. Each verb
// carries a closed payload union with one variant per entity kind and
// dispatches through a single exhaustive type switch; no runtime type
// inspection happens anywhere else. Commands resolve indices against
// the currently displayed (filtered) views and call exactly one
// mutation on the address book.
package command

import (
	"errors"
	"strings"
)

// EntityKind selects which of the three entity collections a command
// targets.
type EntityKind int

const (
	KindClient EntityKind = iota
	KindPastry
	KindOrder
)

// Command layer errors.
var (
	ErrUnknownEntity = errors.New("invalid entity: only 'client', 'pastry' and 'order' are supported")
	ErrInvalidIndex  = errors.New("the index provided is invalid")
	ErrNoFieldEdited = errors.New("at least one field to edit must be provided")
	ErrEmptyOrder    = errors.New("an order must contain at least one item")
	ErrRepeatedItem  = errors.New("the pastry name is repeated in the order")
	ErrUnknownPastry = errors.New("the pastry name provided is invalid")
)

// ParseEntityKind matches a selector string against the closed entity
// set, case-insensitively.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(s) {
	case "client":
		return KindClient, nil
	case "pastry":
		return KindPastry, nil
	case "order":
		return KindOrder, nil
	default:
		return 0, ErrUnknownEntity
	}
}

func (k EntityKind) String() string {
	switch k {
	case KindClient:
		return "client"
	case KindPastry:
		return "pastry"
	case KindOrder:
		return "order"
	default:
		return "unknown"
	}
}
