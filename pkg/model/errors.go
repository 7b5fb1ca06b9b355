package model

import "errors"

// Collection and aggregate errors.
var (
	ErrNilEntity = errors.New("entity must not be nil")
	ErrDuplicate = errors.New("duplicate entity")
	ErrNotFound  = errors.New("entity not found")
)

// Field validation errors, returned by the value type constructors.
var (
	ErrInvalidName     = errors.New("names should only contain alphanumeric characters and spaces, and should not be blank")
	ErrInvalidPhone    = errors.New("phone numbers should only contain digits, and should be at least 3 digits long")
	ErrInvalidEmail    = errors.New("emails should be of the format local-part@domain")
	ErrInvalidAddress  = errors.New("addresses can take any values, and should not be blank")
	ErrInvalidTag      = errors.New("tag names should be alphanumeric")
	ErrInvalidPrice    = errors.New("prices should only contain digits and up to 2 decimal places")
	ErrInvalidOrderID  = errors.New("order ids should be valid UUID strings")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
