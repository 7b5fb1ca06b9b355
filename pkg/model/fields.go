package model

import (
	"regexp"
	"strings"
)

// Validation patterns for the person and pastry fields. Names allow
// alphanumerics and interior spaces and must not start with a space.
var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]([+_.\-]?[a-zA-Z0-9])*@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])+$`)
	tagPattern   = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Name is a person's or pastry's display name. Identity comparisons on
// names are exact: case-sensitive and whitespace-sensitive.
type Name string

// NewName validates and returns a Name.
// Returns ErrInvalidName if the string is blank or contains characters
// other than alphanumerics and spaces.
func NewName(s string) (Name, error) {
	if !namePattern.MatchString(s) {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a contact number: digits only, at least 3 of them.
type Phone string

// NewPhone validates and returns a Phone.
func NewPhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a contact email address of the form local-part@domain.
type Email string

// NewEmail validates and returns an Email.
func NewEmail(s string) (Email, error) {
	if !emailPattern.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is a postal address. Any non-blank string is accepted.
type Address string

// NewAddress validates and returns an Address.
func NewAddress(s string) (Address, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrInvalidAddress
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Tag is a short alphanumeric label attached to a person.
type Tag string

// NewTag validates and returns a Tag.
func NewTag(s string) (Tag, error) {
	if !tagPattern.MatchString(s) {
		return "", ErrInvalidTag
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }
