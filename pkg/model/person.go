package model

import (
	"fmt"
	"sort"
	"strings"
)

// Person is a bakery client. Immutable: an edit always produces a new
// instance, never mutates one in place.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag
}

// NewPerson builds a Person from validated field values. Tags are
// deduplicated and stored in sorted order so field equality is
// independent of the order the caller supplied them in.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag) *Person {
	return &Person{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    normalizeTags(tags),
	}
}

func (p *Person) Name() Name       { return p.name }
func (p *Person) Phone() Phone     { return p.phone }
func (p *Person) Email() Email     { return p.email }
func (p *Person) Address() Address { return p.address }

// Tags returns a copy of the tag set.
func (p *Person) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

// IsSame reports whether other is the same client: names must match
// exactly (case-sensitive, whitespace-sensitive). This is the identity
// relation used for uniqueness enforcement.
func (p *Person) IsSame(other *Person) bool {
	if other == p {
		return true
	}
	return other != nil && other.name == p.name
}

// Equals reports whether other matches on every field.
func (p *Person) Equals(other *Person) bool {
	if other == p {
		return true
	}
	if other == nil {
		return false
	}
	if p.name != other.name || p.phone != other.phone ||
		p.email != other.email || p.address != other.address {
		return false
	}
	if len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

func (p *Person) String() string {
	tags := make([]string, len(p.tags))
	for i, t := range p.tags {
		tags[i] = "[" + t.String() + "]"
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Tags: %s",
		p.name, p.phone, p.email, p.address, strings.Join(tags, ""))
}

// normalizeTags returns a sorted, deduplicated copy of tags.
func normalizeTags(tags []Tag) []Tag {
	seen := make(map[Tag]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
