// Package model defines the bakery domain: self-validating value types,
// immutable Person, Pastry and Order entities, the uniqueness-enforcing
// collections, and the AddressBook aggregate root that owns them.
//
// Entities carry two equality notions. IsSame is the identity relation
// used for uniqueness enforcement ("the same real-world thing"); Equals
// is full field equality. Equals implies IsSame, never the converse.
package model
