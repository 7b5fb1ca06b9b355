package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonIsSame(t *testing.T) {
	base := alice()

	t.Run("same reference", func(t *testing.T) {
		assert.True(t, base.IsSame(base))
	})

	t.Run("nil is not same", func(t *testing.T) {
		assert.False(t, base.IsSame(nil))
	})

	t.Run("same name different fields is same person", func(t *testing.T) {
		other := testPerson("Alice Pauline", "99999999", "other@example.com", "other street")
		assert.True(t, base.IsSame(other))
		assert.False(t, base.Equals(other))
	})

	t.Run("name comparison is case sensitive", func(t *testing.T) {
		other := testPerson("alice pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6", "friends")
		assert.False(t, base.IsSame(other))
	})

	t.Run("name comparison is whitespace sensitive", func(t *testing.T) {
		other := testPerson("Alice Pauline ", "94351253", "alice@example.com", "123 Jurong West Ave 6")
		// trailing space makes a different identity
		assert.False(t, base.IsSame(other))
	})
}

func TestPersonEquals(t *testing.T) {
	t.Run("all fields equal", func(t *testing.T) {
		assert.True(t, alice().Equals(alice()))
	})

	t.Run("equals implies same", func(t *testing.T) {
		a, b := alice(), alice()
		assert.True(t, a.Equals(b))
		assert.True(t, a.IsSame(b))
	})

	t.Run("tag order does not matter", func(t *testing.T) {
		a := testPerson("Al", "123", "al@example.com", "street", "vip", "regular")
		b := testPerson("Al", "123", "al@example.com", "street", "regular", "vip")
		assert.True(t, a.Equals(b))
	})

	t.Run("different phone not equal", func(t *testing.T) {
		other := testPerson("Alice Pauline", "00000000", "alice@example.com", "123 Jurong West Ave 6", "friends")
		assert.False(t, alice().Equals(other))
	})

	t.Run("different tags not equal", func(t *testing.T) {
		other := testPerson("Alice Pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6")
		assert.False(t, alice().Equals(other))
	})
}

func TestPersonTagsAreCopied(t *testing.T) {
	p := alice()
	tags := p.Tags()
	tags[0] = Tag("mutated")
	assert.Equal(t, []Tag{"friends"}, p.Tags())
}
