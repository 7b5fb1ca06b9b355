package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderID(t *testing.T) {
	t.Run("generated id is valid", func(t *testing.T) {
		id := NewOrderID()
		parsed, err := ParseOrderID(id.String())
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		assert.NotEqual(t, NewOrderID(), NewOrderID())
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		_, err := ParseOrderID("not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidOrderID)
	})
}

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OrderStatus
		wantErr error
	}{
		{name: "lowercase", input: "pending", want: StatusPending},
		{name: "uppercase", input: "PROCESSING", want: StatusProcessing},
		{name: "mixed case", input: "Ready", want: StatusReady},
		{name: "delivered", input: "delivered", want: StatusDelivered},
		{name: "cancelled", input: "cancelled", want: StatusCancelled},
		{name: "unknown rejected", input: "shipped", wantErr: ErrInvalidStatus},
		{name: "empty rejected", input: "", wantErr: ErrInvalidStatus},
		{name: "display name not accepted", input: "Ready for delivery", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewOrderItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := NewOrderItem(croissant(), 2)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("nil pastry rejected", func(t *testing.T) {
		_, err := NewOrderItem(nil, 1)
		assert.ErrorIs(t, err, ErrNilEntity)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := NewOrderItem(croissant(), 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := NewOrderItem(croissant(), -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestOrderItemSubtotal(t *testing.T) {
	item := testItem(croissant(), 2)
	assert.Equal(t, "9.00", item.Subtotal().StringFixed(2))
}

func TestNewOrder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		before := time.Now()
		order, err := NewOrder(alice(), []*OrderItem{testItem(croissant(), 1)})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, order.Status())
		assert.NotEmpty(t, order.ID())
		assert.False(t, order.OrderDate().Before(before))
	})

	t.Run("nil customer rejected", func(t *testing.T) {
		_, err := NewOrder(nil, []*OrderItem{testItem(croissant(), 1)})
		assert.ErrorIs(t, err, ErrNilEntity)
	})

	t.Run("nil items rejected", func(t *testing.T) {
		_, err := NewOrder(alice(), nil)
		assert.ErrorIs(t, err, ErrNilEntity)
	})

	t.Run("empty item list accepted by constructor", func(t *testing.T) {
		// The non-empty requirement is enforced at the add-order
		// command boundary, not here.
		order, err := NewOrder(alice(), []*OrderItem{})
		require.NoError(t, err)
		assert.Empty(t, order.Items())
	})
}

func TestOrderWithStatus(t *testing.T) {
	order := testOrder(alice(), testItem(croissant(), 2))
	updated := order.WithStatus(StatusReady)

	assert.Equal(t, StatusReady, updated.Status())
	assert.Equal(t, StatusPending, order.Status(), "original must be unchanged")
	assert.Equal(t, order.ID(), updated.ID())
	assert.Equal(t, order.OrderDate(), updated.OrderDate())
	assert.True(t, order.Customer().Equals(updated.Customer()))
}

func TestOrderTotalPrice(t *testing.T) {
	order := testOrder(alice(), testItem(croissant(), 2), testItem(bagel(), 3))
	// 4.50*2 + 2.50*3 = 16.50, exactly.
	assert.Equal(t, "16.50", order.TotalPrice().StringFixed(2))
}

// TestOrderEqualsIsIdentifierOnly pins an intentional property: order
// equality is defined by the generated id alone. Two orders with the
// same id but different customers, items or status are equal. The
// uniqueness checks in the order list depend on this; do not "fix" it.
func TestOrderEqualsIsIdentifierOnly(t *testing.T) {
	order := testOrder(alice(), testItem(croissant(), 2))

	differentContent, err := RehydrateOrder(order.ID(), benson(),
		[]*OrderItem{testItem(bagel(), 9)}, order.OrderDate().Add(time.Hour), StatusCancelled)
	require.NoError(t, err)

	assert.True(t, order.Equals(differentContent))
	assert.True(t, order.IsSame(differentContent))

	differentID := testOrder(alice(), testItem(croissant(), 2))
	assert.False(t, order.Equals(differentID))
	assert.False(t, order.IsSame(differentID))
}

func TestOrderItemsAreCopied(t *testing.T) {
	items := []*OrderItem{testItem(croissant(), 1)}
	order := testOrder(alice(), items...)

	got := order.Items()
	got[0] = testItem(bagel(), 5)
	assert.True(t, order.Items()[0].Pastry().IsSame(croissant()))
}
