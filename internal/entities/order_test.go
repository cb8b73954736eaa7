package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newOrder() entities.Order {
	items := []entities.Item{
		{ProductID: "p1", SellerID: "s1", Quantity: 2, Price: decimal.NewFromInt(500), ProductTitle: "Linen shirt", SellerName: "Loom"},
		{ProductID: "p2", SellerID: "s2", Quantity: 1, Price: decimal.RequireFromString("249.99"), ProductTitle: "Scarf", SellerName: "Weave"},
	}
	return entities.NewOrder("o1", "b1", items,
		entities.Address{Street: "MG Road 1", City: "Bengaluru"},
		entities.Address{Street: "MG Road 1", City: "Bengaluru"},
		entities.Payment{Method: entities.PaymentCard, Status: entities.PaymentPaid, TransactionID: "pay_1"},
		entities.CalculatePricing(items, decimal.Zero, decimal.Zero, decimal.Zero),
		placedAt)
}

func TestCalculatePricing(t *testing.T) {
	testCases := []struct {
		name      string
		items     []entities.Item
		tax       string
		shipping  string
		discount  string
		wantSub   string
		wantTotal string
	}{
		{
			name:      "single item",
			items:     []entities.Item{{Quantity: 2, Price: decimal.NewFromInt(500)}},
			tax:       "0",
			shipping:  "0",
			discount:  "0",
			wantSub:   "1000",
			wantTotal: "1000",
		},
		{
			name: "charges and discount",
			items: []entities.Item{
				{Quantity: 3, Price: decimal.RequireFromString("19.99")},
				{Quantity: 1, Price: decimal.RequireFromString("0.03")},
			},
			tax:       "3.00",
			shipping:  "40",
			discount:  "10.5",
			wantSub:   "60",
			wantTotal: "92.5",
		},
		{
			name:      "no items",
			tax:       "0",
			shipping:  "0",
			discount:  "0",
			wantSub:   "0",
			wantTotal: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := entities.CalculatePricing(tc.items,
				decimal.RequireFromString(tc.tax),
				decimal.RequireFromString(tc.shipping),
				decimal.RequireFromString(tc.discount))

			assert.True(t, p.Subtotal.Equal(decimal.RequireFromString(tc.wantSub)), "subtotal %s", p.Subtotal)
			assert.True(t, p.Total.Equal(decimal.RequireFromString(tc.wantTotal)), "total %s", p.Total)
		})
	}
}

func TestNewOrder(t *testing.T) {
	o := newOrder()

	assert.Equal(t, entities.StatusPending, o.Status)
	assert.Equal(t, placedAt, o.PlacedAt)
	assert.Equal(t, 1, o.Version)
	require.Len(t, o.StatusHistory, 1)
	assert.Equal(t, entities.StatusEntry{Status: entities.StatusPending, ChangedAt: placedAt, Note: "Order created"}, o.StatusHistory[0])
	assert.Equal(t, 3, o.TotalItems())
	assert.True(t, o.Pricing.Total.Equal(decimal.RequireFromString("1249.99")))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-1740823200000-0042", entities.FormatOrderNumber(placedAt, 42))
	assert.Equal(t, "ORD-1740823200000-12345", entities.FormatOrderNumber(placedAt, 12345))
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []entities.Status{
		entities.StatusPending, entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped,
		entities.StatusDelivered, entities.StatusCancelled, entities.StatusReturned,
	}
	allowed := map[entities.Status][]entities.Status{
		entities.StatusPending:    {entities.StatusConfirmed, entities.StatusCancelled},
		entities.StatusConfirmed:  {entities.StatusProcessing, entities.StatusCancelled},
		entities.StatusProcessing: {entities.StatusShipped, entities.StatusCancelled},
		entities.StatusShipped:    {entities.StatusDelivered},
		entities.StatusDelivered:  {entities.StatusReturned},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, entities.StatusCancelled.Terminal())
	assert.True(t, entities.StatusReturned.Terminal())
	assert.False(t, entities.StatusShipped.Terminal())
	assert.False(t, entities.Status("lost").Valid())
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("full lifecycle stamps timestamps", func(t *testing.T) {
		o := newOrder()
		steps := []entities.Status{
			entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped,
			entities.StatusDelivered, entities.StatusReturned,
		}

		for i, s := range steps {
			now := placedAt.Add(time.Duration(i+1) * time.Hour)
			entry, err := o.UpdateStatus(s, "", "s1", now)
			require.NoError(t, err)
			assert.Equal(t, s, entry.Status)
			assert.Equal(t, now, entry.ChangedAt)
		}

		assert.Equal(t, entities.StatusReturned, o.Status)
		require.Len(t, o.StatusHistory, len(steps)+1)
		for i, s := range steps {
			assert.Equal(t, s, o.StatusHistory[i+1].Status)
		}
		require.NotNil(t, o.ShippedAt)
		assert.Equal(t, placedAt.Add(3*time.Hour), *o.ShippedAt)
		require.NotNil(t, o.DeliveredAt)
		require.NotNil(t, o.ReturnedAt)
		assert.Nil(t, o.CancelledAt)
	})

	t.Run("cancel stamps cancelledAt", func(t *testing.T) {
		o := newOrder()
		_, err := o.UpdateStatus(entities.StatusCancelled, "out of stock", "s1", placedAt)
		require.NoError(t, err)
		require.NotNil(t, o.CancelledAt)
		assert.Equal(t, "out of stock", o.StatusHistory[1].Note)
		assert.Equal(t, "s1", o.StatusHistory[1].UpdatedBy)
	})

	t.Run("rejected transition leaves order untouched", func(t *testing.T) {
		o := newOrder()
		_, err := o.UpdateStatus(entities.StatusShipped, "", "s1", placedAt)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
		assert.Equal(t, entities.StatusPending, o.Status)
		assert.Len(t, o.StatusHistory, 1)
		assert.Nil(t, o.ShippedAt)
	})

	t.Run("same status is rejected", func(t *testing.T) {
		o := newOrder()
		_, err := o.UpdateStatus(entities.StatusPending, "", "s1", placedAt)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		o := newOrder()
		_, err := o.UpdateStatus(entities.Status("lost"), "", "s1", placedAt)
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}

func TestOrder_Visibility(t *testing.T) {
	o := newOrder()

	assert.True(t, o.VisibleTo("b1"))
	assert.True(t, o.VisibleTo("s1"))
	assert.True(t, o.VisibleTo("s2"))
	assert.False(t, o.VisibleTo("stranger"))
	assert.True(t, o.HasSeller("s2"))
	assert.False(t, o.HasSeller("b1"))
}

func TestOrder_Tracking(t *testing.T) {
	o := newOrder()
	o.OrderNumber = "ORD-1-0001"
	o.Buyer = entities.Contact{ID: "b1", Name: "Asha", Email: "asha@example.com"}

	tr := o.Tracking()

	assert.Equal(t, "o1", tr.OrderID)
	assert.Equal(t, "ORD-1-0001", tr.OrderNumber)
	assert.Equal(t, entities.StatusPending, tr.Status)
	assert.Equal(t, "Asha", tr.Buyer.Name)
	require.Len(t, tr.Items, 2)
	assert.Equal(t, "Linen shirt", tr.Items[0].Title)
	assert.Equal(t, "Loom", tr.Items[0].Seller)
	assert.Equal(t, 2, tr.Items[0].Quantity)
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	o := newOrder()
	o.OrderNumber = "ORD-1-0001"

	data, err := o.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.OrderNumber, got.OrderNumber)
	assert.Equal(t, o.StatusHistory[0].Note, got.StatusHistory[0].Note)
	assert.True(t, o.Pricing.Total.Equal(got.Pricing.Total))
	assert.True(t, got.PlacedAt.Equal(o.PlacedAt))

	var broken entities.Order
	assert.ErrorIs(t, broken.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
}
