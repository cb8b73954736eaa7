package notify_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedMessage(t *testing.T) {
	event := entities.OrderPlacedEvent{
		EventID:     "evt-1",
		OrderID:     "o1",
		OrderNumber: "ORD-1-0001",
		BuyerName:   "Asha",
		BuyerEmail:  "asha@example.com",
		Items: []entities.TrackingItem{
			{Title: "Scarf", Price: decimal.RequireFromString("249.9"), Quantity: 1, Seller: "Weave"},
		},
		Total: decimal.RequireFromString("249.9"),
	}

	msg := notify.EventToMessage(event)
	assert.Equal(t, "249.90", msg.Total)
	assert.Equal(t, "249.90", msg.Items[0].Price)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"order_number":"ORD-1-0001"`)

	var decoded notify.OrderPlacedMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	got := notify.MessageToEvent(decoded)
	assert.Equal(t, event.OrderNumber, got.OrderNumber)
	assert.Equal(t, event.BuyerEmail, got.BuyerEmail)
	assert.True(t, got.Total.Equal(event.Total))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(event.Items[0].Price))
}

func TestOrderPlacedMessage_Validation(t *testing.T) {
	validate := validator.New()

	valid := notify.OrderPlacedMessage{
		EventID:     "evt-1",
		OrderID:     "o1",
		OrderNumber: "ORD-1-0001",
		BuyerEmail:  "asha@example.com",
		Items:       []notify.MessageItem{{Title: "Scarf", Price: "249.90", Quantity: 1}},
		Total:       "249.90",
		PlacedAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name    string
		modify  func(m *notify.OrderPlacedMessage)
		wantErr bool
	}{
		{name: "valid", modify: func(m *notify.OrderPlacedMessage) {}},
		{name: "bad email", modify: func(m *notify.OrderPlacedMessage) { m.BuyerEmail = "asha" }, wantErr: true},
		{name: "no items", modify: func(m *notify.OrderPlacedMessage) { m.Items = nil }, wantErr: true},
		{name: "missing placed at", modify: func(m *notify.OrderPlacedMessage) { m.PlacedAt = time.Time{} }, wantErr: true},
		{name: "non numeric total", modify: func(m *notify.OrderPlacedMessage) { m.Total = "ten" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid
			tc.modify(&m)
			err := validate.Struct(m)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
