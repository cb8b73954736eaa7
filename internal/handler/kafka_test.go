package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Без reader: он сразу подключается к брокеру.
func newTestKafkaHandler(mailer Mailer) *kafkaHandler {
	return &kafkaHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		mailer:   mailer,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
		},
	}
}

func orderPlacedPayload(t *testing.T) []byte {
	t.Helper()
	msg := notify.EventToMessage(entities.OrderPlacedEvent{
		EventID:     "evt-1",
		OrderID:     "d3f1a2b4-c5e6-4789-9abc-def012345603",
		OrderNumber: "ORD-1740823200000-0001",
		BuyerName:   "Asha",
		BuyerEmail:  "asha@example.com",
		Items:       []entities.TrackingItem{{Title: "Linen shirt", Price: decimal.NewFromInt(500), Quantity: 2, Seller: "Loom & Co"}},
		Total:       decimal.NewFromInt(1000),
		PlacedAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return data
}

func TestKafkaHandler_HandleOrderPlaced(t *testing.T) {
	testCases := []struct {
		name         string
		value        func(t *testing.T) []byte
		mockBehavior func(m *mocks.MockMailer)
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:  "sends confirmation",
			value: orderPlacedPayload,
			mockBehavior: func(m *mocks.MockMailer) {
				m.EXPECT().SendOrderConfirmation(mock.Anything, mock.MatchedBy(func(e entities.OrderPlacedEvent) bool {
					return e.OrderNumber == "ORD-1740823200000-0001" &&
						e.BuyerEmail == "asha@example.com" &&
						e.Total.Equal(decimal.NewFromInt(1000))
				})).Return(nil).Once()
			},
		},
		{
			name:  "retries mailer failures",
			value: orderPlacedPayload,
			mockBehavior: func(m *mocks.MockMailer) {
				m.EXPECT().SendOrderConfirmation(mock.Anything, mock.Anything).Return(errors.New("smtp timeout")).Once()
				m.EXPECT().SendOrderConfirmation(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "gives up after max attempts",
			value: orderPlacedPayload,
			mockBehavior: func(m *mocks.MockMailer) {
				m.EXPECT().SendOrderConfirmation(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Times(3)
			},
			wantAnyErr: true,
		},
		{
			name:         "malformed json",
			value:        func(t *testing.T) []byte { return []byte(`{"order_id":`) },
			mockBehavior: func(m *mocks.MockMailer) {},
			wantErr:      errInvalidMessage,
		},
		{
			name:         "missing buyer email",
			value:        func(t *testing.T) []byte { return []byte(`{"event_id":"e","order_id":"o","order_number":"n","items":[],"total":"1"}`) },
			mockBehavior: func(m *mocks.MockMailer) {},
			wantErr:      errInvalidMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := mocks.NewMockMailer(t)
			tc.mockBehavior(mailer)
			h := newTestKafkaHandler(mailer)

			err := h.handleOrderPlaced(context.Background(), kafka.Message{Value: tc.value(t)})

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
