package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func testEvent() entities.OrderPlacedEvent {
	return entities.OrderPlacedEvent{
		EventID:     "evt-1",
		OrderID:     "o1",
		OrderNumber: "ORD-1740823200000-0001",
		BuyerName:   "Asha",
		BuyerEmail:  "asha@example.com",
		Items: []entities.TrackingItem{
			{Title: "Linen shirt", Price: decimal.NewFromInt(500), Quantity: 2, Seller: "Loom"},
		},
		Total:    decimal.NewFromInt(1000),
		PlacedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestMailer(t *testing.T, send sendFunc) *SMTPMailer {
	t.Helper()
	m, err := NewSMTPMailer(config.SMTP{Host: "smtp.example.com", Port: 587, From: "shop@example.com", User: "u", Password: "p"})
	require.NoError(t, err)
	m.send = send
	return m
}

func TestRenderConfirmation(t *testing.T) {
	body, err := RenderConfirmation(testEvent())
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Asha,")
	assert.Contains(t, body, "Order number: ORD-1740823200000-0001")
	assert.Contains(t, body, "Linen shirt x2 @ 500.00")
	assert.Contains(t, body, "Total: 1000.00")
}

func TestSMTPMailer_SendOrderConfirmation(t *testing.T) {
	t.Run("sends to buyer", func(t *testing.T) {
		var sent []*mail.Msg
		m := newTestMailer(t, func(_ context.Context, msgs ...*mail.Msg) error {
			sent = msgs
			return nil
		})

		require.NoError(t, m.SendOrderConfirmation(context.Background(), testEvent()))
		require.Len(t, sent, 1)

		rcpts, err := sent[0].GetRecipients()
		require.NoError(t, err)
		assert.Equal(t, []string{"asha@example.com"}, rcpts)
		assert.Equal(t, []string{"Order ORD-1740823200000-0001 confirmed"}, sent[0].GetGenHeader(mail.HeaderSubject))
	})

	t.Run("send error is wrapped", func(t *testing.T) {
		sendErr := errors.New("connection refused")
		m := newTestMailer(t, func(context.Context, ...*mail.Msg) error { return sendErr })

		err := m.SendOrderConfirmation(context.Background(), testEvent())
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("cancelled context reaches the client", func(t *testing.T) {
		m := newTestMailer(t, func(ctx context.Context, _ ...*mail.Msg) error {
			<-ctx.Done()
			return ctx.Err()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.SendOrderConfirmation(ctx, testEvent())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		m := newTestMailer(t, func(context.Context, ...*mail.Msg) error {
			t.Error("send must not be called")
			return nil
		})

		e := testEvent()
		e.BuyerEmail = "not an address"
		assert.Error(t, m.SendOrderConfirmation(context.Background(), e))
	})
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(config.SMTP{Port: 25})
	assert.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, m.SendOrderConfirmation(context.Background(), testEvent()))
}
