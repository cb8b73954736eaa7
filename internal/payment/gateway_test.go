package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, h http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g := NewGateway(config.Payment{
		BaseURL:  srv.URL,
		KeyID:    "key",
		Secret:   "secret",
		Currency: "INR",
		Timeout:  time.Second,
	})
	g.retry.InitialDelay = time.Millisecond
	return g
}

func TestGateway_CreateOrder(t *testing.T) {
	var got createOrderRequest

	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_1",
			Amount:   got.Amount,
			Currency: got.Currency,
			Receipt:  got.Receipt,
		})
	})

	order, err := g.CreateOrder(context.Background(), decimal.RequireFromString("1049.50"))
	require.NoError(t, err)

	assert.Equal(t, int64(104950), got.Amount)
	assert.Equal(t, "INR", got.Currency)
	assert.True(t, strings.HasPrefix(got.Receipt, "rcpt_"))

	assert.Equal(t, entities.GatewayOrder{ID: "order_1", Amount: 104950, Currency: "INR", Receipt: got.Receipt}, order)
}

func TestGateway_CreateOrder_Errors(t *testing.T) {
	t.Run("non positive amount", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("gateway must not be called")
		})
		_, err := g.CreateOrder(context.Background(), decimal.Zero)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("amount below minor unit", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("gateway must not be called")
		})
		_, err := g.CreateOrder(context.Background(), decimal.RequireFromString("0.004"))
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("rejected request is not retried", func(t *testing.T) {
		var calls atomic.Int32
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		})
		_, err := g.CreateOrder(context.Background(), decimal.NewFromInt(10))
		assert.ErrorIs(t, err, errGatewayRejected)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server errors are retried", func(t *testing.T) {
		var calls atomic.Int32
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(createOrderResponse{ID: "order_2", Amount: 1000, Currency: "INR"})
		})
		order, err := g.CreateOrder(context.Background(), decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, "order_2", order.ID)
		assert.Equal(t, int32(3), calls.Load())
	})
}
