package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after an order is persisted and drives the
// confirmation email.
type OrderPlacedEvent struct {
	EventID     string
	OrderID     string
	OrderNumber string
	BuyerName   string
	BuyerEmail  string
	Items       []TrackingItem
	Total       decimal.Decimal
	PlacedAt    time.Time
}

// GatewayOrder is an order registered with the payment gateway before checkout.
// Amount is in minor currency units.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}
