package notify

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

// OrderPlacedMessage is the wire form of entities.OrderPlacedEvent.
type OrderPlacedMessage struct {
	EventID     string        `json:"event_id" validate:"required"`
	OrderID     string        `json:"order_id" validate:"required"`
	OrderNumber string        `json:"order_number" validate:"required"`
	BuyerName   string        `json:"buyer_name"`
	BuyerEmail  string        `json:"buyer_email" validate:"required,email"`
	Items       []MessageItem `json:"items" validate:"required,min=1,dive"`
	Total       string        `json:"total" validate:"required,numeric"`
	PlacedAt    time.Time     `json:"placed_at" validate:"required"`
}

type MessageItem struct {
	Title    string `json:"title"`
	Price    string `json:"price" validate:"required,numeric"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Seller   string `json:"seller"`
}

func EventToMessage(e entities.OrderPlacedEvent) OrderPlacedMessage {
	items := make([]MessageItem, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, MessageItem{
			Title:    it.Title,
			Price:    it.Price.StringFixed(2),
			Quantity: it.Quantity,
			Seller:   it.Seller,
		})
	}

	return OrderPlacedMessage{
		EventID:     e.EventID,
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		BuyerName:   e.BuyerName,
		BuyerEmail:  e.BuyerEmail,
		Items:       items,
		Total:       e.Total.StringFixed(2),
		PlacedAt:    e.PlacedAt,
	}
}

// MessageToEvent expects a validated message.
func MessageToEvent(m OrderPlacedMessage) entities.OrderPlacedEvent {
	items := make([]entities.TrackingItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entities.TrackingItem{
			Title:    it.Title,
			Price:    decimal.RequireFromString(it.Price),
			Quantity: it.Quantity,
			Seller:   it.Seller,
		})
	}

	return entities.OrderPlacedEvent{
		EventID:     m.EventID,
		OrderID:     m.OrderID,
		OrderNumber: m.OrderNumber,
		BuyerName:   m.BuyerName,
		BuyerEmail:  m.BuyerEmail,
		Items:       items,
		Total:       decimal.RequireFromString(m.Total),
		PlacedAt:    m.PlacedAt,
	}
}
