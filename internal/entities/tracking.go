package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TrackingItem struct {
	Title    string
	Price    decimal.Decimal
	Quantity int
	Seller   string
}

// Tracking is the order view shown to its buyer and sellers.
type Tracking struct {
	OrderID       string
	OrderNumber   string
	Status        Status
	StatusHistory []StatusEntry
	PlacedAt      time.Time
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	ReturnedAt    *time.Time
	Buyer         Contact
	Items         []TrackingItem
}

func (o Order) Tracking() Tracking {
	items := make([]TrackingItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, TrackingItem{
			Title:    it.ProductTitle,
			Price:    it.Price,
			Quantity: it.Quantity,
			Seller:   it.SellerName,
		})
	}

	return Tracking{
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		StatusHistory: o.StatusHistory,
		PlacedAt:      o.PlacedAt,
		ShippedAt:     o.ShippedAt,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
		ReturnedAt:    o.ReturnedAt,
		Buyer:         o.Buyer,
		Items:         items,
	}
}
