package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	addressShipping = "shipping"
	addressBilling  = "billing"
)

type Order struct {
	ID          string          `db:"id"`
	OrderNumber string          `db:"order_number"`
	BuyerID     string          `db:"buyer_id"`
	BuyerName   sql.NullString  `db:"buyer_name"`
	BuyerEmail  sql.NullString  `db:"buyer_email"`
	Status      string          `db:"status"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	Tax         decimal.Decimal `db:"tax"`
	ShippingFee decimal.Decimal `db:"shipping_fee"`
	Discount    decimal.Decimal `db:"discount"`
	Total       decimal.Decimal `db:"total"`
	PlacedAt    time.Time       `db:"placed_at"`
	ShippedAt   sql.NullTime    `db:"shipped_at"`
	DeliveredAt sql.NullTime    `db:"delivered_at"`
	CancelledAt sql.NullTime    `db:"cancelled_at"`
	ReturnedAt  sql.NullTime    `db:"returned_at"`
	Version     int             `db:"version"`
}

type Address struct {
	OrderID     string         `db:"order_id"`
	Kind        string         `db:"kind"`
	Street      sql.NullString `db:"street"`
	City        sql.NullString `db:"city"`
	State       sql.NullString `db:"state"`
	Country     sql.NullString `db:"country"`
	PinCode     sql.NullString `db:"pin_code"`
	PhoneNumber sql.NullString `db:"phone_number"`
}

type Payment struct {
	OrderID        string         `db:"order_id"`
	Method         string         `db:"method"`
	Status         string         `db:"status"`
	TransactionID  sql.NullString `db:"transaction_id"`
	GatewayOrderID sql.NullString `db:"gateway_order_id"`
	PaidAt         sql.NullTime   `db:"paid_at"`
}

type Item struct {
	OrderID      string          `db:"order_id"`
	Position     int             `db:"position"`
	ProductID    string          `db:"product_id"`
	SellerID     string          `db:"seller_id"`
	Quantity     int             `db:"quantity"`
	Price        decimal.Decimal `db:"price"`
	ProductTitle sql.NullString  `db:"product_title"`
	SellerName   sql.NullString  `db:"seller_name"`
}

type StatusEntry struct {
	OrderID   string         `db:"order_id"`
	Status    string         `db:"status"`
	ChangedAt time.Time      `db:"changed_at"`
	Note      sql.NullString `db:"note"`
	UpdatedBy sql.NullString `db:"updated_by"`
}

type Product struct {
	ID       string          `db:"id"`
	SellerID string          `db:"seller_id"`
	Title    string          `db:"title"`
	Price    decimal.Decimal `db:"price"`
	Stock    int             `db:"stock"`
}

type User struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Role  string `db:"role"`
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		Street:      nullStringToString(a.Street),
		City:        nullStringToString(a.City),
		State:       nullStringToString(a.State),
		Country:     nullStringToString(a.Country),
		PinCode:     nullStringToString(a.PinCode),
		PhoneNumber: nullStringToString(a.PhoneNumber),
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		Method:         entities.PaymentMethod(p.Method),
		Status:         entities.PaymentStatus(p.Status),
		TransactionID:  nullStringToString(p.TransactionID),
		GatewayOrderID: nullStringToString(p.GatewayOrderID),
		PaidAt:         nullTimeToPtr(p.PaidAt),
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID:    i.ProductID,
		SellerID:     i.SellerID,
		Quantity:     i.Quantity,
		Price:        i.Price,
		ProductTitle: nullStringToString(i.ProductTitle),
		SellerName:   nullStringToString(i.SellerName),
	}
}

func StatusEntryToEntity(e StatusEntry) entities.StatusEntry {
	return entities.StatusEntry{
		Status:    entities.Status(e.Status),
		ChangedAt: e.ChangedAt,
		Note:      nullStringToString(e.Note),
		UpdatedBy: nullStringToString(e.UpdatedBy),
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		SellerID: p.SellerID,
		Title:    p.Title,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  entities.Role(u.Role),
	}
}

func OrderToEntity(o Order, addresses []Address, p Payment, items []Item, history []StatusEntry) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		BuyerID:     o.BuyerID,
		Buyer: entities.Contact{
			ID:    o.BuyerID,
			Name:  nullStringToString(o.BuyerName),
			Email: nullStringToString(o.BuyerEmail),
		},
		Status: entities.Status(o.Status),
		Pricing: entities.Pricing{
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Shipping: o.ShippingFee,
			Discount: o.Discount,
			Total:    o.Total,
		},
		Payment:     PaymentToEntity(p),
		PlacedAt:    o.PlacedAt,
		ShippedAt:   nullTimeToPtr(o.ShippedAt),
		DeliveredAt: nullTimeToPtr(o.DeliveredAt),
		CancelledAt: nullTimeToPtr(o.CancelledAt),
		ReturnedAt:  nullTimeToPtr(o.ReturnedAt),
		Version:     o.Version,
	}

	for _, a := range addresses {
		switch a.Kind {
		case addressShipping:
			order.ShippingAddress = AddressToEntity(a)
		case addressBilling:
			order.BillingAddress = AddressToEntity(a)
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	if len(history) > 0 {
		order.StatusHistory = make([]entities.StatusEntry, 0, len(history))
		for _, e := range history {
			order.StatusHistory = append(order.StatusHistory, StatusEntryToEntity(e))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
