package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest подтверждение оплаты от платёжного шлюза вместе с корзиной
type PlaceOrderRequest struct {
	GatewayOrderID   string    `json:"gatewayOrderId" validate:"required"`
	GatewayPaymentID string    `json:"gatewayPaymentId" validate:"required"`
	GatewaySignature string    `json:"gatewaySignature" validate:"required"`
	OrderData        OrderData `json:"orderData" validate:"required"`
}

// OrderData содержимое корзины
type OrderData struct {
	Items           []LineItem `json:"items" validate:"required,min=1,dive"`
	ShippingAddress Address    `json:"shippingAddress" validate:"required"`
	BillingAddress  Address    `json:"billingAddress" validate:"required"`
	PaymentMethod   string     `json:"paymentMethod" validate:"required,oneof=COD UPI Card NetBanking"`
}

// LineItem товар в корзине, цена берётся из каталога
type LineItem struct {
	Product  string `json:"product" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1,lte=1000"`
}

// Address почтовый адрес
type Address struct {
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	PinCode     string `json:"pinCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// UpdateStatusRequest новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled returned"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

// CreateGatewayOrderRequest сумма к оплате в основных единицах валюты
type CreateGatewayOrderRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// GatewayOrder заказ в платёжном шлюзе, сумма в минимальных единицах валюты
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Order заказ
type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	Buyer           Contact       `json:"buyer"`
	Items           []Item        `json:"items"`
	TotalItems      int           `json:"totalItems"`
	Status          string        `json:"status"`
	StatusHistory   []StatusEntry `json:"statusHistory"`
	ShippingAddress Address       `json:"shippingAddress"`
	BillingAddress  Address       `json:"billingAddress"`
	Pricing         Pricing       `json:"pricing"`
	Payment         Payment       `json:"payment"`
	PlacedAt        time.Time     `json:"placedAt"`
	ShippedAt       *time.Time    `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time    `json:"deliveredAt,omitempty"`
	CancelledAt     *time.Time    `json:"cancelledAt,omitempty"`
	ReturnedAt      *time.Time    `json:"returnedAt,omitempty"`
}

// Contact покупатель
type Contact struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Item позиция заказа с ценой на момент покупки
type Item struct {
	Product    string          `json:"product"`
	Title      string          `json:"title,omitempty"`
	Seller     string          `json:"seller"`
	SellerName string          `json:"sellerName,omitempty"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price" swaggertype:"string"`
}

// Pricing стоимость заказа
type Pricing struct {
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Tax      decimal.Decimal `json:"tax" swaggertype:"string"`
	Shipping decimal.Decimal `json:"shipping" swaggertype:"string"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string"`
	Total    decimal.Decimal `json:"total" swaggertype:"string"`
}

// Payment информация об оплате
type Payment struct {
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// StatusEntry запись истории статусов
type StatusEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// Tracking отслеживание заказа
type Tracking struct {
	OrderID       string         `json:"orderId"`
	OrderNumber   string         `json:"orderNumber"`
	Status        string         `json:"status"`
	StatusHistory []StatusEntry  `json:"statusHistory"`
	PlacedAt      time.Time      `json:"placedAt"`
	ShippedAt     *time.Time     `json:"shippedAt,omitempty"`
	DeliveredAt   *time.Time     `json:"deliveredAt,omitempty"`
	CancelledAt   *time.Time     `json:"cancelledAt,omitempty"`
	ReturnedAt    *time.Time     `json:"returnedAt,omitempty"`
	Buyer         Contact        `json:"buyer"`
	Items         []TrackingItem `json:"items"`
}

// TrackingItem позиция в отслеживании
type TrackingItem struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price" swaggertype:"string"`
	Quantity int             `json:"quantity"`
	Seller   string          `json:"seller"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		PinCode:     a.PinCode,
		PhoneNumber: a.PhoneNumber,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		PinCode:     a.PinCode,
		PhoneNumber: a.PhoneNumber,
	}
}

func PlaceOrderJSONToEntity(buyer entities.Identity, req PlaceOrderRequest) entities.Checkout {
	items := make([]entities.LineItemRequest, 0, len(req.OrderData.Items))
	for _, it := range req.OrderData.Items {
		items = append(items, entities.LineItemRequest{ProductID: it.Product, Quantity: it.Quantity})
	}

	return entities.Checkout{
		Buyer:            buyer,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
		Items:            items,
		ShippingAddress:  AddressJSONToEntity(req.OrderData.ShippingAddress),
		BillingAddress:   AddressJSONToEntity(req.OrderData.BillingAddress),
		PaymentMethod:    entities.PaymentMethod(req.OrderData.PaymentMethod),
	}
}

func StatusHistoryEntityToJSON(history []entities.StatusEntry) []StatusEntry {
	res := make([]StatusEntry, 0, len(history))
	for _, e := range history {
		res = append(res, StatusEntry{
			Status:    string(e.Status),
			ChangedAt: e.ChangedAt,
			Note:      e.Note,
			UpdatedBy: e.UpdatedBy,
		})
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			Product:    it.ProductID,
			Title:      it.ProductTitle,
			Seller:     it.SellerID,
			SellerName: it.SellerName,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Buyer: Contact{
			ID:    o.BuyerID,
			Name:  o.Buyer.Name,
			Email: o.Buyer.Email,
		},
		Items:           items,
		TotalItems:      o.TotalItems(),
		Status:          string(o.Status),
		StatusHistory:   StatusHistoryEntityToJSON(o.StatusHistory),
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		BillingAddress:  AddressEntityToJSON(o.BillingAddress),
		Pricing: Pricing{
			Subtotal: o.Pricing.Subtotal,
			Tax:      o.Pricing.Tax,
			Shipping: o.Pricing.Shipping,
			Discount: o.Pricing.Discount,
			Total:    o.Pricing.Total,
		},
		Payment: Payment{
			Method:        string(o.Payment.Method),
			Status:        string(o.Payment.Status),
			TransactionID: o.Payment.TransactionID,
			PaidAt:        o.Payment.PaidAt,
		},
		PlacedAt:    o.PlacedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		CancelledAt: o.CancelledAt,
		ReturnedAt:  o.ReturnedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func TrackingEntityToJSON(t entities.Tracking) Tracking {
	items := make([]TrackingItem, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TrackingItem{
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
			Seller:   it.Seller,
		})
	}

	return Tracking{
		OrderID:       t.OrderID,
		OrderNumber:   t.OrderNumber,
		Status:        string(t.Status),
		StatusHistory: StatusHistoryEntityToJSON(t.StatusHistory),
		PlacedAt:      t.PlacedAt,
		ShippedAt:     t.ShippedAt,
		DeliveredAt:   t.DeliveredAt,
		CancelledAt:   t.CancelledAt,
		ReturnedAt:    t.ReturnedAt,
		Buyer: Contact{
			Name:  t.Buyer.Name,
			Email: t.Buyer.Email,
		},
		Items: items,
	}
}

func GatewayOrderEntityToJSON(o entities.GatewayOrder) GatewayOrder {
	return GatewayOrder{
		ID:       o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
		Receipt:  o.Receipt,
	}
}
