package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street      string
	City        string
	State       string
	Country     string
	PinCode     string
	PhoneNumber string
}

// MaxItemQuantity bounds a single line item.
const MaxItemQuantity = 1000

type Item struct {
	ProductID string
	SellerID  string
	Quantity  int
	// Price is the unit price captured when the order was placed.
	Price decimal.Decimal

	// Populated on reads only.
	ProductTitle string
	SellerName   string
}

func (i Item) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Pricing struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// CalculatePricing computes subtotal as the sum of price*quantity and
// total as subtotal + tax + shipping - discount.
func CalculatePricing(items []Item, tax, shipping, discount decimal.Decimal) Pricing {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
	}
	return Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}

type Payment struct {
	Method         PaymentMethod
	Status         PaymentStatus
	TransactionID  string
	GatewayOrderID string
	PaidAt         *time.Time
}

type StatusEntry struct {
	Status    Status
	ChangedAt time.Time
	Note      string
	UpdatedBy string
}

type Order struct {
	ID          string
	OrderNumber string
	BuyerID     string
	// Populated on reads only.
	Buyer Contact

	Items           []Item
	Status          Status
	StatusHistory   []StatusEntry
	ShippingAddress Address
	BillingAddress  Address
	Pricing         Pricing
	Payment         Payment

	PlacedAt    time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	ReturnedAt  *time.Time

	Version int
}

const initialStatusNote = "Order created"

// NewOrder builds a pending order with its first history entry.
func NewOrder(id, buyerID string, items []Item, shipping, billing Address, payment Payment, pricing Pricing, now time.Time) Order {
	return Order{
		ID:              id,
		BuyerID:         buyerID,
		Items:           items,
		Status:          StatusPending,
		StatusHistory:   []StatusEntry{{Status: StatusPending, ChangedAt: now, Note: initialStatusNote}},
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Pricing:         pricing,
		Payment:         payment,
		PlacedAt:        now,
		Version:         1,
	}
}

func FormatOrderNumber(placedAt time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%d-%04d", placedAt.UnixMilli(), seq)
}

// UpdateStatus moves the order to next, appends a history entry and stamps the
// matching lifecycle timestamp. The order is left untouched on error.
func (o *Order) UpdateStatus(next Status, note, actorID string, now time.Time) (StatusEntry, error) {
	if !next.Valid() {
		return StatusEntry{}, ErrInvalidStatus
	}
	if !o.Status.CanTransitionTo(next) {
		return StatusEntry{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}

	entry := StatusEntry{Status: next, ChangedAt: now, Note: note, UpdatedBy: actorID}
	o.Status = next
	o.StatusHistory = append(o.StatusHistory, entry)

	ts := now
	switch next {
	case StatusShipped:
		o.ShippedAt = &ts
	case StatusDelivered:
		o.DeliveredAt = &ts
	case StatusCancelled:
		o.CancelledAt = &ts
	case StatusReturned:
		o.ReturnedAt = &ts
	}
	return entry, nil
}

func (o Order) HasSeller(userID string) bool {
	for _, it := range o.Items {
		if it.SellerID == userID {
			return true
		}
	}
	return false
}

// VisibleTo reports whether the user is the buyer or sells at least one item of the order.
func (o Order) VisibleTo(userID string) bool {
	return o.BuyerID == userID || o.HasSeller(userID)
}

func (o Order) TotalItems() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Item{})
	gob.Register(Payment{})
	gob.Register(Address{})
}
