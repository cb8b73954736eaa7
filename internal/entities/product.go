package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID       string
	SellerID string
	Title    string
	Price    decimal.Decimal
	Stock    int
}

// LineItemRequest is a line item as submitted by the buyer, before it is resolved
// against the catalog.
type LineItemRequest struct {
	ProductID string
	Quantity  int
}

// Checkout is a confirmed gateway payment together with the cart it paid for.
type Checkout struct {
	Buyer Identity

	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string

	Items           []LineItemRequest
	ShippingAddress Address
	BillingAddress  Address
	PaymentMethod   PaymentMethod
}
