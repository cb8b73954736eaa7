package entities

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrInvalidOrder      = errors.New("invalid order")
	ErrInvalidData       = errors.New("order data rejected by storage")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidSignature  = errors.New("payment verification failed")

	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConcurrentUpdate  = errors.New("order was modified concurrently")
	ErrDuplicatePayment  = errors.New("payment already used")
)
