package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayOrder, error)
}

type paymentService struct {
	logger  *slog.Logger
	gateway Gateway
}

func NewPaymentService(logger *slog.Logger, gateway Gateway) *paymentService {
	return &paymentService{
		logger:  logger.With(slog.String("service", "payment")),
		gateway: gateway,
	}
}

// CreateGatewayOrder registers the checkout amount with the gateway so the client
// SDK can collect the payment.
func (s *paymentService) CreateGatewayOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayOrder, error) {
	if !amount.IsPositive() {
		return entities.GatewayOrder{}, entities.ErrInvalidAmount
	}

	order, err := s.gateway.CreateOrder(ctx, amount)
	if err != nil {
		return entities.GatewayOrder{}, err
	}

	s.logger.Debug("gateway order created", slog.String("gateway_order_id", order.ID), slog.Int64("amount", order.Amount))
	return order, nil
}
