package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateGatewayOrder(t *testing.T) {
	gatewayErr := errors.New("gateway unavailable")

	testCases := []struct {
		name         string
		amount       decimal.Decimal
		mockBehavior func(g *mocks.MockGateway)
		wantErr      error
	}{
		{
			name:   "OK",
			amount: decimal.RequireFromString("1049.50"),
			mockBehavior: func(g *mocks.MockGateway) {
				g.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.RequireFromString("1049.50"))
				})).Return(entities.GatewayOrder{ID: "order_1", Amount: 104950, Currency: "INR", Receipt: "rcpt_1"}, nil).Once()
			},
		},
		{
			name:         "zero amount",
			amount:       decimal.Zero,
			mockBehavior: func(g *mocks.MockGateway) {},
			wantErr:      entities.ErrInvalidAmount,
		},
		{
			name:         "negative amount",
			amount:       decimal.NewFromInt(-5),
			mockBehavior: func(g *mocks.MockGateway) {},
			wantErr:      entities.ErrInvalidAmount,
		},
		{
			name:   "gateway error",
			amount: decimal.NewFromInt(10),
			mockBehavior: func(g *mocks.MockGateway) {
				g.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.GatewayOrder{}, gatewayErr).Once()
			},
			wantErr: gatewayErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := mocks.NewMockGateway(t)
			tc.mockBehavior(gateway)

			svc := service.NewPaymentService(newLogger(), gateway)

			got, err := svc.CreateGatewayOrder(context.Background(), tc.amount)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "order_1", got.ID)
			assert.Equal(t, int64(104950), got.Amount)
		})
	}
}
