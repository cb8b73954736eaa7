package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/shopspring/decimal"
)

var minorUnits = decimal.NewFromInt(100)

var errGatewayRejected = errors.New("gateway rejected request")

// Gateway talks to the payment gateway's orders API.
type Gateway struct {
	client   *http.Client
	baseURL  string
	keyID    string
	secret   string
	currency string
	retry    utils.RetryConfig
}

func NewGateway(cfg config.Payment) *Gateway {
	return &Gateway{
		client:   &http.Client{Timeout: cfg.Timeout},
		baseURL:  cfg.BaseURL,
		keyID:    cfg.KeyID,
		secret:   cfg.Secret,
		currency: cfg.Currency,
		retry: utils.RetryConfig{
			InitialDelay: 200 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder registers amount (in major units) with the gateway.
func (g *Gateway) CreateOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayOrder, error) {
	// суммы меньше половины минимальной единицы округляются в ноль
	minor := amount.Mul(minorUnits).Round(0).IntPart()
	if !amount.IsPositive() || minor <= 0 {
		return entities.GatewayOrder{}, entities.ErrInvalidAmount
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   minor,
		Currency: g.currency,
		Receipt:  "rcpt_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
	})
	if err != nil {
		return entities.GatewayOrder{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	var res createOrderResponse
	fn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(g.keyID, g.secret)

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("gateway request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("%w: status %d", errGatewayRejected, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("gateway responded with status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&res)
	}

	if err := utils.Retry(ctx, g.retry, fn, errGatewayRejected); err != nil {
		return entities.GatewayOrder{}, err
	}

	return entities.GatewayOrder{
		ID:       res.ID,
		Amount:   res.Amount,
		Currency: res.Currency,
		Receipt:  res.Receipt,
	}, nil
}
