package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	NextOrderSequence(ctx context.Context) (int64, error)
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveAddresses(ctx context.Context, orderID string, shipping, billing entities.Address) error
	// Возвращает entities.ErrDuplicatePayment, если transaction id уже использован
	SavePayment(ctx context.Context, orderID string, p entities.Payment) error
	SaveItems(ctx context.Context, orderID string, items []entities.Item) error
	AppendStatus(ctx context.Context, orderID string, e entities.StatusEntry) error
	UpdateStatus(ctx context.Context, o entities.Order) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID string) (entities.Order, error)
	BuyerOrders(ctx context.Context, buyerID string) ([]entities.Order, error)
	SellerOrders(ctx context.Context, sellerID string) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	ReserveStock(ctx context.Context, productID string, quantity int) error
}

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

type PaymentVerifier interface {
	Verify(gatewayOrderID, gatewayPaymentID, signature string) error
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, e entities.OrderPlacedEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Deps struct {
	TxManager trm.Manager
	Orders    OrderRepo
	Products  ProductRepo
	Users     UserRepo
	Verifier  PaymentVerifier
	Publisher Publisher
	Cache     Cache
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductRepo
	users     UserRepo
	verifier  PaymentVerifier
	publisher Publisher
	cache     Cache
	pricing   config.Pricing
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, deps Deps, pricing config.Pricing) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: deps.TxManager,
		orders:    deps.Orders,
		products:  deps.Products,
		users:     deps.Users,
		verifier:  deps.Verifier,
		publisher: deps.Publisher,
		cache:     deps.Cache,
		pricing:   pricing,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// permanentErrors are never retried.
var permanentErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrProductNotFound,
	entities.ErrUserNotFound,
	entities.ErrInvalidData,
	entities.ErrInsufficientStock,
	entities.ErrDuplicatePayment,
	entities.ErrConcurrentUpdate,
}

// PlaceOrder verifies the gateway signature and persists the order built from the
// checkout. The second result is false when the payment was already turned into an
// order, in which case that order is returned.
func (s *orderService) PlaceOrder(ctx context.Context, c entities.Checkout) (entities.Order, bool, error) {
	if err := s.verifier.Verify(c.GatewayOrderID, c.GatewayPaymentID, c.GatewaySignature); err != nil {
		return entities.Order{}, false, err
	}

	if len(c.Items) == 0 {
		return entities.Order{}, false, entities.ErrEmptyOrder
	}
	for _, it := range c.Items {
		if it.Quantity <= 0 || it.Quantity > entities.MaxItemQuantity {
			return entities.Order{}, false, fmt.Errorf("%w: product %s", entities.ErrInvalidQuantity, it.ProductID)
		}
	}

	existing, err := s.orders.GetOrderByTransactionID(ctx, c.GatewayPaymentID)
	if err == nil {
		return s.replay(existing, c.Buyer)
	}
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, false, fmt.Errorf("failed to check payment: %w", err)
	}

	buyer, err := s.users.GetUserByID(ctx, c.Buyer.ID)
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("failed to resolve buyer: %w", err)
	}

	items, err := s.resolveItems(ctx, c.Items)
	if err != nil {
		return entities.Order{}, false, err
	}

	now := s.now()
	subtotal := entities.CalculatePricing(items, decimal.Zero, decimal.Zero, decimal.Zero).Subtotal
	tax := subtotal.Mul(s.pricing.TaxRate).Round(2)
	pricing := entities.CalculatePricing(items, tax, s.pricing.ShippingFee, decimal.Zero)

	payment := entities.Payment{
		Method:         c.PaymentMethod,
		Status:         entities.PaymentPaid,
		TransactionID:  c.GatewayPaymentID,
		GatewayOrderID: c.GatewayOrderID,
		PaidAt:         &now,
	}

	order := entities.NewOrder(uuid.NewString(), c.Buyer.ID, items, c.ShippingAddress, c.BillingAddress, payment, pricing, now)

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.saveOrder(ctx, &order)
		})
	}

	err = utils.Retry(ctx, s.retry, fn, permanentErrors...)
	if errors.Is(err, entities.ErrDuplicatePayment) {
		existing, getErr := s.orders.GetOrderByTransactionID(ctx, c.GatewayPaymentID)
		if getErr != nil {
			return entities.Order{}, false, fmt.Errorf("failed to get order for duplicate payment: %w", getErr)
		}
		return s.replay(existing, c.Buyer)
	}
	if err != nil {
		return entities.Order{}, false, err
	}

	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("buyer_id", order.BuyerID),
	)

	s.notifyPlaced(ctx, order, buyer)
	return order, true, nil
}

func (s *orderService) saveOrder(ctx context.Context, order *entities.Order) error {
	seq, err := s.orders.NextOrderSequence(ctx)
	if err != nil {
		return err
	}
	order.OrderNumber = entities.FormatOrderNumber(order.PlacedAt, seq)

	if err := s.orders.SaveOrder(ctx, *order); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if err := s.orders.SaveAddresses(ctx, order.ID, order.ShippingAddress, order.BillingAddress); err != nil {
		return fmt.Errorf("failed to save addresses: %w", err)
	}
	if err := s.orders.SavePayment(ctx, order.ID, order.Payment); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	if err := s.orders.SaveItems(ctx, order.ID, order.Items); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	for _, it := range reservationOrder(order.Items) {
		if err := s.products.ReserveStock(ctx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	for _, e := range order.StatusHistory {
		if err := s.orders.AppendStatus(ctx, order.ID, e); err != nil {
			return fmt.Errorf("failed to save status history: %w", err)
		}
	}
	return nil
}

// reservationOrder sorts a copy of items by product so concurrent orders lock
// product rows in the same order.
func reservationOrder(items []entities.Item) []entities.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b entities.Item) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return sorted
}

func (s *orderService) replay(existing entities.Order, buyer entities.Identity) (entities.Order, bool, error) {
	if existing.BuyerID != buyer.ID {
		s.logger.Warn("payment reused by another buyer",
			slog.String("order_id", existing.ID),
			slog.String("buyer_id", buyer.ID),
		)
		return entities.Order{}, false, entities.ErrForbidden
	}
	s.logger.Info("payment already used, returning existing order", slog.String("order_id", existing.ID))
	return existing, false, nil
}

// resolveItems looks products up concurrently and snapshots their current price and
// seller. Any failed lookup fails the whole batch.
func (s *orderService) resolveItems(ctx context.Context, requested []entities.LineItemRequest) ([]entities.Item, error) {
	items := make([]entities.Item, len(requested))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requested {
		i, req := i, req
		g.Go(func() error {
			product, err := s.products.GetProductByID(gctx, req.ProductID)
			if err != nil {
				return fmt.Errorf("failed to resolve product %s: %w", req.ProductID, err)
			}
			items[i] = entities.Item{
				ProductID:    product.ID,
				SellerID:     product.SellerID,
				Quantity:     req.Quantity,
				Price:        product.Price,
				ProductTitle: product.Title,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// notifyPlaced publishes the confirmation event. Failures are logged only.
func (s *orderService) notifyPlaced(ctx context.Context, order entities.Order, user entities.User) {
	event := entities.OrderPlacedEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BuyerName:   user.Name,
		BuyerEmail:  user.Email,
		Items:       order.Tracking().Items,
		Total:       order.Pricing.Total,
		PlacedAt:    order.PlacedAt,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("failed to publish order placed event", slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

// UpdateStatus applies a seller's status change to the order.
func (s *orderService) UpdateStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.Status, note string) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if actor.Role != entities.RoleSeller || !order.HasSeller(actor.ID) {
		return entities.Order{}, entities.ErrForbidden
	}

	entry, err := order.UpdateStatus(status, note, actor.ID, s.now())
	if err != nil {
		return entities.Order{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateStatus(ctx, order); err != nil {
			return err
		}
		return s.orders.AppendStatus(ctx, order.ID, entry)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update status: %w", err)
	}
	order.Version++

	s.cacheOrder(order)
	s.logger.Info("order status updated",
		slog.String("order_id", order.ID),
		slog.String("status", string(status)),
		slog.String("updated_by", actor.ID),
	)
	return order, nil
}

// TrackOrder returns the tracking view to the buyer or to a seller of the order.
func (s *orderService) TrackOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.Tracking, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Tracking{}, err
	}
	if !order.VisibleTo(requester.ID) {
		return entities.Tracking{}, entities.ErrForbidden
	}
	return order.Tracking(), nil
}

func (s *orderService) BuyerOrders(ctx context.Context, buyerID string) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.orders.BuyerOrders(ctx, buyerID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) SellerOrders(ctx context.Context, sellerID string) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.orders.SellerOrders(ctx, sellerID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID reads through the cache.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(cacheKey(orderID)); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(cacheKey(order.ID), data)
}

// WarmUpCache loads the latest count orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, o := range orders {
		s.cacheOrder(o)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func cacheKey(orderID string) string {
	return "order:" + orderID
}
