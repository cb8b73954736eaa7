package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, c entities.Checkout) (entities.Order, bool, error)
	UpdateStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.Status, note string) (entities.Order, error)
	TrackOrder(ctx context.Context, requester entities.Identity, orderID string) (entities.Tracking, error)
	BuyerOrders(ctx context.Context, buyerID string) ([]entities.Order, error)
	SellerOrders(ctx context.Context, sellerID string) ([]entities.Order, error)
}

type PaymentService interface {
	CreateGatewayOrder(ctx context.Context, amount decimal.Decimal) (entities.GatewayOrder, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	payments PaymentService

	// exposeErrors добавляет текст внутренней ошибки в ответ 500
	exposeErrors bool
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, payments PaymentService, exposeErrors bool) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &HTTPHandler{
		logger:       logger.With(slog.String("handler", "http")),
		validate:     validate,
		orders:       orders,
		payments:     payments,
		exposeErrors: exposeErrors,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	buyer := middleware.RequireRole(entities.RoleBuyer)
	seller := middleware.RequireRole(entities.RoleSeller)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.With(buyer).Post("/payments/orders", instrument("create_gateway_order", h.CreateGatewayOrder))
		r.With(buyer).Post("/orders", instrument("place_order", h.PlaceOrder))
		r.With(buyer).Get("/orders/mine", instrument("buyer_orders", h.BuyerOrders))
		r.With(seller).Get("/orders/seller", instrument("seller_orders", h.SellerOrders))
		r.With(seller).Patch("/orders/{order_id}/status", instrument("update_status", h.UpdateStatus))
		r.With(middleware.RequireRole(entities.RoleBuyer, entities.RoleSeller)).
			Get("/orders/{order_id}/track", instrument("track_order", h.TrackOrder))
	})
}

// CreateGatewayOrder создаёт заказ в платёжном шлюзе.
// @Summary      Создать заказ в платёжном шлюзе
// @Description  Регистрирует сумму к оплате, клиент использует ответ для оплаты через SDK шлюза
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID покупателя"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(buyer)
// @Param        request  body      CreateGatewayOrderRequest  true  "Сумма"
// @Success      200  {object}  GatewayOrder
// @Failure      400  {object}  utils.ErrorResponse "Некорректная сумма"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payments/orders [post]
func (h *HTTPHandler) CreateGatewayOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateGatewayOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.payments.CreateGatewayOrder(r.Context(), req.Amount)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create gateway order")
		return
	}

	utils.WriteJSON(w, GatewayOrderEntityToJSON(order), http.StatusOK)
}

// PlaceOrder проверяет подпись оплаты и оформляет заказ.
// @Summary      Оформить оплаченный заказ
// @Description  Проверяет подпись платёжного шлюза, пересчитывает цены по каталогу и сохраняет заказ. Повторный запрос с тем же платежом возвращает существующий заказ.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID покупателя"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(buyer)
// @Param        request  body      PlaceOrderRequest  true  "Подтверждение оплаты и корзина"
// @Success      201  {object}  Order "Заказ создан"
// @Success      200  {object}  Order "Заказ уже был создан этим платежом"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или проверки оплаты"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Товар или покупатель не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buyer, _ := middleware.IdentityFromContext(ctx)

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, created, err := h.orders.PlaceOrder(ctx, PlaceOrderJSONToEntity(buyer, req))
	if err != nil {
		if errors.Is(err, entities.ErrInvalidSignature) {
			paymentVerificationFailures.Inc()
		}
		h.writeServiceError(w, r, err, "failed to place order")
		return
	}

	if !created {
		orderReplays.Inc()
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// BuyerOrders возвращает заказы покупателя.
// @Summary      Мои заказы
// @Description  Заказы текущего покупателя, новые первыми
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID покупателя"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(buyer)
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/mine [get]
func (h *HTTPHandler) BuyerOrders(w http.ResponseWriter, r *http.Request) {
	buyer, _ := middleware.IdentityFromContext(r.Context())

	orders, err := h.orders.BuyerOrders(r.Context(), buyer.ID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get buyer orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// SellerOrders возвращает заказы, в которых есть товары продавца.
// @Summary      Заказы продавца
// @Description  Заказы, содержащие хотя бы один товар текущего продавца, новые первыми
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID продавца"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(seller)
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/seller [get]
func (h *HTTPHandler) SellerOrders(w http.ResponseWriter, r *http.Request) {
	seller, _ := middleware.IdentityFromContext(r.Context())

	orders, err := h.orders.SellerOrders(r.Context(), seller.ID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get seller orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateStatus переводит заказ в новый статус.
// @Summary      Обновить статус заказа
// @Description  Продавец, чей товар есть в заказе, переводит заказ по допустимому переходу
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID продавца"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(seller)
// @Param        order_id  path      string               true  "ID заказа"
// @Param        request   body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или недопустимый переход"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Заказ не содержит товаров продавца"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, _ := middleware.IdentityFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, actor, orderID, entities.Status(req.Status), req.Note)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update order status")
		return
	}

	statusTransitions.WithLabelValues(req.Status).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// TrackOrder возвращает статус и историю заказа.
// @Summary      Отследить заказ
// @Description  Доступно покупателю заказа и продавцам, чьи товары в нём есть
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  string  true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"  Enums(buyer, seller)
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200  {object}  Tracking
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/track [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requester, _ := middleware.IdentityFromContext(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	tracking, err := h.orders.TrackOrder(ctx, requester, orderID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to track order")
		return
	}

	utils.WriteJSON(w, TrackingEntityToJSON(tracking), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidSignature):
		utils.WriteError(w, entities.ErrInvalidSignature.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidData):
		// текст ошибки postgres клиенту не отдаём
		h.logger.WarnContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, entities.ErrInvalidData.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrConcurrentUpdate):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		if h.exposeErrors {
			utils.WriteErrorDetail(w, "internal server error", err, http.StatusInternalServerError)
			return
		}
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		orderRequestsInProgress.Inc()
		defer orderRequestsInProgress.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		orderRequestTotal.WithLabelValues(operation, strconv.Itoa(rec.status)).Inc()
		orderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
