package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) NextOrderSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &seq, "SELECT nextval('order_number_seq')"); err != nil {
		return 0, dbError("failed to get order sequence", err)
	}
	return seq, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_number", "buyer_id", "status",
			"subtotal", "tax", "shipping_fee", "discount", "total",
			"placed_at", "shipped_at", "delivered_at", "cancelled_at", "returned_at", "version",
		).
		Values(
			o.ID, o.OrderNumber, o.BuyerID, string(o.Status),
			o.Pricing.Subtotal, o.Pricing.Tax, o.Pricing.Shipping, o.Pricing.Discount, o.Pricing.Total,
			o.PlacedAt, nullTime(o.ShippedAt), nullTime(o.DeliveredAt), nullTime(o.CancelledAt), nullTime(o.ReturnedAt), o.Version,
		).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return dbError("failed to save order", err)
	}
	return nil
}

func (r *postgresRepo) SaveAddresses(ctx context.Context, orderID string, shipping, billing entities.Address) error {
	q := r.qb.Insert("order_addresses").
		Columns("order_id", "kind", "street", "city", "state", "country", "pin_code", "phone_number")

	q = addressValues(q, orderID, addressShipping, shipping)
	q = addressValues(q, orderID, addressBilling, billing)

	query, args := q.MustSql()
	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return dbError("failed to save addresses", err)
	}
	return nil
}

func addressValues(q sq.InsertBuilder, orderID, kind string, a entities.Address) sq.InsertBuilder {
	return q.Values(orderID, kind,
		nullString(a.Street),
		nullString(a.City),
		nullString(a.State),
		nullString(a.Country),
		nullString(a.PinCode),
		nullString(a.PhoneNumber),
	)
}

func (r *postgresRepo) SavePayment(ctx context.Context, orderID string, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns("order_id", "method", "status", "transaction_id", "gateway_order_id", "paid_at").
		Values(orderID, string(p.Method), string(p.Status),
			nullString(p.TransactionID), nullString(p.GatewayOrderID), nullTime(p.PaidAt)).
		MustSql()

	_, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if isDuplicatePayment(err) {
		return entities.ErrDuplicatePayment
	}
	if err != nil {
		return dbError("failed to save payment", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "seller_id", "quantity", "price")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.SellerID, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return dbError("failed to save items", err)
	}
	return nil
}

func (r *postgresRepo) AppendStatus(ctx context.Context, orderID string, e entities.StatusEntry) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "status", "changed_at", "note", "updated_by").
		Values(orderID, string(e.Status), e.ChangedAt, nullString(e.Note), nullString(e.UpdatedBy)).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return dbError("failed to append status", err)
	}
	return nil
}

// UpdateStatus writes status and lifecycle timestamps if the stored version still
// equals o.Version, and bumps the version.
func (r *postgresRepo) UpdateStatus(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("shipped_at", nullTime(o.ShippedAt)).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Set("cancelled_at", nullTime(o.CancelledAt)).
		Set("returned_at", nullTime(o.ReturnedAt)).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": o.ID, "version": o.Version}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return dbError("failed to update status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("failed to update status", err)
	}
	if n == 0 {
		return entities.ErrConcurrentUpdate
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	orders, err := r.loadOrders(ctx, sq.Eq{"o.id": orderID}, 1)
	if err != nil {
		return entities.Order{}, err
	}
	if len(orders) == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *postgresRepo) GetOrderByTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	where := sq.Expr("o.id = (SELECT order_id FROM payments WHERE transaction_id = ?)", transactionID)
	orders, err := r.loadOrders(ctx, where, 1)
	if err != nil {
		return entities.Order{}, err
	}
	if len(orders) == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *postgresRepo) BuyerOrders(ctx context.Context, buyerID string) ([]entities.Order, error) {
	return r.loadOrders(ctx, sq.Eq{"o.buyer_id": buyerID}, 0)
}

func (r *postgresRepo) SellerOrders(ctx context.Context, sellerID string) ([]entities.Order, error) {
	where := sq.Expr("o.id IN (SELECT order_id FROM order_items WHERE seller_id = ?)", sellerID)
	return r.loadOrders(ctx, where, 0)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.loadOrders(ctx, nil, uint64(count))
}

// loadOrders selects orders matching where, newest first, and assembles them with
// their addresses, payments, items and status history. A zero limit means no limit.
func (r *postgresRepo) loadOrders(ctx context.Context, where sq.Sqlizer, limit uint64) ([]entities.Order, error) {
	q := r.qb.Select(
		"o.id", "o.order_number", "o.buyer_id", "u.name AS buyer_name", "u.email AS buyer_email",
		"o.status", "o.subtotal", "o.tax", "o.shipping_fee", "o.discount", "o.total",
		"o.placed_at", "o.shipped_at", "o.delivered_at", "o.cancelled_at", "o.returned_at", "o.version").
		From("orders o").
		LeftJoin("users u ON u.id = o.buyer_id").
		OrderBy("o.placed_at DESC")
	if where != nil {
		q = q.Where(where)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args := q.MustSql()

	conn := trm.Conn(ctx, r.db)

	var orders []Order
	if err := conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, dbError("failed to select orders", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Адреса
	query, args = r.qb.Select(
		"order_id", "kind", "street", "city", "state", "country", "pin_code", "phone_number").
		From("order_addresses").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var addresses []Address
	if err := conn.SelectContext(ctx, &addresses, query, args...); err != nil {
		return nil, dbError("failed to select addresses", err)
	}
	addressMap := make(map[string][]Address, len(ids))
	for _, a := range addresses {
		addressMap[a.OrderID] = append(addressMap[a.OrderID], a)
	}

	// Платежи
	query, args = r.qb.Select(
		"order_id", "method", "status", "transaction_id", "gateway_order_id", "paid_at").
		From("payments").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var payments []Payment
	if err := conn.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, dbError("failed to select payments", err)
	}
	paymentMap := make(map[string]Payment, len(payments))
	for _, p := range payments {
		paymentMap[p.OrderID] = p
	}

	// Товары вместе с названием и продавцом
	query, args = r.qb.Select(
		"i.order_id", "i.position", "i.product_id", "i.seller_id", "i.quantity", "i.price",
		"p.title AS product_title", "s.name AS seller_name").
		From("order_items i").
		LeftJoin("products p ON p.id = i.product_id").
		LeftJoin("users s ON s.id = i.seller_id").
		Where(sq.Eq{"i.order_id": ids}).
		OrderBy("i.order_id", "i.position").
		MustSql()

	var items []Item
	if err := conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, dbError("failed to select items", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	// История статусов
	query, args = r.qb.Select("order_id", "status", "changed_at", "note", "updated_by").
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "id").
		MustSql()

	var history []StatusEntry
	if err := conn.SelectContext(ctx, &history, query, args...); err != nil {
		return nil, dbError("failed to select status history", err)
	}
	historyMap := make(map[string][]StatusEntry, len(ids))
	for _, e := range history {
		historyMap[e.OrderID] = append(historyMap[e.OrderID], e)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, addressMap[o.ID], paymentMap[o.ID], itemsMap[o.ID], historyMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("id", "seller_id", "title", "price", "stock").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := trm.Conn(ctx, r.db).GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, dbError("failed to get product", err)
	}
	return ProductToEntity(product), nil
}

// ReserveStock decrements stock only when enough units are left.
func (r *postgresRepo) ReserveStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return dbError("failed to reserve stock", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError("failed to reserve stock", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, productID)
	}
	return nil
}

func (r *postgresRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select("id", "name", "email", "role").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := trm.Conn(ctx, r.db).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, dbError("failed to get user", err)
	}
	return UserToEntity(user), nil
}
