package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodhub/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, restaurantID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)", restaurantID).
		Scan(&exists)
	return exists, err
}

// MenuItemsByID returns the items found among ids regardless of which
// restaurant owns them. Missing ids are simply absent from the result.
func (r *PostgresRepository) MenuItemsByID(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, unit_price, COALESCE(description, '')
		FROM menu_items
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.UnitPrice, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UserRole(ctx context.Context, userID int64) (string, error) {
	var role string
	err := r.DB.QueryRowContext(ctx, "SELECT role FROM users WHERE id = $1", userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrInvalidUser
	}
	return role, err
}

// CreateOrder writes the header and every line in one transaction and fills
// in the generated id and creation time.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return persistenceError("begin order", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, subtotal, platform_fee, commission, cgst, sgst, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, order.UserID, order.RestaurantID, order.Subtotal, order.PlatformFee,
		order.Commission, order.CGST, order.SGST, order.Status).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return persistenceError("insert order", err)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price_at_order_time)
			VALUES ($1, $2, $3, $4)
		`, order.ID, line.MenuItemID, line.Quantity, line.UnitPriceAtBuy); err != nil {
			return persistenceError("insert order item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistenceError("commit order", err)
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, r.name, o.subtotal, o.platform_fee, o.commission,
		       o.cgst, o.sgst, o.status, o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
		&order.Subtotal, &order.PlatformFee, &order.Commission, &order.CGST, &order.SGST,
		&order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	// Menu items may be removed after the order; the snapshot price stays.
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_id, COALESCE(m.name, ''), oi.quantity, oi.unit_price_at_order_time
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		line := domain.OrderLine{OrderID: order.ID}
		if err := rows.Scan(&line.MenuItemID, &line.Name, &line.Quantity, &line.UnitPriceAtBuy); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrderStatus locks the order row, refuses to leave the terminal
// state and records the transition in order_status_log.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.StatusChange, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistenceError("begin status update", err)
	}
	defer tx.Rollback()

	change := domain.StatusChange{OrderID: orderID, To: status}
	err = tx.QueryRowContext(ctx,
		"SELECT restaurant_id, status FROM orders WHERE id = $1 FOR UPDATE", orderID).
		Scan(&change.RestaurantID, &change.From)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, persistenceError("lock order", err)
	}
	if change.From.IsTerminal() {
		return nil, domain.ErrTerminalState
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2", status, orderID); err != nil {
		return nil, persistenceError("update status", err)
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO order_status_log (order_id, from_status, to_status)
		VALUES ($1, $2, $3)
		RETURNING changed_at
	`, orderID, change.From, status).Scan(&change.ChangedAt); err != nil {
		return nil, persistenceError("log status", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistenceError("commit status", err)
	}
	return &change, nil
}
