package storage

import (
	"context"

	"foodhub/order-svc/internal/domain"

	"github.com/lib/pq"
)

const orderSummarySelect = `
	SELECT o.id, u.name, r.name, o.subtotal, o.status, o.created_at,
		COALESCE(
			array_agg(COALESCE(m.name, 'item #' || oi.menu_item_id) || ' x' || oi.quantity ORDER BY oi.id)
				FILTER (WHERE oi.id IS NOT NULL),
			'{}')
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN restaurants r ON r.id = o.restaurant_id
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN menu_items m ON m.id = oi.menu_item_id`

const orderSummaryGroup = `
	GROUP BY o.id, u.name, r.name
	ORDER BY o.created_at DESC, o.id DESC`

func (r *PostgresRepository) ListCustomerOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	return r.listOrderSummaries(ctx, orderSummarySelect+" WHERE o.user_id = $1"+orderSummaryGroup, userID)
}

func (r *PostgresRepository) ListRestaurantOrders(ctx context.Context, restaurantID int64) ([]domain.OrderSummary, error) {
	return r.listOrderSummaries(ctx, orderSummarySelect+" WHERE o.restaurant_id = $1"+orderSummaryGroup, restaurantID)
}

func (r *PostgresRepository) ListAllOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	return r.listOrderSummaries(ctx, orderSummarySelect+orderSummaryGroup)
}

func (r *PostgresRepository) listOrderSummaries(ctx context.Context, query string, args ...any) ([]domain.OrderSummary, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.OrderSummary{}
	for rows.Next() {
		var summary domain.OrderSummary
		if err := rows.Scan(&summary.ID, &summary.Customer, &summary.RestaurantName, &summary.Subtotal,
			&summary.Status, &summary.CreatedAt, pq.Array(&summary.Items)); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) RestaurantReport(ctx context.Context, restaurantID int64) (*domain.RestaurantReport, error) {
	report := domain.RestaurantReport{RestaurantID: restaurantID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(subtotal), 0), COALESCE(SUM(commission), 0)
		FROM orders
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&report.TotalOrders, &report.TotalRevenue, &report.TotalCommission)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *PostgresRepository) SystemReport(ctx context.Context) ([]domain.SystemReportRow, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.name, COUNT(o.id), COALESCE(SUM(o.subtotal), 0)
		FROM restaurants r
		LEFT JOIN orders o ON o.restaurant_id = r.id
		GROUP BY r.id, r.name
		ORDER BY 4 DESC, r.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []domain.SystemReportRow{}
	for rows.Next() {
		var row domain.SystemReportRow
		if err := rows.Scan(&row.RestaurantID, &row.RestaurantName, &row.TotalOrders, &row.TotalRevenue); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
