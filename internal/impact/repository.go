package impact

import (
	"context"
	"database/sql"
)

type repository struct {
	db *sql.DB
}

// NewRepository returns the scanning StatsSource: a single aggregate query
// over orders, line items and their referenced products.
func NewRepository(db *sql.DB) StatsSource {
	return &repository{db: db}
}

func (r *repository) OrderTotals(ctx context.Context) (int, float64, error) {
	var totalOrders int
	var totalOffset float64

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT o.id),
		       COALESCE(SUM(p.carbon_footprint * oi.quantity), 0)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN products p ON p.id = oi.product_id`,
	).Scan(&totalOrders, &totalOffset)
	if err != nil {
		return 0, 0, err
	}

	return totalOrders, totalOffset, nil
}
