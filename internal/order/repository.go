package order

import (
	"context"
	"database/sql"

	"ecowear-be/internal/logger"
	"ecowear-be/internal/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// Create persists the order with its line items verbatim. There is no
	// stock decrement and no price re-verification against the catalog.
	Create(ctx context.Context, buyerID int, items []NewOrderItem, totalAmount float64) (Order, error)
	ListByBuyer(ctx context.Context, buyerID int) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, buyerID int, items []NewOrderItem, totalAmount float64) (Order, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	o := Order{
		ID:           uuid.NewString(),
		BuyerID:      buyerID,
		TotalAmount:  totalAmount,
		CarbonOffset: true,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, buyer_id, total_amount, carbon_offset)
		VALUES ($1, $2, $3, TRUE)
		RETURNING created_at`,
		o.ID, buyerID, totalAmount,
	).Scan(&o.CreatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Int("buyer_id", buyerID), zap.Error(err))
		return Order{}, err
	}

	for _, item := range items {
		var oi OrderItem
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id`,
			o.ID, item.ProductID, item.Quantity,
		).Scan(&oi.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.String("order_id", o.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return Order{}, err
		}
		oi.OrderID = o.ID
		oi.ProductID = item.ProductID
		oi.Quantity = item.Quantity
		o.Items = append(o.Items, oi)
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	return o, nil
}

func (r *repository) ListByBuyer(ctx context.Context, buyerID int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, buyer_id, total_amount, carbon_offset, created_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC, id`,
		buyerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	var ids []string
	byID := make(map[string]*Order)

	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.TotalAmount, &o.CarbonOffset, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	for i := range orders {
		byID[orders[i].ID] = &orders[i]
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity,
		       p.id, p.seller_id, u.name, p.name, p.description, p.price,
		       p.category, p.image, p.materials, p.eco_certifications,
		       p.carbon_footprint, p.production_process, p.stock, p.created_at
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN users u ON u.id = p.seller_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`,
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var oi OrderItem
		var p product.Product
		if err := itemRows.Scan(
			&oi.ID, &oi.OrderID, &oi.ProductID, &oi.Quantity,
			&p.ID, &p.SellerID, &p.SellerName, &p.Name, &p.Description, &p.Price,
			&p.Category, &p.Image, &p.Materials, pq.Array(&p.EcoCertifications),
			&p.CarbonFootprint, &p.ProductionProcess, &p.Stock, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		oi.Product = &p
		if o, ok := byID[oi.OrderID]; ok {
			o.Items = append(o.Items, oi)
		}
	}

	return orders, itemRows.Err()
}
