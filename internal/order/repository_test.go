package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		o, err := repo.Create(ctx, 1, []NewOrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		}, 135)

		assert.NoError(t, err)
		assert.Equal(t, 1, o.BuyerID)
		assert.True(t, o.CarbonOffset)
		if assert.Len(t, o.Items, 2) {
			assert.Equal(t, "p1", o.Items[0].ProductID)
			assert.Equal(t, 2, o.Items[0].Quantity)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemInsertError_RollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err = repo.Create(ctx, 1, []NewOrderItem{{ProductID: "p1", Quantity: 1}}, 25)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByBuyer(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesProducts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, buyer_id, total_amount, carbon_offset, created_at\s+FROM orders`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "buyer_id", "total_amount", "carbon_offset", "created_at"}).
				AddRow("o1", 1, 50.0, true, time.Now()))

		mock.ExpectQuery(`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "order_id", "product_id", "quantity",
				"p_id", "seller_id", "seller_name", "p_name", "description", "price",
				"category", "image", "materials", "eco_certifications",
				"carbon_footprint", "production_process", "stock", "created_at",
			}).AddRow(
				1, "o1", "p1", 2,
				"p1", 2, "Sam", "Organic Tee", "Soft tee", 25.0,
				"Men", "img.jpg", "Organic Cotton", pq.Array([]string{"GOTS"}),
				4.5, nil, 50, time.Now(),
			))

		orders, err := repo.ListByBuyer(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, orders, 1)
		require.Len(t, orders[0].Items, 1)

		item := orders[0].Items[0]
		assert.Equal(t, 2, item.Quantity)
		require.NotNil(t, item.Product)
		assert.Equal(t, "Organic Tee", item.Product.Name)
		assert.Equal(t, "Sam", item.Product.SellerName)
	})

	t.Run("NoOrders", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, buyer_id`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "buyer_id", "total_amount", "carbon_offset", "created_at"}))

		orders, err := repo.ListByBuyer(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})
}
