package product

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

var productCols = []string{
	"id", "seller_id", "seller_name", "name", "description", "price",
	"category", "image", "materials", "eco_certifications",
	"carbon_footprint", "production_process", "stock", "created_at",
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(productCols).
			AddRow("p1", 2, "Sam", "Organic Tee", "Soft tee", 25.0,
				"Men", "img.jpg", "Organic Cotton", pq.Array([]string{"GOTS"}),
				4.5, nil, 50, time.Now()).
			AddRow("p2", 2, "Sam", "Denim Jacket", "Recycled denim", 85.0,
				"Men", "img2.jpg", "Recycled Denim", pq.Array([]string{}),
				12.0, nil, 30, time.Now())

		mock.ExpectQuery(`SELECT .* FROM products p\s+JOIN users u`).
			WillReturnRows(rows)

		products, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		if assert.Len(t, products, 2) {
			assert.Equal(t, "Sam", products[0].SellerName)
			assert.Equal(t, []string{"GOTS"}, products[0].EcoCertifications)
		}
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .*`).WillReturnError(errors.New("db error"))
		_, err = repo.GetAll(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		process := "small batch dyeing"
		rows := sqlmock.NewRows(productCols).
			AddRow("p1", 2, "Sam", "Organic Tee", "Soft tee", 25.0,
				"Men", "img.jpg", "Organic Cotton", pq.Array([]string{"GOTS", "Fair Trade"}),
				4.5, process, 50, time.Now())

		mock.ExpectQuery(`SELECT .* FROM products p\s+JOIN users u .* WHERE p.id = \$1`).
			WithArgs("p1").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "p1")
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, []string{"GOTS", "Fair Trade"}, p.EcoCertifications)
		require.NotNil(t, p.ProductionProcess)
		assert.Equal(t, process, *p.ProductionProcess)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* WHERE p.id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(productCols))

		p, err := repo.GetByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(productCols).
		AddRow("generated-id", 2, "Sam", "Organic Tee", "Soft tee", 25.0,
			"Men", "img.jpg", "Organic Cotton", pq.Array([]string{}),
			4.5, nil, 50, time.Now())
	mock.ExpectQuery(`SELECT .* WHERE p.id = \$1`).WillReturnRows(rows)

	p, err := repo.Create(ctx, NewProductInput{
		Name:            "Organic Tee",
		Description:     "Soft tee",
		Price:           25,
		Category:        "Men",
		Image:           "img.jpg",
		Materials:       "Organic Cotton",
		CarbonFootprint: 4.5,
		Stock:           50,
	}, 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, p.SellerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
