package impact

import (
	"context"
	"errors"
	"testing"

	"ecowear-be/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) OrderTotals(ctx context.Context) (int, float64, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(float64), args.Error(2)
}

func TestService_PlatformStats(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name        string
		orders      int
		offset      float64
		wantTrees   int
	}{
		{"ZeroOrders", 0, 0, 0},
		{"BelowThreshold", 1, 15, 0},   // one order, 5 kg x 3 units
		{"TwoTrees", 3, 40, 2},
		{"FloorNotRound", 2, 39.9, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := new(MockSource)
			svc := NewService(source)

			source.On("OrderTotals", ctx).Return(tc.orders, tc.offset, nil)

			stats, err := svc.PlatformStats(ctx)
			assert.NoError(t, err)
			assert.Equal(t, tc.orders, stats.TotalOrders)
			assert.Equal(t, tc.offset, stats.TotalCarbonOffset)
			assert.Equal(t, tc.wantTrees, stats.TreesPlanted)
		})
	}

	t.Run("SourceError", func(t *testing.T) {
		source := new(MockSource)
		svc := NewService(source)

		source.On("OrderTotals", ctx).Return(0, 0.0, errors.New("db error"))

		_, err := svc.PlatformStats(ctx)
		assert.ErrorIs(t, err, apperr.Internal("", nil))
	})
}

func TestRepository_OrderTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		source := NewRepository(db)

		mock.ExpectQuery(`SELECT COUNT\(DISTINCT o.id\)`).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(4, 67.5))

		orders, offset, err := source.OrderTotals(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 4, orders)
		assert.Equal(t, 67.5, offset)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		source := NewRepository(db)

		mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("db error"))

		_, _, err = source.OrderTotals(ctx)
		assert.Error(t, err)
	})
}
