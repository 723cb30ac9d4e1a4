package memoryrepo_test

import (
	"context"
	"testing"
	"time"

	memoryrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/order/memory"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, repo *memoryrepo.MemoryOrderRepository) {
	t.Helper()

	for _, customerID := range []int64{1, 2, 1, 3, 1} {
		_, err := repo.Insert(context.Background(), order.Order{
			CustomerID: customerID,
			Status:     order.StatusPending,
			TotalPrice: decimal.RequireFromString("10.00"),
			CreatedAt:  time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	repo := memoryrepo.NewMemoryOrderRepository()

	first, err := repo.Insert(context.Background(), order.Order{CustomerID: 1})
	require.NoError(t, err)
	second, err := repo.Insert(context.Background(), order.Order{CustomerID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, repo.Len())
}

func TestQuery_FiltersByCustomer(t *testing.T) {
	repo := memoryrepo.NewMemoryOrderRepository()
	seedOrders(t, repo)

	orders, err := repo.Query(context.Background(), &order.QueryOrdersModel{
		CustomerIds: []int64{1},
	})
	require.NoError(t, err)

	require.Len(t, orders, 3)
	for _, o := range orders {
		assert.Equal(t, int64(1), o.CustomerID)
	}

	// Ascending ID, stable across calls.
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)
	assert.Equal(t, int64(5), orders[2].ID)
}

func TestQuery_FiltersByIDs(t *testing.T) {
	repo := memoryrepo.NewMemoryOrderRepository()
	seedOrders(t, repo)

	orders, err := repo.Query(context.Background(), &order.QueryOrdersModel{
		Ids: []int64{2, 4},
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(4), orders[1].ID)
}

func TestQuery_LimitAndOffset(t *testing.T) {
	repo := memoryrepo.NewMemoryOrderRepository()
	seedOrders(t, repo)

	orders, err := repo.Query(context.Background(), &order.QueryOrdersModel{
		Limit:  2,
		Offset: 1,
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)
}

func TestQuery_NoMatches(t *testing.T) {
	repo := memoryrepo.NewMemoryOrderRepository()
	seedOrders(t, repo)

	orders, err := repo.Query(context.Background(), &order.QueryOrdersModel{
		CustomerIds: []int64{99},
	})
	require.NoError(t, err)
	assert.Empty(t, orders)
}
