package memoryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
)

// MemoryOrderRepository is an in-memory order repository for tests and local
// development. It mirrors the Postgres repository's behavior: Query returns
// order headers only, items are attached by the service layer.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	seq    int64
	orders map[int64]order.Order
}

// NewMemoryOrderRepository creates a new in-memory order repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[int64]order.Order),
	}
}

// Insert stores the order header and returns it with the assigned ID.
func (r *MemoryOrderRepository) Insert(_ context.Context, o order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	o.ID = r.seq

	stored := o
	stored.OrderItems = nil
	r.orders[o.ID] = stored

	return o, nil
}

// Query retrieves orders based on filter criteria, ordered by ID.
func (r *MemoryOrderRepository) Query(
	_ context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if len(filter.Ids) > 0 && !containsID(filter.Ids, o.ID) {
			continue
		}
		if len(filter.CustomerIds) > 0 && !containsID(filter.CustomerIds, o.CustomerID) {
			continue
		}
		o.OrderItems = []orderitem.OrderItem{}
		result = append(result, o)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []order.Order{}, nil
		}
		result = result[filter.Offset:]
	}

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Len returns the number of stored orders.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
