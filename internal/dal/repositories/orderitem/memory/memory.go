package memoryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
)

// MemoryOrderItemRepository is an in-memory order item repository for tests
// and local development.
type MemoryOrderItemRepository struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]orderitem.OrderItem
}

// NewMemoryOrderItemRepository creates a new in-memory order item repository.
func NewMemoryOrderItemRepository() *MemoryOrderItemRepository {
	return &MemoryOrderItemRepository{
		items: make(map[int64]orderitem.OrderItem),
	}
}

// BulkInsert stores the items and returns them with assigned IDs, preserving
// the input order.
func (r *MemoryOrderItemRepository) BulkInsert(
	_ context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]orderitem.OrderItem, 0, len(orderItems))
	for _, item := range orderItems {
		r.seq++
		item.ID = r.seq
		r.items[item.ID] = item
		result = append(result, item)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria, ordered by ID.
func (r *MemoryOrderItemRepository) Query(
	_ context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]orderitem.OrderItem, 0, len(r.items))
	for _, item := range r.items {
		if len(filter.Ids) > 0 && !containsID(filter.Ids, item.ID) {
			continue
		}
		if len(filter.OrderIds) > 0 && !containsID(filter.OrderIds, item.OrderID) {
			continue
		}
		if len(filter.ProductIds) > 0 && !containsID(filter.ProductIds, item.ProductID) {
			continue
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []orderitem.OrderItem{}, nil
		}
		result = result[filter.Offset:]
	}

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
