package iorderitemrepo

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
)

// IOrderItemRepository is an interface for the order item repository.
type IOrderItemRepository interface {
	// BulkInsert persists the items of an order and returns them with IDs.
	BulkInsert(ctx context.Context, items []orderitem.OrderItem) ([]orderitem.OrderItem, error)

	// Query retrieves order items based on filter criteria, ordered by ID.
	Query(ctx context.Context, filter *orderitem.QueryOrderItemsModel) ([]orderitem.OrderItem, error)
}
