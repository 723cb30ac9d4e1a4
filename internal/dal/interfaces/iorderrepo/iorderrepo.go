package iorderrepo

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
)

// IOrderRepository is an interface for the order repository.
type IOrderRepository interface {
	// Insert persists a new order header and returns it with the assigned ID.
	Insert(ctx context.Context, o order.Order) (order.Order, error)

	// Query retrieves orders based on filter criteria, ordered by ID.
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}
