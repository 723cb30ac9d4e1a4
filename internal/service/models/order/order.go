package order

import (
	"errors"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order does not exist in the store.
var ErrOrderNotFound = errors.New("order not found")

// Order represents a persisted financial record of a purchase.
// TotalPrice and the per-item prices are fixed at creation time and never
// change afterwards, regardless of later catalog updates.
type Order struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"customerId"`
	Status     Status                `json:"status"`
	TotalPrice decimal.Decimal       `json:"totalPrice"`
	CreatedAt  time.Time             `json:"createdAt"`
	OrderItems []orderitem.OrderItem `json:"orderItems"`
}

// CreateOrderModel is the service layer input for creating an order.
type CreateOrderModel struct {
	CustomerID int64
	Items      []CreateOrderItemModel
}

// CreateOrderItemModel references a catalog product by id; the price is
// resolved and snapshotted by the service, never supplied by the caller.
type CreateOrderItemModel struct {
	ProductID int64
	Quantity  int
}
