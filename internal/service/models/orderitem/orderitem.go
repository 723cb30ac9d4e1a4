package orderitem

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem represents one line of an order. ProductName and Price are
// denormalized copies taken at the moment the order was assembled; they are
// owned by the order and do not track the live product record.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}
