package converters

import (
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/shopspring/decimal"
)

// OrderItemResponse is the external shape of one order line. Price is the
// snapshot captured at order time, never the product's live price.
type OrderItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderResponse is the external shape of a persisted order.
type OrderResponse struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customerId"`
	CreatedAt  time.Time           `json:"createdAt"`
	TotalPrice decimal.Decimal     `json:"totalPrice"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
}

// UserResponse is the external shape of a user; the password hash is never
// exposed.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductResponse is the external shape of a catalog entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// OrderToResponse converts an order to its external representation,
// preserving line item order exactly as stored.
func OrderToResponse(o order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.OrderItems))
	for i, item := range o.OrderItems {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CreatedAt:  o.CreatedAt,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		Items:      items,
	}
}

// OrdersToResponse converts a list of orders, preserving their order.
func OrdersToResponse(orders []order.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderToResponse(o)
	}

	return result
}

// UserToResponse converts a user to its external representation.
func UserToResponse(u user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UsersToResponse converts a list of users, preserving their order.
func UsersToResponse(users []user.User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i, u := range users {
		result[i] = UserToResponse(u)
	}

	return result
}

// ProductToResponse converts a product to its external representation.
func ProductToResponse(p product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}

// ProductsToResponse converts a list of products, preserving their order.
func ProductsToResponse(products []product.Product) []ProductResponse {
	result := make([]ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductToResponse(p)
	}

	return result
}
