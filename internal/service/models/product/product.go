package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Product represents a catalog entry. Price is the live price and may change
// at any time; code that needs a stable price must copy it out.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
