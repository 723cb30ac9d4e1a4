package product

import "github.com/shopspring/decimal"

// QueryProductsModel represents filter parameters for querying the catalog.
type QueryProductsModel struct {
	Ids      []int64          `json:"ids,omitempty"`
	Name     string           `json:"name,omitempty"`
	MinPrice *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`
	Limit    int              `json:"limit,omitempty"`
	Offset   int              `json:"offset,omitempty"`
}
