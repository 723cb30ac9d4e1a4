package iproductrepo

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
)

// IProductRepository is an interface for the product catalog repository.
type IProductRepository interface {
	// Insert persists a new product and returns it with the assigned ID.
	Insert(ctx context.Context, p product.Product) (product.Product, error)

	// Get returns the product or product.ErrProductNotFound if it does not exist.
	Get(ctx context.Context, id int64) (product.Product, error)

	// Query retrieves products based on filter criteria, ordered by ID.
	Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)

	// Update overwrites an existing product or returns product.ErrProductNotFound.
	Update(ctx context.Context, p product.Product) (product.Product, error)

	// Delete removes a product or returns product.ErrProductNotFound.
	Delete(ctx context.Context, id int64) error
}
