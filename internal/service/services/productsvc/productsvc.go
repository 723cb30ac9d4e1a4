package productsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iproductrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	productrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/product/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// ProductService manages the product catalog.
type ProductService struct {
	repo iproductrepo.IProductRepository
}

// CreateProductModel is the service layer input for creating or updating a
// product.
type CreateProductModel struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

// option is a function that configures the ProductService.
type option func(*ProductService)

// MustNewProductService creates a new ProductService.
func MustNewProductService(opts ...option) *ProductService {
	s := &ProductService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("productsvc: storage is not configured")
	}

	return s
}

// WithPostgresClient wires the ProductService to Postgres-backed storage.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *ProductService) {
		s.repo = productrepo.NewPostgresProductRepository(pgClient.Pool())
	}
}

// WithRepository overrides the product repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo iproductrepo.IProductRepository) option {
	return func(s *ProductService) {
		s.repo = repo
	}
}

// CreateProduct persists a new catalog entry.
func (s *ProductService) CreateProduct(
	ctx context.Context,
	model CreateProductModel,
) (*product.Product, error) {
	now := time.Now()

	created, err := s.repo.Insert(ctx, product.Product{
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetProduct returns the product or a wrapped product.ErrProductNotFound.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	return &p, nil
}

// QueryProducts returns catalog entries matching the filter, ordered by ID.
func (s *ProductService) QueryProducts(
	ctx context.Context,
	model product.QueryProductsModel,
) ([]product.Product, error) {
	products, err := s.repo.Query(ctx, &model)
	if err != nil {
		return nil, err
	}

	if products == nil {
		return []product.Product{}, nil
	}

	return products, nil
}

// UpdateProduct overwrites the catalog entry.
func (s *ProductService) UpdateProduct(
	ctx context.Context,
	id int64,
	model CreateProductModel,
) (*product.Product, error) {
	updated, err := s.repo.Update(ctx, product.Product{
		ID:          id,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	return &updated, nil
}

// DeleteProduct removes the product or returns a wrapped
// product.ErrProductNotFound.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	return nil
}

// SearchByName returns products whose name contains the keyword,
// case-insensitively.
func (s *ProductService) SearchByName(ctx context.Context, keyword string) ([]product.Product, error) {
	return s.QueryProducts(ctx, product.QueryProductsModel{Name: keyword})
}

// FilterByPriceRange returns products priced within the inclusive bounds.
func (s *ProductService) FilterByPriceRange(
	ctx context.Context,
	minPrice, maxPrice decimal.Decimal,
) ([]product.Product, error) {
	return s.QueryProducts(ctx, product.QueryProductsModel{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
}
