package memoryrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
)

// MemoryProductRepository is an in-memory product repository for tests and
// local development.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	seq      int64
	products map[int64]product.Product
}

// NewMemoryProductRepository creates a new in-memory product repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int64]product.Product),
	}
}

// Insert stores the product and returns it with the assigned ID.
func (r *MemoryProductRepository) Insert(
	_ context.Context,
	p product.Product,
) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	p.ID = r.seq
	r.products[p.ID] = p

	return p, nil
}

// Get returns the product or product.ErrProductNotFound.
func (r *MemoryProductRepository) Get(_ context.Context, id int64) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}

	return p, nil
}

// Query retrieves products based on filter criteria, ordered by ID.
func (r *MemoryProductRepository) Query(
	_ context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]product.Product, 0, len(r.products))
	for _, p := range r.products {
		if len(filter.Ids) > 0 && !containsID(filter.Ids, p.ID) {
			continue
		}
		if filter.Name != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []product.Product{}, nil
		}
		result = result[filter.Offset:]
	}

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Update overwrites an existing product or returns product.ErrProductNotFound.
func (r *MemoryProductRepository) Update(
	_ context.Context,
	p product.Product,
) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[p.ID]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}

	p.CreatedAt = current.CreatedAt
	r.products[p.ID] = p

	return p, nil
}

// Delete removes a product or returns product.ErrProductNotFound.
func (r *MemoryProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)

	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
