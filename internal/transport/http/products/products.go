package products

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/productsvc"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/converters"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

// service is an interface for the service layer.
type service interface {
	CreateProduct(ctx context.Context, model productsvc.CreateProductModel) (*product.Product, error)
	GetProduct(ctx context.Context, id int64) (*product.Product, error)
	QueryProducts(ctx context.Context, model product.QueryProductsModel) ([]product.Product, error)
	UpdateProduct(ctx context.Context, id int64, model productsvc.CreateProductModel) (*product.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, keyword string) ([]product.Product, error)
	FilterByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]product.Product, error)
}

// productRequest represents a create or update product request.
type productRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

// Validate validates the product request.
func (r *productRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return errors.New("price must be non-negative")
	}

	return nil
}

func (r *productRequest) toModel() productsvc.CreateProductModel {
	return productsvc.CreateProductModel{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}

// queryProductsRequest represents list query parameters.
type queryProductsRequest struct {
	Ids    []int64 `schema:"ids,omitempty"`
	Limit  int     `schema:"limit,omitempty"`
	Offset int     `schema:"offset,omitempty"`
}

// Create handles the create product request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := productRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create product", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create product", "error", err)

		return
	}

	created, err := service.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating product", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(converters.ProductToResponse(*created)); err != nil {
		slog.Error("Error sending response for create product", "error", err)
	}
}

// Get handles the get product request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.ProductToResponse(*p)); err != nil {
		slog.Error("Error sending response for get product", "error", err)
	}
}

// List handles the list products request with pagination.
func List(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryProductsRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	products, err := service.QueryProducts(r.Context(), product.QueryProductsModel{
		Ids:    query.Ids,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error listing products", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.ProductsToResponse(products)); err != nil {
		slog.Error("Error sending response for list products", "error", err)
	}
}

// Update handles the update product request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req := productRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for update product", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for update product", "error", err)

		return
	}

	updated, err := service.UpdateProduct(r.Context(), id, req.toModel())
	if err != nil {
		respondError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.ProductToResponse(*updated)); err != nil {
		slog.Error("Error sending response for update product", "error", err)
	}
}

// Delete handles the delete product request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles the search products by name request.
func Search(w http.ResponseWriter, r *http.Request, service service) {
	keyword := r.URL.Query().Get("name")

	products, err := service.SearchByName(r.Context(), keyword)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error searching products", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.ProductsToResponse(products)); err != nil {
		slog.Error("Error sending response for search products", "error", err)
	}
}

// Filter handles the filter products by price range request.
func Filter(w http.ResponseWriter, r *http.Request, service service) {
	minPrice, err := decimal.NewFromString(r.URL.Query().Get("minPrice"))
	if err != nil {
		http.Error(w, "invalid minPrice", http.StatusBadRequest)

		return
	}

	maxPrice, err := decimal.NewFromString(r.URL.Query().Get("maxPrice"))
	if err != nil {
		http.Error(w, "invalid maxPrice", http.StatusBadRequest)

		return
	}

	products, err := service.FilterByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error filtering products", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.ProductsToResponse(products)); err != nil {
		slog.Error("Error sending response for filter products", "error", err)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)

		return 0, false
	}

	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, product.ErrProductNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	slog.Error("Error handling product request", "error", err)
}
