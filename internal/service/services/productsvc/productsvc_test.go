package productsvc_test

import (
	"context"
	"testing"

	productmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/product/memory"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/productsvc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *productsvc.ProductService {
	return productsvc.MustNewProductService(
		productsvc.WithRepository(productmemory.NewMemoryProductRepository()),
	)
}

func seedCatalog(t *testing.T, svc *productsvc.ProductService) {
	t.Helper()

	for _, entry := range []struct {
		name  string
		price string
	}{
		{"Mechanical Keyboard", "120.00"},
		{"Wireless Mouse", "45.50"},
		{"USB Keyboard", "25.00"},
		{"Monitor", "300.00"},
	} {
		_, err := svc.CreateProduct(context.Background(), productsvc.CreateProductModel{
			Name:  entry.name,
			Price: decimal.RequireFromString(entry.price),
		})
		require.NoError(t, err)
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	svc := newService()

	created, err := svc.CreateProduct(context.Background(), productsvc.CreateProductModel{
		Name:        "Keyboard",
		Description: "Clicky",
		Price:       decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("99.99")))
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetProduct(context.Background(), 404)
	require.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestSearchByName_CaseInsensitiveSubstring(t *testing.T) {
	svc := newService()
	seedCatalog(t, svc)

	found, err := svc.SearchByName(context.Background(), "keyboard")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Mechanical Keyboard", found[0].Name)
	assert.Equal(t, "USB Keyboard", found[1].Name)
}

func TestSearchByName_NoMatchesReturnsEmptyList(t *testing.T) {
	svc := newService()
	seedCatalog(t, svc)

	found, err := svc.SearchByName(context.Background(), "typewriter")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found)
}

func TestFilterByPriceRange_InclusiveBounds(t *testing.T) {
	svc := newService()
	seedCatalog(t, svc)

	found, err := svc.FilterByPriceRange(
		context.Background(),
		decimal.RequireFromString("25.00"),
		decimal.RequireFromString("120.00"),
	)
	require.NoError(t, err)

	require.Len(t, found, 3)
	names := make([]string, 0, len(found))
	for _, p := range found {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Mechanical Keyboard", "Wireless Mouse", "USB Keyboard"}, names)
}

func TestUpdateProduct(t *testing.T) {
	svc := newService()

	created, err := svc.CreateProduct(context.Background(), productsvc.CreateProductModel{
		Name:  "Keyboard",
		Price: decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, productsvc.CreateProductModel{
		Name:  "Keyboard v2",
		Price: decimal.RequireFromString("109.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Keyboard v2", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("109.99")))

	_, err = svc.UpdateProduct(context.Background(), 404, productsvc.CreateProductModel{Name: "x"})
	require.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newService()

	created, err := svc.CreateProduct(context.Background(), productsvc.CreateProductModel{
		Name:  "Keyboard",
		Price: decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	require.ErrorIs(t, svc.DeleteProduct(context.Background(), created.ID), product.ErrProductNotFound)
}
