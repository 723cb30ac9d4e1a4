package createorder_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	createorder "github.com/GuruMohith24/e-commerce-backend/internal/transport/http/create_order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	got    *order.CreateOrderModel
	result *order.Order
	err    error
}

func (s *stubService) CreateOrder(_ context.Context, model order.CreateOrderModel) (*order.Order, error) {
	s.got = &model
	if s.err != nil {
		return nil, s.err
	}

	return s.result, nil
}

func doRequest(svc *stubService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	createorder.CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrder_Success(t *testing.T) {
	svc := &stubService{
		result: &order.Order{
			ID:         1,
			CustomerID: 3,
			Status:     order.StatusPending,
			TotalPrice: decimal.RequireFromString("2000.00"),
		},
	}

	rec := doRequest(svc, `{"customerId":3,"items":[{"productId":7,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	require.NotNil(t, svc.got)
	assert.Equal(t, int64(3), svc.got.CustomerID)
	require.Len(t, svc.got.Items, 1)
	assert.Equal(t, int64(7), svc.got.Items[0].ProductID)
	assert.Equal(t, 2, svc.got.Items[0].Quantity)

	var resp struct {
		ID         int64           `json:"id"`
		Status     string          `json:"status"`
		TotalPrice decimal.Decimal `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("2000.00")))
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	svc := &stubService{}

	rec := doRequest(svc, `{"customerId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got, "service must not be called")
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing items":     `{"customerId":3}`,
		"empty items":       `{"customerId":3,"items":[]}`,
		"zero quantity":     `{"customerId":3,"items":[{"productId":7,"quantity":0}]}`,
		"negative quantity": `{"customerId":3,"items":[{"productId":7,"quantity":-1}]}`,
		"zero product id":   `{"customerId":3,"items":[{"productId":0,"quantity":1}]}`,
		"zero customer id":  `{"customerId":0,"items":[{"productId":7,"quantity":1}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &stubService{}

			rec := doRequest(svc, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.got, "service must not be called")
		})
	}
}

func TestCreateOrder_UnknownReferences(t *testing.T) {
	svc := &stubService{
		err: fmt.Errorf("failed to resolve customer 42: %w", user.ErrUserNotFound),
	}

	rec := doRequest(svc, `{"customerId":42,"items":[{"productId":7,"quantity":1}]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_ServiceFailure(t *testing.T) {
	svc := &stubService{err: errors.New("connection reset")}

	rec := doRequest(svc, `{"customerId":3,"items":[{"productId":7,"quantity":1}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
