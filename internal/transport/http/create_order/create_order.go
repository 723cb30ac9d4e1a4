package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/converters"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, model order.CreateOrderModel) (*order.Order, error)
}

// itemInCreateOrderRequest represents an item in a create order request. The
// caller supplies only product id and quantity; the price is resolved and
// snapshotted server-side.
type itemInCreateOrderRequest struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity"  validate:"gt=0"`
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	CustomerID int64                      `json:"customerId" validate:"gt=0"`
	Items      []itemInCreateOrderRequest `json:"items"      validate:"required,min=1,dive"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.CreateOrderModel.
func (r *createOrderRequest) toModel() order.CreateOrderModel {
	items := make([]order.CreateOrderItemModel, len(r.Items))
	for i, item := range r.Items {
		items[i] = order.CreateOrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return order.CreateOrderModel{
		CustomerID: r.CustomerID,
		Items:      items,
	}
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderReq := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := orderReq.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), orderReq.toModel())
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, product.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		slog.Error("Error creating order", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(converters.OrderToResponse(*created)); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}
