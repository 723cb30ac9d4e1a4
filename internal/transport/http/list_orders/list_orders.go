package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/transport/http/converters"
	"github.com/gorilla/schema"
)

type service interface {
	GetOrders(ctx context.Context, model order.QueryOrdersModel) ([]order.Order, error)
}

type queryOrdersRequest struct {
	Ids         []int64 `schema:"ids,omitempty"`
	CustomerIds []int64 `schema:"customerId,omitempty"`
	Limit       int     `schema:"limit,omitempty"`
	Offset      int     `schema:"offset,omitempty"`
}

func (q *queryOrdersRequest) ToModel() order.QueryOrdersModel {
	return order.QueryOrdersModel{
		Ids:         q.Ids,
		CustomerIds: q.CustomerIds,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}

// ListOrders handles listing all orders, optionally scoped to a customer.
// An unknown customer yields an empty list, not an error.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	err := decoder.Decode(query, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	orders, err := service.GetOrders(r.Context(), query.ToModel())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting orders", "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(converters.OrdersToResponse(orders)); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}
