package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id         int64           `db:"id"`
	CustomerId int64           `db:"customer_id"`
	Status     string          `db:"status"`
	TotalPrice decimal.Decimal `db:"total_price"`
	CreatedAt  time.Time       `db:"created_at"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	status, err := order.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:         o.Id,
		CustomerID: o.CustomerId,
		Status:     status,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		OrderItems: []orderitem.OrderItem{}, // Will be populated separately
	}, nil
}

// OrderDalFromModel converts service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:         o.ID,
		CustomerId: o.CustomerID,
		Status:     o.Status.String(),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists the order header and returns it with the assigned ID.
// Order items are carried over untouched; they are persisted separately
// within the same transaction.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	dal := OrderDalFromModel(&o)

	query, args, err := r.sb.
		Insert("orders").
		Columns("customer_id", "status", "total_price", "created_at").
		Values(dal.CustomerId, dal.Status, dal.TotalPrice, dal.CreatedAt).
		Suffix("RETURNING id, customer_id, status, total_price, created_at").
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var inserted OrderDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&inserted.Id,
		&inserted.CustomerId,
		&inserted.Status,
		&inserted.TotalPrice,
		&inserted.CreatedAt,
	); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	model, err := inserted.ToModel()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to convert order dal to model: %w", err)
	}
	model.OrderItems = o.OrderItems

	return *model, nil
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select("id", "customer_id", "status", "total_price", "created_at").
		From("orders").
		OrderBy("id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.CustomerIds) > 0 {
		query = query.Where(sq.Eq{"customer_id": filter.CustomerIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.CustomerId,
			&dal.Status,
			&dal.TotalPrice,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
