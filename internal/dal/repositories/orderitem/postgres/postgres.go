package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// OrderItemDal represents order item data access layer model.
type OrderItemDal struct {
	Id          int64           `db:"id"`
	OrderId     int64           `db:"order_id"`
	ProductId   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	CreatedAt   time.Time       `db:"created_at"`
}

// ToModel converts OrderItemDal to service layer OrderItem model.
func (oi *OrderItemDal) ToModel() *orderitem.OrderItem {
	return &orderitem.OrderItem{
		ID:          oi.Id,
		OrderID:     oi.OrderId,
		ProductID:   oi.ProductId,
		ProductName: oi.ProductName,
		Quantity:    oi.Quantity,
		Price:       oi.Price,
		CreatedAt:   oi.CreatedAt,
	}
}

// OrderItemDalFromModel converts service layer OrderItem model to OrderItemDal.
func OrderItemDalFromModel(oi *orderitem.OrderItem) *OrderItemDal {
	return &OrderItemDal{
		Id:          oi.ID,
		OrderId:     oi.OrderID,
		ProductId:   oi.ProductID,
		ProductName: oi.ProductName,
		Quantity:    oi.Quantity,
		Price:       oi.Price,
		CreatedAt:   oi.CreatedAt,
	}
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.GenericConn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts multiple order items and returns them with assigned IDs,
// preserving the input order.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(orderItems) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	query := r.sb.
		Insert("order_items").
		Columns("order_id", "product_id", "product_name", "quantity", "price", "created_at")

	for _, oi := range orderItems {
		dal := OrderItemDalFromModel(&oi)
		query = query.Values(
			dal.OrderId,
			dal.ProductId,
			dal.ProductName,
			dal.Quantity,
			dal.Price,
			dal.CreatedAt,
		)
	}

	sql, args, err := query.
		Suffix("RETURNING id, order_id, product_id, product_name, quantity, price, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bulk insert query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.ProductId,
			&dal.ProductName,
			&dal.Quantity,
			&dal.Price,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria.
func (r *PostgresOrderItemRepository) Query(
	ctx context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	query := r.sb.
		Select("id", "order_id", "product_id", "product_name", "quantity", "price", "created_at").
		From("order_items").
		OrderBy("id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.OrderIds) > 0 {
		query = query.Where(sq.Eq{"order_id": filter.OrderIds})
	}

	if len(filter.ProductIds) > 0 {
		query = query.Where(sq.Eq{"product_id": filter.ProductIds})
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
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.ProductId,
			&dal.ProductName,
			&dal.Quantity,
			&dal.Price,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
