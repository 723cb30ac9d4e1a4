package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductDal represents product data access layer model.
type ProductDal struct {
	Id          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	ImageUrl    string          `db:"image_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// ToModel converts ProductDal to service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageUrl,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductDalFromModel converts service layer Product model to ProductDal.
func ProductDalFromModel(p *product.Product) *ProductDal {
	return &ProductDal{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageUrl:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PostgresProductRepository represents a Postgres product repository.
type PostgresProductRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn postgres.GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists a new product and returns it with the assigned ID.
func (r *PostgresProductRepository) Insert(
	ctx context.Context,
	p product.Product,
) (product.Product, error) {
	dal := ProductDalFromModel(&p)

	query, args, err := r.sb.
		Insert("products").
		Columns("name", "description", "price", "image_url", "created_at", "updated_at").
		Values(dal.Name, dal.Description, dal.Price, dal.ImageUrl, dal.CreatedAt, dal.UpdatedAt).
		Suffix("RETURNING id, name, description, price, image_url, created_at, updated_at").
		ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var inserted ProductDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&inserted.Id,
		&inserted.Name,
		&inserted.Description,
		&inserted.Price,
		&inserted.ImageUrl,
		&inserted.CreatedAt,
		&inserted.UpdatedAt,
	); err != nil {
		return product.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return *inserted.ToModel(), nil
}

// Get returns the product or product.ErrProductNotFound.
func (r *PostgresProductRepository) Get(ctx context.Context, id int64) (product.Product, error) {
	query, args, err := r.sb.
		Select("id", "name", "description", "price", "image_url", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to build query: %w", err)
	}

	var dal ProductDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Description,
		&dal.Price,
		&dal.ImageUrl,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}

		return product.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return *dal.ToModel(), nil
}

// Query retrieves products based on filter criteria.
func (r *PostgresProductRepository) Query(
	ctx context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	query := r.sb.
		Select("id", "name", "description", "price", "image_url", "created_at", "updated_at").
		From("products").
		OrderBy("id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if filter.Name != "" {
		query = query.Where(sq.ILike{"name": "%" + filter.Name + "%"})
	}

	if filter.MinPrice != nil {
		query = query.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}

	if filter.MaxPrice != nil {
		query = query.Where(sq.LtOrEq{"price": *filter.MaxPrice})
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
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		var dal ProductDal
		err := rows.Scan(
			&dal.Id,
			&dal.Name,
			&dal.Description,
			&dal.Price,
			&dal.ImageUrl,
			&dal.CreatedAt,
			&dal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update overwrites an existing product or returns product.ErrProductNotFound.
func (r *PostgresProductRepository) Update(
	ctx context.Context,
	p product.Product,
) (product.Product, error) {
	dal := ProductDalFromModel(&p)

	query, args, err := r.sb.
		Update("products").
		Set("name", dal.Name).
		Set("description", dal.Description).
		Set("price", dal.Price).
		Set("image_url", dal.ImageUrl).
		Set("updated_at", dal.UpdatedAt).
		Where(sq.Eq{"id": dal.Id}).
		Suffix("RETURNING id, name, description, price, image_url, created_at, updated_at").
		ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to build update query: %w", err)
	}

	var updated ProductDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&updated.Id,
		&updated.Name,
		&updated.Description,
		&updated.Price,
		&updated.ImageUrl,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}

		return product.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return *updated.ToModel(), nil
}

// Delete removes a product or returns product.ErrProductNotFound.
func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
