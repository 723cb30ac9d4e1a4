package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// UserDal represents user data access layer model.
type UserDal struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// ToModel converts UserDal to service layer User model.
func (u *UserDal) ToModel() *user.User {
	return &user.User{
		ID:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

// UserDalFromModel converts service layer User model to UserDal.
func UserDalFromModel(u *user.User) *UserDal {
	return &UserDal{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

// PostgresUserRepository represents a Postgres user repository.
type PostgresUserRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresUserRepository creates a new Postgres user repository.
func NewPostgresUserRepository(conn postgres.GenericConn) *PostgresUserRepository {
	return &PostgresUserRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists a new user and returns it with the assigned ID.
func (r *PostgresUserRepository) Insert(ctx context.Context, u user.User) (user.User, error) {
	dal := UserDalFromModel(&u)

	query, args, err := r.sb.
		Insert("users").
		Columns("name", "email", "password", "created_at").
		Values(dal.Name, dal.Email, dal.Password, dal.CreatedAt).
		Suffix("RETURNING id, name, email, password, created_at").
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var inserted UserDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&inserted.Id,
		&inserted.Name,
		&inserted.Email,
		&inserted.Password,
		&inserted.CreatedAt,
	); err != nil {
		return user.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return *inserted.ToModel(), nil
}

// Get returns the user or user.ErrUserNotFound.
func (r *PostgresUserRepository) Get(ctx context.Context, id int64) (user.User, error) {
	query, args, err := r.sb.
		Select("id", "name", "email", "password", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to build query: %w", err)
	}

	var dal UserDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Email,
		&dal.Password,
		&dal.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}

		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return *dal.ToModel(), nil
}

// List returns all users ordered by ID.
func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := r.sb.
		Select("id", "name", "email", "password", "created_at").
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var result []user.User
	for rows.Next() {
		var dal UserDal
		err := rows.Scan(
			&dal.Id,
			&dal.Name,
			&dal.Email,
			&dal.Password,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update overwrites an existing user or returns user.ErrUserNotFound.
func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	dal := UserDalFromModel(&u)

	query, args, err := r.sb.
		Update("users").
		Set("name", dal.Name).
		Set("email", dal.Email).
		Set("password", dal.Password).
		Where(sq.Eq{"id": dal.Id}).
		Suffix("RETURNING id, name, email, password, created_at").
		ToSql()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to build update query: %w", err)
	}

	var updated UserDal
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(
		&updated.Id,
		&updated.Name,
		&updated.Email,
		&updated.Password,
		&updated.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}

		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return *updated.ToModel(), nil
}

// Delete removes a user or returns user.ErrUserNotFound.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.
		Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
