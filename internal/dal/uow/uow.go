package uow

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderitemrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/ioutboxrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	orderrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/outbox/postgres"
	"github.com/jackc/pgx/v5"
)

// UnitOfWork scopes the order, order item and outbox repositories to a single
// database transaction, so an order graph and its staged event commit or roll
// back as one unit.
type UnitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

// NewUnitOfWork creates a unit of work over the given Postgres client.
func NewUnitOfWork(client *postgres.Client) *UnitOfWork {
	return &UnitOfWork{
		client:        client,
		orderRepo:     orderrepo.NewPostgresOrderRepository(client.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(client.Pool()),
		outboxRepo:    outboxrepo.NewPostgresOutboxRepository(client.Pool()),
	}
}

// OrderRepository returns the order repository bound to the current scope.
func (u *UnitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

// OrderItemRepository returns the order item repository bound to the current scope.
func (u *UnitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

// OutboxRepository returns the outbox repository bound to the current scope.
func (u *UnitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

// Begin starts a transaction and rebinds the repositories to it.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.outboxRepo = outboxrepo.NewPostgresOutboxRepository(tx)

	return nil
}

// Commit commits the transaction, if one was begun.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Commit(ctx)
}

// Rollback aborts the transaction, if one was begun. Safe to defer after a
// successful commit: pgx reports ErrTxClosed, which is swallowed here.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	if err := u.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return err
	}

	return nil
}
