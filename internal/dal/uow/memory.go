package uow

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderitemrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/ioutboxrepo"
	ordermemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/order/memory"
	orderitemmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/orderitem/memory"
	outboxmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/outbox/memory"
)

// MemoryUnitOfWork binds the in-memory repositories behind the unit of work
// interface for tests and local development. It provides no isolation or
// rollback; writes are visible immediately.
type MemoryUnitOfWork struct {
	orderRepo     *ordermemory.MemoryOrderRepository
	orderItemRepo *orderitemmemory.MemoryOrderItemRepository
	outboxRepo    *outboxmemory.MemoryOutboxRepository
}

// NewMemoryUnitOfWork creates a memory unit of work over shared repositories,
// so successive units observe the same data set.
func NewMemoryUnitOfWork(
	orderRepo *ordermemory.MemoryOrderRepository,
	orderItemRepo *orderitemmemory.MemoryOrderItemRepository,
	outboxRepo *outboxmemory.MemoryOutboxRepository,
) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		outboxRepo:    outboxRepo,
	}
}

func (u *MemoryUnitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *MemoryUnitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *MemoryUnitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *MemoryUnitOfWork) Begin(_ context.Context) error { return nil }

func (u *MemoryUnitOfWork) Commit(_ context.Context) error { return nil }

func (u *MemoryUnitOfWork) Rollback(_ context.Context) error { return nil }
