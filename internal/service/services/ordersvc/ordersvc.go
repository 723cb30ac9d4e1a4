package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderitemrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/ioutboxrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iproductrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iuserrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	productrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/product/postgres"
	userrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/user/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/uow"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/orderitem"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/outbox"
	"github.com/shopspring/decimal"
)

const (
	orderCreatedQueue      = "ecommerce.order.created"
	orderCreatedMaxRetries = 5
)

// OrderService assembles and queries orders.
type OrderService struct {
	uowFactory  func() UnitOfWork
	userRepo    iuserrepo.IUserRepository
	productRepo iproductrepo.IProductRepository
}

func (s *OrderService) newUOW() UnitOfWork {
	return s.uowFactory()
}

// UnitOfWork is the transaction boundary the service persists an order graph
// through: the order header, its items and the staged event commit together
// or not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.uowFactory == nil || s.userRepo == nil || s.productRepo == nil {
		panic("ordersvc: storage is not configured")
	}

	return s
}

// WithPostgresClient wires the OrderService to Postgres-backed storage.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.uowFactory = func() UnitOfWork {
			return uow.NewUnitOfWork(pgClient)
		}
		s.userRepo = userrepo.NewPostgresUserRepository(pgClient.Pool())
		s.productRepo = productrepo.NewPostgresProductRepository(pgClient.Pool())
	}
}

// WithUnitOfWorkFactory overrides the unit of work used for order persistence.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() UnitOfWork) option {
	return func(s *OrderService) {
		s.uowFactory = factory
	}
}

// WithUserRepository overrides the user lookup.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUserRepository(repo iuserrepo.IUserRepository) option {
	return func(s *OrderService) {
		s.userRepo = repo
	}
}

// WithProductRepository overrides the product lookup.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *OrderService) {
		s.productRepo = repo
	}
}

// CreateOrder resolves the customer and every requested product, snapshots
// each product's current price into a line item, computes the exact decimal
// total and persists the whole order graph in one transaction. Any lookup
// failure aborts the call before a single write happens.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	model order.CreateOrderModel,
) (*order.Order, error) {
	buyer, err := s.userRepo.Get(ctx, model.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer %d: %w", model.CustomerID, err)
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]orderitem.OrderItem, 0, len(model.Items))

	for _, req := range model.Items {
		p, err := s.productRepo.Get(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", req.ProductID, err)
		}

		// Copy the price by value; the line item must not track later
		// changes to the catalog entry.
		items = append(items, orderitem.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    req.Quantity,
			Price:       p.Price,
			CreatedAt:   now,
		})

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(req.Quantity))))
	}

	assembled := order.Order{
		CustomerID: buyer.ID,
		Status:     order.StatusPending,
		TotalPrice: total,
		CreatedAt:  now,
		OrderItems: items,
	}

	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = work.Rollback(ctx)
	}()

	inserted, err := work.OrderRepository().Insert(ctx, assembled)
	if err != nil {
		return nil, err
	}

	for i := range inserted.OrderItems {
		inserted.OrderItems[i].OrderID = inserted.ID
	}

	insertedItems, err := work.OrderItemRepository().BulkInsert(ctx, inserted.OrderItems)
	if err != nil {
		return nil, err
	}
	inserted.OrderItems = insertedItems

	if err := s.enqueueOrderCreated(ctx, work.OutboxRepository(), inserted, now); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return &inserted, nil
}

// enqueueOrderCreated stages an order.created event in the same transaction
// as the order itself.
func (s *OrderService) enqueueOrderCreated(
	ctx context.Context,
	repo ioutboxrepo.IOutboxRepository,
	o order.Order,
	now time.Time,
) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order for outbox: %w", err)
	}

	return repo.Insert(ctx, outbox.Message{
		QueueName:   orderCreatedQueue,
		RoutingKey:  orderCreatedQueue,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  orderCreatedMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}

// GetOrders retrieves orders with their items based on filter.
func (s *OrderService) GetOrders(
	ctx context.Context,
	model order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &model)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	orderItemQuery := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		orderItemQuery.OrderIds = append(orderItemQuery.OrderIds, o.ID)
	}
	orderItems, err := work.OrderItemRepository().Query(ctx, orderItemQuery)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		for _, item := range orderItems {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
			}
		}
	}

	return orders, nil
}
