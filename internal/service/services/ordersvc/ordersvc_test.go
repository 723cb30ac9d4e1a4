package ordersvc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderitemrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/ioutboxrepo"
	ordermemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/order/memory"
	orderitemmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/orderitem/memory"
	outboxmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/outbox/memory"
	productmemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/product/memory"
	usermemory "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/user/memory"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/uow"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/order"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/product"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/services/ordersvc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         *ordersvc.OrderService
	userRepo    *usermemory.MemoryUserRepository
	productRepo *productmemory.MemoryProductRepository
	orderRepo   *ordermemory.MemoryOrderRepository
	itemRepo    *orderitemmemory.MemoryOrderItemRepository
	outboxRepo  *outboxmemory.MemoryOutboxRepository
}

func newFixture() *fixture {
	userRepo := usermemory.NewMemoryUserRepository()
	productRepo := productmemory.NewMemoryProductRepository()
	orderRepo := ordermemory.NewMemoryOrderRepository()
	itemRepo := orderitemmemory.NewMemoryOrderItemRepository()
	outboxRepo := outboxmemory.NewMemoryOutboxRepository()

	svc := ordersvc.MustNewOrderService(
		ordersvc.WithUserRepository(userRepo),
		ordersvc.WithProductRepository(productRepo),
		ordersvc.WithUnitOfWorkFactory(func() ordersvc.UnitOfWork {
			return uow.NewMemoryUnitOfWork(orderRepo, itemRepo, outboxRepo)
		}),
	)

	return &fixture{
		svc:         svc,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		outboxRepo:  outboxRepo,
	}
}

func (f *fixture) seedUser(t *testing.T) user.User {
	t.Helper()

	u, err := f.userRepo.Insert(context.Background(), user.User{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "hash",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	return u
}

func (f *fixture) seedProduct(t *testing.T, name, price string) product.Product {
	t.Helper()

	p, err := f.productRepo.Insert(context.Background(), product.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)

	return p
}

func TestCreateOrder_ComputesExactTotal(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	keyboard := f.seedProduct(t, "Keyboard", "1000.00")

	created, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: keyboard.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NotZero(t, created.ID)
	require.Equal(t, buyer.ID, created.CustomerID)
	require.Equal(t, order.StatusPending, created.Status)
	require.True(t, created.TotalPrice.Equal(decimal.RequireFromString("2000.00")),
		"expected total 2000.00, got %s", created.TotalPrice)

	require.Len(t, created.OrderItems, 1)
	item := created.OrderItems[0]
	require.Equal(t, keyboard.ID, item.ProductID)
	require.Equal(t, "Keyboard", item.ProductName)
	require.Equal(t, 2, item.Quantity)
	require.True(t, item.Price.Equal(decimal.RequireFromString("1000.00")))
	require.Equal(t, created.ID, item.OrderID)
}

func TestCreateOrder_NoRoundingDrift(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	sticker := f.seedProduct(t, "Sticker", "0.10")
	book := f.seedProduct(t, "Book", "19.99")

	created, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: sticker.ID, Quantity: 3},
			{ProductID: book.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 0.10*3 + 19.99*3 must be exactly 60.27, not a float approximation.
	require.True(t, created.TotalPrice.Equal(decimal.RequireFromString("60.27")),
		"expected total 60.27, got %s", created.TotalPrice)
}

func TestCreateOrder_SnapshotSurvivesPriceChange(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	keyboard := f.seedProduct(t, "Keyboard", "1000.00")

	created, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: keyboard.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// Raise the live price after the order was committed.
	keyboard.Price = decimal.RequireFromString("9999.99")
	_, err = f.productRepo.Update(context.Background(), keyboard)
	require.NoError(t, err)

	orders, err := f.svc.GetOrders(context.Background(), order.QueryOrdersModel{
		Ids: []int64{created.ID},
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	stored := orders[0]
	require.True(t, stored.TotalPrice.Equal(decimal.RequireFromString("2000.00")),
		"total changed after live price update: %s", stored.TotalPrice)
	require.Len(t, stored.OrderItems, 1)
	require.True(t, stored.OrderItems[0].Price.Equal(decimal.RequireFromString("1000.00")),
		"item price changed after live price update: %s", stored.OrderItems[0].Price)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	f := newFixture()
	keyboard := f.seedProduct(t, "Keyboard", "1000.00")

	_, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: 42,
		Items: []order.CreateOrderItemModel{
			{ProductID: keyboard.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, user.ErrUserNotFound)

	require.Equal(t, 0, f.orderRepo.Len(), "no order may be persisted")
	require.Equal(t, 0, f.outboxRepo.Len(), "no event may be staged")
}

func TestCreateOrder_UnknownProductIsAllOrNothing(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	keyboard := f.seedProduct(t, "Keyboard", "1000.00")

	_, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: keyboard.ID, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, product.ErrProductNotFound)
	require.Contains(t, err.Error(), "999")

	require.Equal(t, 0, f.orderRepo.Len(), "a valid earlier item must not be persisted")
	require.Equal(t, 0, f.outboxRepo.Len())
}

func TestCreateOrder_EmptyItemsYieldsZeroTotal(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)

	created, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
	})
	require.NoError(t, err)

	require.True(t, created.TotalPrice.IsZero())
	require.Empty(t, created.OrderItems)
}

func TestCreateOrder_PreservesItemOrder(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	keyboard := f.seedProduct(t, "Keyboard", "100.00")
	mouse := f.seedProduct(t, "Mouse", "50.00")
	monitor := f.seedProduct(t, "Monitor", "300.00")

	created, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: monitor.ID, Quantity: 1},
			{ProductID: keyboard.ID, Quantity: 1},
			{ProductID: mouse.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.OrderItems, 3)
	require.Equal(t, monitor.ID, created.OrderItems[0].ProductID)
	require.Equal(t, keyboard.ID, created.OrderItems[1].ProductID)
	require.Equal(t, mouse.ID, created.OrderItems[2].ProductID)
}

func TestCreateOrder_StagesOrderCreatedEvent(t *testing.T) {
	f := newFixture()
	buyer := f.seedUser(t)
	keyboard := f.seedProduct(t, "Keyboard", "100.00")

	_, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: keyboard.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Equal(t, 1, f.outboxRepo.Len())

	messages, err := f.outboxRepo.GetPendingMessages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "application/json", messages[0].ContentType)
	require.Contains(t, string(messages[0].Payload), `"status":"PENDING"`)
}

func TestGetOrders_FiltersByCustomer(t *testing.T) {
	f := newFixture()
	alice := f.seedUser(t)
	bob, err := f.userRepo.Insert(context.Background(), user.User{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	keyboard := f.seedProduct(t, "Keyboard", "100.00")

	for _, buyer := range []int64{alice.ID, bob.ID, alice.ID} {
		_, err := f.svc.CreateOrder(context.Background(), order.CreateOrderModel{
			CustomerID: buyer,
			Items: []order.CreateOrderItemModel{
				{ProductID: keyboard.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)
	}

	orders, err := f.svc.GetOrders(context.Background(), order.QueryOrdersModel{
		CustomerIds: []int64{alice.ID},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.Equal(t, alice.ID, o.CustomerID)
		require.Len(t, o.OrderItems, 1)
	}

	// Stable enumeration: ascending ID order.
	require.Less(t, orders[0].ID, orders[1].ID)
}

func TestGetOrders_UnknownCustomerReturnsEmptyList(t *testing.T) {
	f := newFixture()

	orders, err := f.svc.GetOrders(context.Background(), order.QueryOrdersModel{
		CustomerIds: []int64{777},
	})
	require.NoError(t, err)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

// failingUOW simulates a storage failure during commit of the order graph.
type failingUOW struct {
	rolledBack bool
}

func (u *failingUOW) Begin(_ context.Context) error    { return nil }
func (u *failingUOW) Commit(_ context.Context) error   { return nil }
func (u *failingUOW) Rollback(_ context.Context) error { u.rolledBack = true; return nil }

func (u *failingUOW) OrderRepository() iorderrepo.IOrderRepository {
	return failingOrderRepo{}
}

func (u *failingUOW) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return orderitemmemory.NewMemoryOrderItemRepository()
}

func (u *failingUOW) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return outboxmemory.NewMemoryOutboxRepository()
}

type failingOrderRepo struct{}

var errStorage = errors.New("connection reset")

func (failingOrderRepo) Insert(_ context.Context, _ order.Order) (order.Order, error) {
	return order.Order{}, errStorage
}

func (failingOrderRepo) Query(_ context.Context, _ *order.QueryOrdersModel) ([]order.Order, error) {
	return nil, errStorage
}

func TestCreateOrder_StorageFailureRollsBack(t *testing.T) {
	userRepo := usermemory.NewMemoryUserRepository()
	productRepo := productmemory.NewMemoryProductRepository()

	buyer, err := userRepo.Insert(context.Background(), user.User{Name: "Alice"})
	require.NoError(t, err)
	p, err := productRepo.Insert(context.Background(), product.Product{
		Name:  "Keyboard",
		Price: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	failing := &failingUOW{}
	svc := ordersvc.MustNewOrderService(
		ordersvc.WithUserRepository(userRepo),
		ordersvc.WithProductRepository(productRepo),
		ordersvc.WithUnitOfWorkFactory(func() ordersvc.UnitOfWork { return failing }),
	)

	_, err = svc.CreateOrder(context.Background(), order.CreateOrderModel{
		CustomerID: buyer.ID,
		Items: []order.CreateOrderItemModel{
			{ProductID: p.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, errStorage)
	require.True(t, failing.rolledBack)
}
