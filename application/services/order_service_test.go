package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	"storefront-backend/infrastructure/cache/memory"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:     "o1",
		UserID: "u1",
		ShippingInfo: domain.ShippingInfo{
			Address: "12 Baker Street",
			City:    "London",
			State:   "London",
			Country: "UK",
			PinCode: 100001,
		},
		SubTotal:        100,
		Tax:             18,
		ShippingCharges: 10,
		Discount:        5,
		Total:           123,
		Status:          domain.StatusProcessing,
		Items: []domain.OrderItem{
			{Name: "Laptop", Price: 50, Quantity: 2, ProductID: "p1"},
		},
		CreatedAt: time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC),
	}
}

func newOrderService(orders *MockOrderRepository, products *MockProductRepository, cache ports.Cache) *OrderService {
	logger := zap.NewNop()
	return NewOrderService(orders, products, cache, NewInvalidator(cache, logger), logger)
}

func TestOrderService_ByUser_CachesPerUser(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	orders := new(MockOrderRepository)
	orders.On("ByUser", ctx, "u1").Return([]domain.Order{sampleOrder()}, nil).Once()

	svc := newOrderService(orders, new(MockProductRepository), cache)

	first, err := svc.ByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := svc.ByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, cache.Has(ctx, "my-orders-u1"))
	orders.AssertExpectations(t)
}

func TestOrderService_Place_ReducesStockThenPurges(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	seedCache(t, cache,
		"all-orders", "my-orders-u1",
		"latest-products", "categories", "all-products", "product-p1",
		"admin-stats", "admin-pie-charts", "admin-bar-charts", "admin-line-charts",
	)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)

	items := []domain.OrderItem{
		{Name: "Laptop", Price: 50, Quantity: 2, ProductID: "p1"},
		{Name: "Mouse", Price: 10, Quantity: 1, ProductID: "p2"},
	}
	orders.On("Create", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.ID != "" && o.Status == domain.StatusProcessing && o.UserID == "u1"
	})).Return(nil)
	products.On("ReduceStock", ctx, items).Return(nil)

	svc := newOrderService(orders, products, cache)

	order, err := svc.Place(ctx, NewOrder{
		UserID:   "u1",
		SubTotal: 110,
		Total:    120,
		Items:    items,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, order.Status)

	assert.Equal(t, 0, cache.Len())
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestOrderService_Place_StockFailureSkipsInvalidation(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	seedCache(t, cache, "all-orders")

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	orders.On("Create", ctx, mock.Anything).Return(nil)
	products.On("ReduceStock", ctx, mock.Anything).Return(assert.AnError)

	svc := newOrderService(orders, products, cache)

	_, err := svc.Place(ctx, NewOrder{
		UserID: "u1",
		Total:  120,
		Items:  []domain.OrderItem{{Name: "Laptop", Quantity: 1, ProductID: "p1"}},
	})
	require.Error(t, err)

	// The mutation did not commit fully, so nothing was purged.
	assert.True(t, cache.Has(ctx, "all-orders"))
}

func TestOrderService_Process_AdvancesStatusAndPurges(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	seedCache(t, cache, "all-orders", "order-o1", "my-orders-u1", "admin-stats", "latest-products")

	existing := sampleOrder()
	orders := new(MockOrderRepository)
	orders.On("ByID", ctx, "o1").Return(&existing, nil)
	orders.On("Update", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.ID == "o1" && o.Status == domain.StatusShipped
	})).Return(nil)

	svc := newOrderService(orders, new(MockProductRepository), cache)

	order, err := svc.Process(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, order.Status)

	assert.False(t, cache.Has(ctx, "all-orders"))
	assert.False(t, cache.Has(ctx, "order-o1"))
	assert.False(t, cache.Has(ctx, "my-orders-u1"))
	assert.False(t, cache.Has(ctx, "admin-stats"))
	assert.True(t, cache.Has(ctx, "latest-products"))
	orders.AssertExpectations(t)
}

func TestOrderService_Delete_PurgesOrderEntries(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	seedCache(t, cache, "all-orders", "order-o1", "my-orders-u1")

	existing := sampleOrder()
	orders := new(MockOrderRepository)
	orders.On("ByID", ctx, "o1").Return(&existing, nil)
	orders.On("Delete", ctx, "o1").Return(nil)

	svc := newOrderService(orders, new(MockProductRepository), cache)

	require.NoError(t, svc.Delete(ctx, "o1"))
	assert.False(t, cache.Has(ctx, "all-orders"))
	assert.False(t, cache.Has(ctx, "order-o1"))
	assert.False(t, cache.Has(ctx, "my-orders-u1"))
	orders.AssertExpectations(t)
}
