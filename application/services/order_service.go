package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	"storefront-backend/domain/events"
)

// NewOrder is the checkout input.
type NewOrder struct {
	ShippingInfo    domain.ShippingInfo
	UserID          string
	SubTotal        float64
	Tax             float64
	ShippingCharges float64
	Discount        float64
	Total           float64
	Items           []domain.OrderItem
}

// OrderService owns the order read and write paths. The per-user listing,
// the admin listing and order details are cached; every order mutation also
// dirties the admin dashboard aggregates.
type OrderService struct {
	orders      ports.OrderRepository
	products    ports.ProductRepository
	cache       ports.Cache
	invalidator *Invalidator
	logger      *zap.Logger
}

// NewOrderService creates an order service.
func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	cache ports.Cache,
	invalidator *Invalidator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		products:    products,
		cache:       cache,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ByUser returns the orders placed by one user.
func (s *OrderService) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	key := myOrdersKey(userID)

	var cached []domain.Order
	if readCached(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	orders, err := s.orders.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, key, orders)
	return orders, nil
}

// All returns every order for the admin listing.
func (s *OrderService) All(ctx context.Context) ([]domain.Order, error) {
	var cached []domain.Order
	if readCached(ctx, s.cache, keyAllOrders, &cached) {
		return cached, nil
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, keyAllOrders, orders)
	return orders, nil
}

// ByID returns a single order. Missing orders are not cached.
func (s *OrderService) ByID(ctx context.Context, id string) (*domain.Order, error) {
	var cached domain.Order
	if readCached(ctx, s.cache, orderKey(id), &cached) {
		return &cached, nil
	}

	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, s.cache, s.logger, orderKey(id), order)
	return order, nil
}

// Place creates an order, reduces the ordered products' stock and then
// purges everything the mutation touched: order listings, the buyer's own
// listing, the affected product entries and the admin aggregates. Stock
// reduction must succeed before invalidation fires, since invalidation
// assumes the mutation is already committed.
func (s *OrderService) Place(ctx context.Context, input NewOrder) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.NewString(),
		ShippingInfo:    input.ShippingInfo,
		UserID:          input.UserID,
		SubTotal:        input.SubTotal,
		Tax:             input.Tax,
		ShippingCharges: input.ShippingCharges,
		Discount:        input.Discount,
		Total:           input.Total,
		Status:          domain.StatusProcessing,
		Items:           input.Items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.products.ReduceStock(ctx, order.Items); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, events.Invalidation{
		Product:    true,
		Order:      true,
		Admin:      true,
		UserID:     order.UserID,
		ProductIDs: order.ProductIDs(),
	}); err != nil {
		return nil, err
	}

	return order, nil
}

// Process advances the order to its next fulfillment stage.
func (s *OrderService) Process(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Advance()
	order.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := s.invalidator.Invalidate(ctx, events.Invalidation{
		Order:   true,
		Admin:   true,
		UserID:  order.UserID,
		OrderID: order.ID,
	}); err != nil {
		return nil, err
	}

	return order, nil
}

// Delete removes an order and purges its cache entries.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.ByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}

	return s.invalidator.Invalidate(ctx, events.Invalidation{
		Order:   true,
		Admin:   true,
		UserID:  order.UserID,
		OrderID: order.ID,
	})
}
