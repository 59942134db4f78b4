package di

import (
	"context"

	"storefront-backend/application/ports"
	"storefront-backend/application/services"
	"storefront-backend/infrastructure/cache/memory"
	"storefront-backend/infrastructure/config"
	"storefront-backend/infrastructure/persistence/mongodb"
	pkgerrors "storefront-backend/pkg/errors"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMongoClient connects to MongoDB and verifies the connection
func ProvideMongoClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongodb.Client, error) {
	return mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
}

// ProvideUserRepository creates a user repository
func ProvideUserRepository(client *mongodb.Client) ports.UserRepository {
	return mongodb.NewUserRepository(client)
}

// ProvideProductRepository creates a product repository
func ProvideProductRepository(client *mongodb.Client) ports.ProductRepository {
	return mongodb.NewProductRepository(client)
}

// ProvideOrderRepository creates an order repository
func ProvideOrderRepository(client *mongodb.Client) ports.OrderRepository {
	return mongodb.NewOrderRepository(client)
}

// ProvideCouponRepository creates a coupon repository
func ProvideCouponRepository(client *mongodb.Client) ports.CouponRepository {
	return mongodb.NewCouponRepository(client)
}

// ProvideCache creates the in-memory cache shared by all services.
// In production this could be Redis behind the same port.
func ProvideCache() ports.Cache {
	return memory.NewStore()
}

// ProvideInvalidator creates the cache invalidation coordinator
func ProvideInvalidator(cache ports.Cache, logger *zap.Logger) *services.Invalidator {
	return services.NewInvalidator(cache, logger)
}

// ProvideUserService creates the user service
func ProvideUserService(users ports.UserRepository, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, logger)
}

// ProvideProductService creates the product service
func ProvideProductService(
	products ports.ProductRepository,
	cache ports.Cache,
	invalidator *services.Invalidator,
	logger *zap.Logger,
) *services.ProductService {
	return services.NewProductService(products, cache, invalidator, logger)
}

// ProvideOrderService creates the order service
func ProvideOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	cache ports.Cache,
	invalidator *services.Invalidator,
	logger *zap.Logger,
) *services.OrderService {
	return services.NewOrderService(orders, products, cache, invalidator, logger)
}

// ProvideCouponService creates the coupon service
func ProvideCouponService(coupons ports.CouponRepository, logger *zap.Logger) *services.CouponService {
	return services.NewCouponService(coupons, logger)
}

// ProvideStatsService creates the dashboard statistics service
func ProvideStatsService(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	cache ports.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) *services.StatsService {
	return services.NewStatsService(users, products, orders, cache, cfg.MarketingCostPercent, logger)
}

// ProvideErrorHandler creates the shared HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}
