//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"storefront-backend/application/ports"
	"storefront-backend/application/services"
	"storefront-backend/infrastructure/config"
	"storefront-backend/infrastructure/persistence/mongodb"
	pkgerrors "storefront-backend/pkg/errors"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Mongo          *mongodb.Client
	UserRepo       ports.UserRepository
	ProductRepo    ports.ProductRepository
	OrderRepo      ports.OrderRepository
	CouponRepo     ports.CouponRepository
	Cache          ports.Cache
	Invalidator    *services.Invalidator
	UserService    *services.UserService
	ProductService *services.ProductService
	OrderService   *services.OrderService
	CouponService  *services.CouponService
	StatsService   *services.StatsService
	ErrorHandler   *pkgerrors.ErrorHandler
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMongoClient,
	ProvideUserRepository,
	ProvideProductRepository,
	ProvideOrderRepository,
	ProvideCouponRepository,
	ProvideCache,
	ProvideInvalidator,
	ProvideUserService,
	ProvideProductService,
	ProvideOrderService,
	ProvideCouponService,
	ProvideStatsService,
	ProvideErrorHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
