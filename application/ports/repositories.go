package ports

import (
	"context"
	"time"

	"storefront-backend/domain"
)

// ProductQuery filters the public product search.
type ProductQuery struct {
	Search   string  // case-insensitive substring of the name
	MaxPrice float64 // 0 means no price cap
	Category string
	Sort     string // "asc" or "dsc" by price, empty for natural order
	Skip     int64
	Limit    int64 // 0 means no page bound (used when counting matches)
}

// ProductRepository is the persistence contract for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (*domain.Product, error)

	Latest(ctx context.Context, limit int64) ([]domain.Product, error)
	All(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	CountMatching(ctx context.Context, query ProductQuery) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// ReduceStock decrements stock per line item. It must complete before
	// the order's invalidation event fires, since invalidation assumes the
	// mutation already succeeded.
	ReduceStock(ctx context.Context, items []domain.OrderItem) error
}

// OrderFinancials is the money-only projection of an order used by revenue
// aggregation; full order payloads are not loaded for it.
type OrderFinancials struct {
	Total           float64 `bson:"total"`
	Discount        float64 `bson:"discount"`
	Tax             float64 `bson:"tax"`
	ShippingCharges float64 `bson:"shippingCharges"`
}

// OrderRepository is the persistence contract for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (*domain.Order, error)

	ByUser(ctx context.Context, userID string) ([]domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
	Latest(ctx context.Context, limit int64) ([]domain.Order, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error)
	Financials(ctx context.Context) ([]OrderFinancials, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
}

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (*domain.User, error)
	All(ctx context.Context) ([]domain.User, error)

	Count(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByGender(ctx context.Context, gender string) (int64, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
	BirthDates(ctx context.Context) ([]time.Time, error)
	CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// CouponRepository is the persistence contract for discount codes.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id string) (*domain.Coupon, error)
	All(ctx context.Context) ([]domain.Coupon, error)
	ByCode(ctx context.Context, code string) (*domain.Coupon, error)
}
