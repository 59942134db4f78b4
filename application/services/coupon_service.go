package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

// CouponService owns discount codes. No cache key depends on coupons, so
// coupon mutations fire no invalidation event.
type CouponService struct {
	coupons ports.CouponRepository
	logger  *zap.Logger
}

// NewCouponService creates a coupon service.
func NewCouponService(coupons ports.CouponRepository, logger *zap.Logger) *CouponService {
	return &CouponService{
		coupons: coupons,
		logger:  logger,
	}
}

// Create registers a discount code.
func (s *CouponService) Create(ctx context.Context, code string, amount float64) (*domain.Coupon, error) {
	coupon := &domain.Coupon{
		ID:     uuid.NewString(),
		Code:   code,
		Amount: amount,
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// Apply resolves a code to its discount amount. Unknown codes are reported
// as a client error, not a missing resource, so checkout surfaces
// "invalid code" rather than a 404.
func (s *CouponService) Apply(ctx context.Context, code string) (float64, error) {
	coupon, err := s.coupons.ByCode(ctx, code)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return 0, pkgerrors.NewValidationError("coupon code invalid")
		}
		return 0, err
	}
	return coupon.Amount, nil
}

// All returns every registered coupon.
func (s *CouponService) All(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.All(ctx)
}

// Delete removes a coupon and returns the removed record.
func (s *CouponService) Delete(ctx context.Context, id string) (*domain.Coupon, error) {
	return s.coupons.Delete(ctx, id)
}
