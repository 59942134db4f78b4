package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

// CouponRepository implements ports.CouponRepository on MongoDB.
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a coupon repository.
func NewCouponRepository(client *Client) *CouponRepository {
	return &CouponRepository{
		collection: client.Database().Collection(couponsCollection),
	}
}

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	if _, err := r.collection.InsertOne(ctx, coupon); err != nil {
		return pkgerrors.NewDatabaseError("coupon.create", err)
	}
	return nil
}

// Delete removes a coupon and returns the removed record, so callers can
// report which code was dropped.
func (r *CouponRepository) Delete(ctx context.Context, id string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&coupon); err != nil {
		return nil, wrapErr("coupon.delete", "coupon", err)
	}
	return &coupon, nil
}

func (r *CouponRepository) All(ctx context.Context) ([]domain.Coupon, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("coupon.all", err)
	}

	coupons := []domain.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, pkgerrors.NewDatabaseError("coupon.all", err)
	}
	return coupons, nil
}

func (r *CouponRepository) ByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon); err != nil {
		return nil, wrapErr("coupon.byCode", "coupon", err)
	}
	return &coupon, nil
}

var _ ports.CouponRepository = (*CouponRepository)(nil)
