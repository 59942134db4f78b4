package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

// OrderRepository implements ports.OrderRepository on MongoDB.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{
		collection: client.Database().Collection(ordersCollection),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return pkgerrors.NewDatabaseError("order.create", err)
	}
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return pkgerrors.NewDatabaseError("order.update", err)
	}
	if result.MatchedCount == 0 {
		return pkgerrors.NewNotFoundError("order")
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return pkgerrors.NewDatabaseError("order.delete", err)
	}
	if result.DeletedCount == 0 {
		return pkgerrors.NewNotFoundError("order")
	}
	return nil
}

func (r *OrderRepository) ByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, wrapErr("order.byID", "order", err)
	}
	return &order, nil
}

func (r *OrderRepository) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.find(ctx, "order.byUser", bson.M{"user": userID}, options.Find())
}

func (r *OrderRepository) All(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, "order.all", bson.M{}, options.Find())
}

func (r *OrderRepository) Latest(ctx context.Context, limit int64) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	return r.find(ctx, "order.latest", bson.M{}, opts)
}

func (r *OrderRepository) FindBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	return r.find(ctx, "order.findBetween", createdBetween(from, to), options.Find())
}

func (r *OrderRepository) CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return creationTimes(ctx, r.collection, "order.creationTimes", from, to)
}

// Financials loads the money-only projection of every order.
func (r *OrderRepository) Financials(ctx context.Context) ([]ports.OrderFinancials, error) {
	opts := options.Find().SetProjection(bson.M{
		"total":           1,
		"discount":        1,
		"tax":             1,
		"shippingCharges": 1,
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("order.financials", err)
	}

	financials := []ports.OrderFinancials{}
	if err := cursor.All(ctx, &financials); err != nil {
		return nil, pkgerrors.NewDatabaseError("order.financials", err)
	}
	return financials, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("order.count", err)
	}
	return count, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("order.countByStatus", err)
	}
	return count, nil
}

func (r *OrderRepository) find(ctx context.Context, operation string, filter interface{}, opts *options.FindOptionsBuilder) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}
	return orders, nil
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
