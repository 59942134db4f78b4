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

// ProductRepository implements ports.ProductRepository on MongoDB.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{
		collection: client.Database().Collection(productsCollection),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return pkgerrors.NewDatabaseError("product.create", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return pkgerrors.NewDatabaseError("product.update", err)
	}
	if result.MatchedCount == 0 {
		return pkgerrors.NewNotFoundError("product")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return pkgerrors.NewDatabaseError("product.delete", err)
	}
	if result.DeletedCount == 0 {
		return pkgerrors.NewNotFoundError("product")
	}
	return nil
}

func (r *ProductRepository) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, wrapErr("product.byID", "product", err)
	}
	return &product, nil
}

func (r *ProductRepository) Latest(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	return r.find(ctx, "product.latest", bson.M{}, opts)
}

func (r *ProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, "product.all", bson.M{}, options.Find())
}

func (r *ProductRepository) Search(ctx context.Context, query ports.ProductQuery) ([]domain.Product, error) {
	opts := options.Find().SetSkip(query.Skip)
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	if query.Sort != "" {
		direction := 1
		if query.Sort == "dsc" {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: "price", Value: direction}})
	}

	return r.find(ctx, "product.search", searchFilter(query), opts)
}

func (r *ProductRepository) CountMatching(ctx context.Context, query ports.ProductQuery) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, searchFilter(query))
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("product.countMatching", err)
	}
	return count, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("product.count", err)
	}
	return count, nil
}

func (r *ProductRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, createdBetween(from, to))
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("product.countCreatedBetween", err)
	}
	return count, nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"category": category})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("product.countByCategory", err)
	}
	return count, nil
}

func (r *ProductRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"stock": 0})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("product.countOutOfStock", err)
	}
	return count, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.collection.Distinct(ctx, "category", bson.M{}).Decode(&categories); err != nil {
		return nil, pkgerrors.NewDatabaseError("product.categories", err)
	}
	return categories, nil
}

func (r *ProductRepository) CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return creationTimes(ctx, r.collection, "product.creationTimes", from, to)
}

// ReduceStock decrements stock per ordered line item.
func (r *ProductRepository) ReduceStock(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, len(items))
	for i, item := range items {
		models[i] = mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": item.ProductID}).
			SetUpdate(bson.M{"$inc": bson.M{"stock": -item.Quantity}})
	}

	if _, err := r.collection.BulkWrite(ctx, models); err != nil {
		return pkgerrors.NewDatabaseError("product.reduceStock", err)
	}
	return nil
}

func (r *ProductRepository) find(ctx context.Context, operation string, filter interface{}, opts *options.FindOptionsBuilder) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}
	return products, nil
}

// searchFilter builds the public search filter: case-insensitive name
// substring, price cap and exact category.
func searchFilter(query ports.ProductQuery) bson.M {
	filter := bson.M{}
	if query.Search != "" {
		filter["name"] = bson.M{"$regex": query.Search, "$options": "i"}
	}
	if query.MaxPrice > 0 {
		filter["price"] = bson.M{"$lte": query.MaxPrice}
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	return filter
}

var _ ports.ProductRepository = (*ProductRepository)(nil)
