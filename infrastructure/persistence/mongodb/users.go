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

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a user repository.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{
		collection: client.Database().Collection(usersCollection),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return pkgerrors.NewDatabaseError("user.create", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return pkgerrors.NewDatabaseError("user.delete", err)
	}
	if result.DeletedCount == 0 {
		return pkgerrors.NewNotFoundError("user")
	}
	return nil
}

func (r *UserRepository) ByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, wrapErr("user.byID", "user", err)
	}
	return &user, nil
}

func (r *UserRepository) All(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("user.all", err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, pkgerrors.NewDatabaseError("user.all", err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("user.count", err)
	}
	return count, nil
}

func (r *UserRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, createdBetween(from, to))
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("user.countCreatedBetween", err)
	}
	return count, nil
}

func (r *UserRepository) CountByGender(ctx context.Context, gender string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"gender": gender})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("user.countByGender", err)
	}
	return count, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("user.countByRole", err)
	}
	return count, nil
}

// BirthDates lists every user's date of birth for the age distribution.
func (r *UserRepository) BirthDates(ctx context.Context) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.M{"dob": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("user.birthDates", err)
	}

	var docs []struct {
		DOB time.Time `bson:"dob"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, pkgerrors.NewDatabaseError("user.birthDates", err)
	}

	dates := make([]time.Time, len(docs))
	for i, doc := range docs {
		dates[i] = doc.DOB
	}
	return dates, nil
}

func (r *UserRepository) CreationTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return creationTimes(ctx, r.collection, "user.creationTimes", from, to)
}

var _ ports.UserRepository = (*UserRepository)(nil)
