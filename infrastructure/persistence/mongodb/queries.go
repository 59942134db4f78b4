package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	pkgerrors "storefront-backend/pkg/errors"
)

// createdBetween is the closed [from, to] creation-time range filter.
func createdBetween(from, to time.Time) bson.M {
	return bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}}
}

// creationTimes lists only the creation timestamps of records in a range;
// the charts bucketing by month never need the full documents.
func creationTimes(ctx context.Context, collection *mongo.Collection, operation string, from, to time.Time) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.M{"createdAt": 1})

	cursor, err := collection.Find(ctx, createdBetween(from, to), opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}

	var docs []struct {
		CreatedAt time.Time `bson:"createdAt"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, pkgerrors.NewDatabaseError(operation, err)
	}

	times := make([]time.Time, len(docs))
	for i, doc := range docs {
		times[i] = doc.CreatedAt
	}
	return times, nil
}
