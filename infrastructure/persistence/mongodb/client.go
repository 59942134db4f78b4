// Package mongodb implements the persistence ports on MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	pkgerrors "storefront-backend/pkg/errors"
)

const (
	connectTimeout = 10 * time.Second

	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
	couponsCollection  = "coupons"
)

// Client wraps the driver client and the application database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewClient connects to MongoDB and verifies the connection with a ping.
func NewClient(ctx context.Context, uri, database string, logger *zap.Logger) (*Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		if closeErr := client.Disconnect(ctx); closeErr != nil {
			logger.Error("Failed to disconnect after ping failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", database))

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Database returns the application database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// wrapErr converts driver errors into the application taxonomy: a missing
// document is a not-found outcome, everything else is a store failure.
func wrapErr(operation, resource string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return pkgerrors.NewNotFoundError(resource)
	}
	return pkgerrors.NewDatabaseError(operation, err)
}
