package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain/events"
	pkgerrors "storefront-backend/pkg/errors"
)

// Invalidator maps a completed mutation to the exact set of cache keys that
// can no longer be trusted and purges them. It only ever deletes; cached
// aggregates are never patched in place, the next read repopulates lazily.
type Invalidator struct {
	cache  ports.Cache
	logger *zap.Logger
}

// NewInvalidator creates an invalidator over the given cache.
func NewInvalidator(cache ports.Cache, logger *zap.Logger) *Invalidator {
	return &Invalidator{
		cache:  cache,
		logger: logger,
	}
}

// Invalidate purges every key affected by the event. Write paths call it
// exactly once per mutation, after the store write commits.
//
// A malformed event is a programming error and fails loudly rather than
// silently skipping a purge. Key deletions that fail are collected and
// surfaced together: a partially purged set would leave an illusion of
// consistency, which is worse than failing the whole call.
func (iv *Invalidator) Invalidate(ctx context.Context, event events.Invalidation) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	keys := iv.affectedKeys(event)

	var failures []error
	for _, key := range keys {
		if err := iv.cache.Delete(ctx, key); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return pkgerrors.NewInternalError("cache invalidation incomplete").
			WithCause(errors.Join(failures...))
	}

	iv.logger.Debug("Cache invalidated",
		zap.Int("keys", len(keys)),
		zap.Bool("product", event.Product),
		zap.Bool("order", event.Order),
		zap.Bool("admin", event.Admin),
	)

	return nil
}

// validateEvent rejects events that name no resource or carry identities
// for a resource whose flag is unset.
func validateEvent(event events.Invalidation) error {
	if !event.Names() {
		return pkgerrors.NewValidationError("invalidation event names no resource")
	}
	if len(event.ProductIDs) > 0 && !event.Product {
		return pkgerrors.NewValidationError("product ids on an event without the product flag")
	}
	if (event.OrderID != "" || event.UserID != "") && !event.Order {
		return pkgerrors.NewValidationError("order identities on an event without the order flag")
	}
	return nil
}

// affectedKeys derives the purge set for an event.
func (iv *Invalidator) affectedKeys(event events.Invalidation) []string {
	var keys []string

	if event.Product {
		keys = append(keys, keyLatestProducts, keyCategories, keyAllProducts)
		for _, id := range event.ProductIDs {
			keys = append(keys, productKey(id))
		}
	}

	if event.Order {
		keys = append(keys, keyAllOrders)
		if event.OrderID != "" {
			keys = append(keys, orderKey(event.OrderID))
		}
		if event.UserID != "" {
			keys = append(keys, myOrdersKey(event.UserID))
		}
	}

	if event.Admin {
		keys = append(keys,
			keyAdminStats,
			keyAdminPieCharts,
			keyAdminBarCharts,
			keyAdminLineCharts,
		)
	}

	return keys
}
