package events

// Invalidation describes which resources a completed mutation touched. It is
// built by the write path after the store write commits and consumed
// synchronously by the cache invalidator; it is never persisted.
type Invalidation struct {
	Product bool
	Order   bool
	Admin   bool

	// Identities scoping the purge. ProductIDs and OrderID/UserID are only
	// meaningful when the matching flag above is set.
	ProductIDs []string
	OrderID    string
	UserID     string
}

// Names reports whether the event flags at least one resource.
func (e Invalidation) Names() bool {
	return e.Product || e.Order || e.Admin
}
