// Package ports defines the persistence contracts of the order desk.
// These interfaces sit between the application layer and the storage adapters,
// so command handlers can be tested against mocks.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their product associations.
type OrderRepository interface {
	// Add inserts the order row and one association row per referenced product.
	// The product references must already have been verified.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the description and replaces the whole association set
	// (delete, then reinsert). Returns errs.ObjectNotFoundError when no order has the uid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its product references.
	Get(ctx context.Context, uid kernel.UID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, uid kernel.UID) (*order.Order, error)

	// Delete removes the order and its association rows.
	// Returns errs.ObjectNotFoundError when nothing matched.
	Delete(ctx context.Context, uid kernel.UID) error

	// UIDExists probes the orders table; it satisfies services.UIDProbe.
	UIDExists(ctx context.Context, uid kernel.UID) (bool, error)

	// RemoveOrphanedProductLinks deletes association rows whose order or product
	// no longer exists and reports how many were removed.
	RemoveOrphanedProductLinks(ctx context.Context) (int64, error)
}
