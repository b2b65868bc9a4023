package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
)

// ProductRepository persists catalogue products and answers reference lookups.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	// FindByUIDs returns the subset of uids that exist, in no particular order.
	// An empty input yields an empty result without touching storage.
	FindByUIDs(ctx context.Context, uids []kernel.UID) ([]kernel.UID, error)

	// UIDExists probes the products table; it satisfies services.UIDProbe.
	UIDExists(ctx context.Context, uid kernel.UID) (bool, error)

	Count(ctx context.Context) (int64, error)
}
