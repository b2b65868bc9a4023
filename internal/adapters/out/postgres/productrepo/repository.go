package productrepo

import (
	"context"
	"errors"

	"orderdesk/internal/adapters/out/postgres/uidscope"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a repository on db, which may be a transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a new product.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("product", dto.UID, err)
		}
		return err
	}

	return nil
}

// FindByUIDs returns the identifiers from uids that exist in the products table.
func (r *GormProductRepository) FindByUIDs(ctx context.Context, uids []kernel.UID) ([]kernel.UID, error) {
	if len(uids) == 0 {
		return []kernel.UID{}, nil
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("uid IN ?", kernel.UIDStrings(uids)).
		Pluck("uid", &found).Error
	if err != nil {
		return nil, err
	}

	return kernel.UIDsFromStrings(found)
}

// UIDExists reports whether a product already uses uid.
func (r *GormProductRepository) UIDExists(ctx context.Context, uid kernel.UID) (bool, error) {
	if err := uid.Validate(); err != nil {
		return false, err
	}
	return uidscope.Exists(ctx, r.db, ProductDTO{}.TableName(), uid.String())
}

// Count returns the number of products in the catalogue.
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
