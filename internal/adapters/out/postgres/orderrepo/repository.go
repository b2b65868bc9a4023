package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/adapters/out/postgres/productrepo"
	"orderdesk/internal/adapters/out/postgres/uidscope"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Every method is meant to run inside the transaction of a unit of work.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its product links.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return translate(err, dto.UID)
	}

	return r.insertLinks(db, dto.UID, links)
}

// Update rewrites the description and replaces the association set.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("uid = ?", dto.UID).Update("order_description", dto.Description)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.UID)
	}

	if err := db.Where("order_uid = ?", dto.UID).Delete(&OrderProductDTO{}).Error; err != nil {
		return err
	}

	return r.insertLinks(db, dto.UID, links)
}

// Get retrieves an order by its public identifier.
func (r *GormOrderRepository) Get(ctx context.Context, uid kernel.UID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), uid)
}

// GetForUpdate retrieves an order and locks its row until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, uid kernel.UID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), uid)
}

// Delete removes the order with its links.
func (r *GormOrderRepository) Delete(ctx context.Context, uid kernel.UID) error {
	if err := uid.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_uid = ?", uid.String()).Delete(&OrderProductDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("uid = ?", uid.String()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", uid.String())
	}

	return nil
}

// UIDExists reports whether an order already uses uid.
func (r *GormOrderRepository) UIDExists(ctx context.Context, uid kernel.UID) (bool, error) {
	if err := uid.Validate(); err != nil {
		return false, err
	}
	return uidscope.Exists(ctx, r.db, OrderDTO{}.TableName(), uid.String())
}

// RemoveOrphanedProductLinks deletes links pointing at orders or products that are gone.
func (r *GormOrderRepository) RemoveOrphanedProductLinks(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %[1]s m
		WHERE NOT EXISTS (SELECT 1 FROM %[2]s o WHERE o.uid = m.order_uid)
		   OR NOT EXISTS (SELECT 1 FROM %[3]s p WHERE p.uid = m.product_uid)`,
		OrderProductDTO{}.TableName(), OrderDTO{}.TableName(), productrepo.ProductDTO{}.TableName(),
	)

	result := r.db.WithContext(ctx).Exec(query)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, uid kernel.UID) (*order.Order, error) {
	if err := uid.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "uid = ?", uid.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", uid.String())
		}
		return nil, err
	}

	var productUIDs []string
	err := r.db.WithContext(ctx).
		Model(&OrderProductDTO{}).
		Where("order_uid = ?", dto.UID).
		Order("product_uid").
		Pluck("product_uid", &productUIDs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, productUIDs)
}

func (r *GormOrderRepository) insertLinks(db *gorm.DB, orderUID string, links []OrderProductDTO) error {
	if len(links) == 0 {
		return nil
	}

	if err := db.Omit(clause.Associations).Create(&links).Error; err != nil {
		return translate(err, orderUID)
	}
	return nil
}

// translate maps constraint violations reported by GORM (TranslateError) to domain errors.
func translate(err error, orderUID string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause("order", orderUID, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewInvalidReferenceErrorWithCause("productUids", err)
	default:
		return err
	}
}
