// Package productrepo persists catalogue products and resolves product references.
package productrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/product"
)

// ProductDTO is the row shape of the products table.
type ProductDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UID         string    `gorm:"type:varchar(13);unique;not null"`
	Name        string    `gorm:"column:product_name;type:varchar(255);not null"`
	Description string    `gorm:"column:product_description;type:text"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		UID:         p.UID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
	}
}
