// Package orderrepo persists order aggregates: the orders row plus one
// order_product_map row per referenced product.
package orderrepo

import (
	"time"

	"orderdesk/internal/adapters/out/postgres/productrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UID         string    `gorm:"type:varchar(13);unique;not null"`
	Description string    `gorm:"column:order_description;type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderProductDTO links an order to a product by their public identifiers.
// The composite primary key forbids duplicate links; deleting the order cascades.
type OrderProductDTO struct {
	OrderUID   string `gorm:"type:varchar(13);primaryKey"`
	ProductUID string `gorm:"type:varchar(13);primaryKey;index"`

	Order   OrderDTO               `gorm:"foreignKey:OrderUID;references:UID;constraint:OnDelete:CASCADE"`
	Product productrepo.ProductDTO `gorm:"foreignKey:ProductUID;references:UID"`
}

func (OrderProductDTO) TableName() string {
	return "order_product_map"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderProductDTO) {
	dto := OrderDTO{
		ID:          aggregate.ID(),
		UID:         aggregate.UID().String(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}

	productUIDs := aggregate.ProductUIDs()
	links := make([]OrderProductDTO, 0, len(productUIDs))
	for _, uid := range productUIDs {
		links = append(links, OrderProductDTO{
			OrderUID:   dto.UID,
			ProductUID: uid.String(),
		})
	}

	return dto, links
}

func toDomain(dto OrderDTO, productUIDs []string) (*order.Order, error) {
	uid, err := kernel.UIDFromString(dto.UID)
	if err != nil {
		return nil, err
	}

	products, err := kernel.UIDsFromStrings(productUIDs)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, uid, dto.Description, dto.CreatedAt, products)
}
