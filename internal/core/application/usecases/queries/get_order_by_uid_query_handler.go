package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderByUIDQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderByUIDQueryHandler(db *gorm.DB) GetOrderByUIDQueryHandler {
	return GetOrderByUIDQueryHandler{db: db}
}

// Handle returns the order in the same shape as the listing, or errs.ObjectNotFoundError.
func (h GetOrderByUIDQueryHandler) Handle(ctx context.Context, query GetOrderByUIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := selectOrders(ctx, h.db, "WHERE o.uid = ?", query.UID().String())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.UID().String())
	}

	return orders[0], nil
}
