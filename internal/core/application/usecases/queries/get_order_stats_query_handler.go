package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var resp GetOrderStatsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COUNT(*) FROM order_product_map) AS product_links
	`).Row().Scan(&resp.Orders, &resp.ProductLinks)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
