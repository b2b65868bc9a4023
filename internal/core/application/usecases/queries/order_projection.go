// Package queries contains read operations for retrieving system state.
// Handlers run SQL directly against the read side and map rows to response
// structs with explicit projections.
package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// OrderResponse is the read model of one order.
// Products is never nil; ProductCount equals len(Products).
type OrderResponse struct {
	ID           int64
	UID          kernel.UID
	Description  string
	CreatedAt    time.Time
	ProductCount int
	Products     []OrderProductResponse
}

// OrderProductResponse is a product as embedded in an order.
type OrderProductResponse struct {
	ID          int64
	UID         kernel.UID
	Name        string
	Description string
}

// orderProjectionSQL outer-joins orders to their products and aggregates per order.
// Orders without links still appear, with an empty products array.
// The %s placeholder takes an optional WHERE clause.
const orderProjectionSQL = `
	SELECT
		o.id,
		o.uid,
		o.order_description,
		o.created_at,
		COUNT(p.uid) AS product_count,
		COALESCE(
			json_agg(
				json_build_object(
					'id', p.id,
					'uid', p.uid,
					'productName', p.product_name,
					'productDescription', p.product_description
				)
				ORDER BY p.id
			) FILTER (WHERE p.uid IS NOT NULL),
			'[]'
		) AS products
	FROM orders o
	LEFT JOIN order_product_map m ON m.order_uid = o.uid
	LEFT JOIN products p ON p.uid = m.product_uid
	%s
	GROUP BY o.id
	ORDER BY o.created_at DESC, o.id DESC
`

// productJSON mirrors one json_build_object element; description may be null.
type productJSON struct {
	ID          int64   `json:"id"`
	UID         string  `json:"uid"`
	Name        string  `json:"productName"`
	Description *string `json:"productDescription"`
}

func selectOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(fmt.Sprintf(orderProjectionSQL, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			resp     OrderResponse
			uid      string
			products []byte
		)

		if err = rows.Scan(&resp.ID, &uid, &resp.Description, &resp.CreatedAt, &resp.ProductCount, &products); err != nil {
			return nil, err
		}

		if resp.UID, err = kernel.UIDFromString(uid); err != nil {
			return nil, err
		}
		if resp.Products, err = decodeProducts(products); err != nil {
			return nil, fmt.Errorf("order %s products: %w", uid, err)
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func decodeProducts(raw []byte) ([]OrderProductResponse, error) {
	var items []productJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	products := make([]OrderProductResponse, 0, len(items))
	for _, item := range items {
		uid, err := kernel.UIDFromString(item.UID)
		if err != nil {
			return nil, err
		}

		p := OrderProductResponse{
			ID:   item.ID,
			UID:  uid,
			Name: item.Name,
		}
		if item.Description != nil {
			p.Description = *item.Description
		}
		products = append(products, p)
	}

	return products, nil
}
