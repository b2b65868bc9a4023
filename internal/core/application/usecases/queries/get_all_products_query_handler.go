package queries

import (
	"context"
	"database/sql"

	"orderdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler reads the catalogue.
//
// Example:
//
//	handler := NewGetAllProductsQueryHandler(db)
//	products, err := handler.Handle(ctx, NewGetAllProductsQuery())
//	if err != nil {
//	    return err
//	}
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle returns every product ordered by id ascending.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetAllProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			uid,
			product_name,
			product_description,
			created_at
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetAllProductsQueryResponse
			uid         string
			description sql.NullString
		)

		if err = rows.Scan(&resp.ID, &uid, &resp.Name, &description, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.UID, err = kernel.UIDFromString(uid); err != nil {
			return nil, err
		}
		resp.Description = description.String

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
