package http

import (
	"time"

	"orderdesk/internal/core/application/usecases/queries"
)

// Envelope wraps every JSON response.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// OrderInput is the request body of order creation and update.
type OrderInput struct {
	OrderDescription string   `json:"orderDescription"`
	ProductUids      []string `json:"productUids,omitempty"`
}

type Order struct {
	ID               int64          `json:"id"`
	UID              string         `json:"uid"`
	OrderDescription string         `json:"orderDescription"`
	CreatedAt        time.Time      `json:"createdAt"`
	ProductCount     int            `json:"productCount"`
	Products         []OrderProduct `json:"products"`
}

type OrderProduct struct {
	ID                 int64  `json:"id"`
	UID                string `json:"uid"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
}

type Product struct {
	ID                 int64     `json:"id"`
	UID                string    `json:"uid"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Health struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// toOrder projects the order read model onto the API shape. Products is always a non-nil slice.
func toOrder(o queries.OrderResponse) Order {
	products := make([]OrderProduct, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, OrderProduct{
			ID:                 p.ID,
			UID:                p.UID.String(),
			ProductName:        p.Name,
			ProductDescription: p.Description,
		})
	}

	return Order{
		ID:               o.ID,
		UID:              o.UID.String(),
		OrderDescription: o.Description,
		CreatedAt:        o.CreatedAt,
		ProductCount:     o.ProductCount,
		Products:         products,
	}
}

func toOrders(orders []queries.OrderResponse) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toProducts(products []queries.GetAllProductsQueryResponse) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, Product{
			ID:                 p.ID,
			UID:                p.UID.String(),
			ProductName:        p.Name,
			ProductDescription: p.Description,
			CreatedAt:          p.CreatedAt,
		})
	}
	return out
}
