package http

import (
	"context"
	"net/http"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UID, error)
}

type OrderUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
}

type OrderDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
}

type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderByUIDQuery) (queries.OrderResponse, error)
}

type ProductLister interface {
	Handle(ctx context.Context, query queries.GetAllProductsQuery) ([]queries.GetAllProductsQueryResponse, error)
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler OrderCreator
	updateOrderHandler OrderUpdater
	deleteOrderHandler OrderDeleter

	// Query handlers
	getAllOrdersHandler   OrderLister
	getOrderHandler       OrderReader
	getAllProductsHandler ProductLister

	now func() time.Time
}

var _ ServerInterface = (*Server)(nil)

func NewServer(
	createOrderHandler OrderCreator,
	updateOrderHandler OrderUpdater,
	deleteOrderHandler OrderDeleter,
	getAllOrdersHandler OrderLister,
	getOrderHandler OrderReader,
	getAllProductsHandler ProductLister,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getOrderHandler:       getOrderHandler,
		getAllProductsHandler: getAllProductsHandler,
		now:                   time.Now,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{
		Success:   true,
		Message:   "Server is running",
		Timestamp: s.now().UTC(),
	})
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return err
	}

	return ok(ctx, http.StatusOK, "Products retrieved successfully", toProducts(products))
}

// GetOrders handles GET /api/orders and GET /api/order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	return ok(ctx, http.StatusOK, "Orders retrieved successfully", toOrders(orders))
}

// GetOrder handles GET /api/orders/{uid} and GET /api/order/{uid}.
func (s *Server) GetOrder(ctx echo.Context, uid string) error {
	order, err := s.readOrder(ctx.Request().Context(), uid)
	if err != nil {
		return err
	}

	return ok(ctx, http.StatusOK, "Order retrieved successfully", toOrder(order))
}

// CreateOrder handles POST /api/orders and answers with the stored order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var input OrderInput
	if err := ctx.Bind(&input); err != nil {
		return newRequestValidationError(err)
	}

	cmd, err := commands.NewCreateOrderCommand(input.OrderDescription, input.ProductUids)
	if err != nil {
		return err
	}

	uid, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	order, err := s.readOrder(ctx.Request().Context(), uid.String())
	if err != nil {
		return err
	}

	return ok(ctx, http.StatusCreated, "Order created successfully", toOrder(order))
}

// UpdateOrder handles PUT /api/orders/{uid}.
func (s *Server) UpdateOrder(ctx echo.Context, uid string) error {
	var input OrderInput
	if err := ctx.Bind(&input); err != nil {
		return newRequestValidationError(err)
	}

	cmd, err := commands.NewUpdateOrderCommand(uid, input.OrderDescription, input.ProductUids)
	if err != nil {
		return err
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	order, err := s.readOrder(ctx.Request().Context(), uid)
	if err != nil {
		return err
	}

	return ok(ctx, http.StatusOK, "Order updated successfully", toOrder(order))
}

// DeleteOrder handles DELETE /api/orders/{uid}.
func (s *Server) DeleteOrder(ctx echo.Context, uid string) error {
	cmd, err := commands.NewDeleteOrderCommand(uid)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ok(ctx, http.StatusOK, "Order deleted successfully", nil)
}

func (s *Server) readOrder(ctx context.Context, uid string) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderByUIDQuery(uid)
	if err != nil {
		return queries.OrderResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx, query)
}

func ok(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}
