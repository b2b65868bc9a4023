package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (GET /api/products)
	GetProducts(ctx echo.Context) error
	// (GET /api/orders)
	GetOrders(ctx echo.Context) error
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/orders/{uid})
	GetOrder(ctx echo.Context, uid string) error
	// (PUT /api/orders/{uid})
	UpdateOrder(ctx echo.Context, uid string) error
	// (DELETE /api/orders/{uid})
	DeleteOrder(ctx echo.Context, uid string) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	return w.Handler.GetProducts(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	uid, err := bindUID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, uid)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	uid, err := bindUID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, uid)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	uid, err := bindUID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, uid)
}

func bindUID(ctx echo.Context) (string, error) {
	var uid string
	err := runtime.BindStyledParameterWithOptions("simple", "uid", ctx.Param("uid"), &uid,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter uid: "+err.Error())
	}
	return uid, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation, including the singular /api/order read aliases.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", wrapper.GetHealth)
	router.GET("/api/products", wrapper.GetProducts)

	router.GET("/api/orders", wrapper.GetOrders)
	router.POST("/api/orders", wrapper.CreateOrder)
	router.GET("/api/orders/:uid", wrapper.GetOrder)
	router.PUT("/api/orders/:uid", wrapper.UpdateOrder)
	router.DELETE("/api/orders/:uid", wrapper.DeleteOrder)

	router.GET("/api/order", wrapper.GetOrders)
	router.GET("/api/order/:uid", wrapper.GetOrder)
}
