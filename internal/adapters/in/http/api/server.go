package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the HTTP adapter.
type ServerInterface interface {
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// (GET /warehouses)
	GetWarehouses(ctx echo.Context) error
	// (GET /carriers)
	GetCarriers(ctx echo.Context) error
	// (POST /carriers)
	CreateCarrier(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/active)
	GetActiveOrders(ctx echo.Context) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (POST /users)
	CreateUser(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) GetWarehouses(ctx echo.Context) error {
	return w.Handler.GetWarehouses(ctx)
}

func (w *ServerInterfaceWrapper) GetCarriers(ctx echo.Context) error {
	return w.Handler.GetCarriers(ctx)
}

func (w *ServerInterfaceWrapper) CreateCarrier(ctx echo.Context) error {
	return w.Handler.CreateCarrier(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) CreateUser(ctx echo.Context) error {
	return w.Handler.CreateUser(ctx)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/auth/login", wrapper.Login)
	router.GET("/warehouses", wrapper.GetWarehouses)
	router.GET("/carriers", wrapper.GetCarriers)
	router.POST("/carriers", wrapper.CreateCarrier)
	router.POST("/orders", wrapper.CreateOrder)
	router.GET("/orders/active", wrapper.GetActiveOrders)
	router.GET("/orders/:id", wrapper.GetOrder)
	router.PATCH("/orders/:id/status", wrapper.ChangeOrderStatus)
	router.POST("/users", wrapper.CreateUser)
}
