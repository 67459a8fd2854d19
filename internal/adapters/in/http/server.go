package http

import (
	"log/slog"
	"net/http"

	"forwarding/internal/adapters/in/http/api"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	Login             commands.LoginCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	CreateCarrier     commands.CreateCarrierCommandHandler
	CreatePrincipal   commands.CreatePrincipalCommandHandler

	GetActiveOrders  queries.GetActiveOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetAllCarriers   queries.GetAllCarriersQueryHandler
	GetAllWarehouses queries.GetAllWarehousesQueryHandler
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req api.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.Token{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	})
}

// GetWarehouses handles GET /warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	warehouses, err := s.handlers.GetAllWarehouses.Handle(ctx.Request().Context(), queries.NewGetAllWarehousesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]api.Warehouse, len(warehouses))
	for i, w := range warehouses {
		response[i] = api.Warehouse{
			Id:      w.ID.Bytes(),
			Name:    w.Name,
			Address: w.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCarriers handles GET /carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	carriers, err := s.handlers.GetAllCarriers.Handle(ctx.Request().Context(), queries.NewGetAllCarriersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]api.Carrier, len(carriers))
	for i, c := range carriers {
		response[i] = api.Carrier{
			Id:                 c.ID.Bytes(),
			FullName:           c.FullName,
			ShortName:          c.ShortName,
			VatNumber:          c.VatNumber,
			Description:        c.Description,
			TermOfPaymentDays:  c.TermOfPaymentDays,
			InsuranceExpiresOn: openapi_types.Date{Time: c.InsuranceExpiresOn},
			LicenceExpiresOn:   openapi_types.Date{Time: c.LicenceExpiresOn},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCarrier handles POST /carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req api.NewCarrier
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := carrier.Details{
		FullName:           req.FullName,
		ShortName:          req.ShortName,
		VatNumber:          req.VatNumber,
		TermOfPaymentDays:  req.TermOfPaymentDays,
		InsuranceExpiresOn: req.InsuranceExpiresOn.Time,
		LicenceExpiresOn:   req.LicenceExpiresOn.Time,
	}
	if req.Description != nil {
		details.Description = *req.Description
	}

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, details)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: carrierID.Bytes()})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req api.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var carrierID *kernel.UUID
	if req.CarrierId != nil {
		id, err := kernel.UUIDFromBytes(req.CarrierId[:])
		if err != nil {
			return s.writeError(ctx, err)
		}
		carrierID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, carrierID, req.Goods)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.Created{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]api.Order, len(orders))
	for i, o := range orders {
		response[i] = toAPIOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(o))
}

// ChangeOrderStatus handles PATCH /orders/{id}/status on behalf of the
// authenticated caller.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	var req api.OrderStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, SecurityContextFrom(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.OrderStatus{
		Id:     result.OrderID.Bytes(),
		Status: result.Status.String(),
	})
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req api.NewUser
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roles, err := identity.RolesFromStrings(req.Roles)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePrincipalCommand(req.Username, req.Password, roles)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreatePrincipal.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func toAPIOrder(o queries.OrderResponse) api.Order {
	resp := api.Order{
		Id:        o.ID.Bytes(),
		Goods:     o.Goods,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
	}
	if o.CarrierID != nil {
		carrierID := o.CarrierID.Bytes()
		shortName := o.CarrierShortName
		resp.CarrierId = &carrierID
		resp.CarrierShortName = &shortName
	}
	return resp
}
