// Package http exposes the REST surface of the dispatch service: order
// lifecycle commands, driver position reports, and read queries. Handlers
// translate between transport DTOs and application commands; all business
// rules stay behind the use case layer.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	driverArrivedHandler  commands.DriverArrivedCommandHandler
	startRideHandler      commands.StartRideCommandHandler
	completeRideHandler   commands.CompleteRideCommandHandler
	rejectByClientHandler commands.RejectByClientCommandHandler
	rejectByDriverHandler commands.RejectByDriverCommandHandler
	rateOrderHandler      commands.RateOrderCommandHandler
	updateLocationHandler commands.UpdateDriverLocationCommandHandler
	addLicenseHandler     commands.AddCategoryLicenseCommandHandler

	activeOrdersHandler queries.GetActiveOrdersQueryHandler
	orderHistoryHandler queries.GetClientOrderHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	driverArrivedHandler commands.DriverArrivedCommandHandler,
	startRideHandler commands.StartRideCommandHandler,
	completeRideHandler commands.CompleteRideCommandHandler,
	rejectByClientHandler commands.RejectByClientCommandHandler,
	rejectByDriverHandler commands.RejectByDriverCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	updateLocationHandler commands.UpdateDriverLocationCommandHandler,
	addLicenseHandler commands.AddCategoryLicenseCommandHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	orderHistoryHandler queries.GetClientOrderHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		acceptOrderHandler:    acceptOrderHandler,
		driverArrivedHandler:  driverArrivedHandler,
		startRideHandler:      startRideHandler,
		completeRideHandler:   completeRideHandler,
		rejectByClientHandler: rejectByClientHandler,
		rejectByDriverHandler: rejectByDriverHandler,
		rateOrderHandler:      rateOrderHandler,
		updateLocationHandler: updateLocationHandler,
		addLicenseHandler:     addLicenseHandler,
		activeOrdersHandler:   activeOrdersHandler,
		orderHistoryHandler:   orderHistoryHandler,
	}
}

// Register mounts all routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.createOrder)
	api.POST("/orders/:id/accept", s.acceptOrder)
	api.POST("/orders/:id/arrived", s.driverArrived)
	api.POST("/orders/:id/start", s.startRide)
	api.POST("/orders/:id/complete", s.completeRide)
	api.POST("/orders/:id/reject", s.rejectByClient)
	api.POST("/orders/:id/reject-by-driver", s.rejectByDriver)
	api.POST("/orders/:id/rate", s.rateOrder)
	api.POST("/drivers/:id/location", s.updateDriverLocation)
	api.POST("/drivers/:id/licenses", s.addCategoryLicense)

	api.GET("/orders/active", s.getActiveOrders)
	api.GET("/clients/:id/orders", s.getClientOrderHistory)
}

// createOrder handles POST /api/v1/orders.
func (s *Server) createOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid clientId: "+err.Error())
	}

	category, err := kernel.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, "invalid category: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		clientID,
		category,
		req.Origin.Address,
		req.Origin.GeoID,
		req.Destination.Address,
		req.Destination.GeoID,
		req.PickupLat,
		req.PickupLng,
		req.Price,
		req.Comment,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

// acceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) acceptOrder(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// driverArrived handles POST /api/v1/orders/:id/arrived.
func (s *Server) driverArrived(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDriverArrivedCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.driverArrivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// startRide handles POST /api/v1/orders/:id/start.
func (s *Server) startRide(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartRideCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.startRideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// completeRide handles POST /api/v1/orders/:id/complete.
func (s *Server) completeRide(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteRideCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeRideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// rejectByClient handles POST /api/v1/orders/:id/reject.
func (s *Server) rejectByClient(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req rejectByClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid clientId: "+err.Error())
	}

	cmd, err := commands.NewRejectByClientCommand(orderID, clientID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rejectByClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// rejectByDriver handles POST /api/v1/orders/:id/reject-by-driver.
func (s *Server) rejectByDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req rejectByDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driverId: "+err.Error())
	}

	cmd, err := commands.NewRejectByDriverCommand(orderID, driverID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rejectByDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// rateOrder handles POST /api/v1/orders/:id/rate.
func (s *Server) rateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req rateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid clientId: "+err.Error())
	}

	cmd, err := commands.NewRateOrderCommand(orderID, clientID, req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// updateDriverLocation handles POST /api/v1/drivers/:id/location. It is the
// HTTP alternative to reporting over the WebSocket session.
func (s *Server) updateDriverLocation(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req locationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// addCategoryLicense handles POST /api/v1/drivers/:id/licenses.
func (s *Server) addCategoryLicense(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req addLicenseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := kernel.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, "invalid category: "+err.Error())
	}

	cmd, err := commands.NewAddCategoryLicenseCommand(
		kernel.NewUUID(), driverID, category,
		req.Brand, req.Model, req.Plate, req.Color,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.addLicenseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// getActiveOrders handles GET /api/v1/orders/active.
func (s *Server) getActiveOrders(ctx echo.Context) error {
	summaries, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(summaries))
}

// getClientOrderHistory handles GET /api/v1/clients/:id/orders.
func (s *Server) getClientOrderHistory(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	query, err := queries.NewGetClientOrderHistoryQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summaries, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(summaries))
}

// bindDriverAction extracts the order id from the path and the driver id
// from the body, the shared shape of all lifecycle transition endpoints.
func (s *Server) bindDriverAction(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	var req driverActionRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}

	return orderID, driverID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP status codes: missing
// aggregates are 404, state machine violations and lost races are 409,
// validation failures are 400, everything else is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
