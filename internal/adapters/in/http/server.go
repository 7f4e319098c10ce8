// Package http exposes the fulfillment use cases over a JSON REST API.
// Handlers translate between transport DTOs and application commands;
// workflow errors are mapped onto HTTP status codes by kind.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/plan"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	advanceItemStatusHandler    commands.AdvanceItemStatusCommandHandler
	groupSubmittedOrdersHandler commands.GroupSubmittedOrdersCommandHandler
	updatePlanDetailHandler     commands.UpdatePlanDetailStatusCommandHandler
	requestCancellationHandler  commands.RequestCancellationCommandHandler
	reviewCancellationHandler   commands.ReviewCancellationCommandHandler
	requestRefundHandler        commands.RequestRefundCommandHandler
	reviewRefundHandler         commands.ReviewRefundCommandHandler
	submitReprintHandler        commands.SubmitReprintCommandHandler
	approveReprintHandler       commands.ApproveReprintCommandHandler
	rejectReprintHandler        commands.RejectReprintCommandHandler
	recordShipmentEventHandler  commands.RecordShipmentEventCommandHandler

	// Query handlers
	getOrderHandler                queries.GetOrderQueryHandler
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler
	getPendingRefundsHandler       queries.GetPendingRefundsQueryHandler
	getShipmentEventsHandler       queries.GetShipmentEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceItemStatusHandler commands.AdvanceItemStatusCommandHandler,
	groupSubmittedOrdersHandler commands.GroupSubmittedOrdersCommandHandler,
	updatePlanDetailHandler commands.UpdatePlanDetailStatusCommandHandler,
	requestCancellationHandler commands.RequestCancellationCommandHandler,
	reviewCancellationHandler commands.ReviewCancellationCommandHandler,
	requestRefundHandler commands.RequestRefundCommandHandler,
	reviewRefundHandler commands.ReviewRefundCommandHandler,
	submitReprintHandler commands.SubmitReprintCommandHandler,
	approveReprintHandler commands.ApproveReprintCommandHandler,
	rejectReprintHandler commands.RejectReprintCommandHandler,
	recordShipmentEventHandler commands.RecordShipmentEventCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingCancellationsHandler queries.GetPendingCancellationsQueryHandler,
	getPendingRefundsHandler queries.GetPendingRefundsQueryHandler,
	getShipmentEventsHandler queries.GetShipmentEventsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:              placeOrderHandler,
		advanceItemStatusHandler:       advanceItemStatusHandler,
		groupSubmittedOrdersHandler:    groupSubmittedOrdersHandler,
		updatePlanDetailHandler:        updatePlanDetailHandler,
		requestCancellationHandler:     requestCancellationHandler,
		reviewCancellationHandler:      reviewCancellationHandler,
		requestRefundHandler:           requestRefundHandler,
		reviewRefundHandler:            reviewRefundHandler,
		submitReprintHandler:           submitReprintHandler,
		approveReprintHandler:          approveReprintHandler,
		rejectReprintHandler:           rejectReprintHandler,
		recordShipmentEventHandler:     recordShipmentEventHandler,
		getOrderHandler:                getOrderHandler,
		getPendingCancellationsHandler: getPendingCancellationsHandler,
		getPendingRefundsHandler:       getPendingRefundsHandler,
		getShipmentEventsHandler:       getShipmentEventsHandler,
	}
}

// RegisterRoutes mounts every API route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items/:itemId/status", s.AdvanceItemStatus)

	api.POST("/orders/:orderId/cancellation-requests", s.RequestCancellation)
	api.POST("/orders/:orderId/cancellation-review", s.ReviewCancellation)
	api.GET("/cancellation-requests/pending", s.GetPendingCancellations)

	api.POST("/orders/:orderId/refund-requests", s.RequestRefund)
	api.POST("/refunds/:refundId/review", s.ReviewRefund)
	api.GET("/refunds/pending", s.GetPendingRefunds)

	api.POST("/items/:itemId/reprint-requests", s.SubmitReprint)
	api.POST("/reprint-requests/approve", s.ApproveReprint)
	api.POST("/reprint-requests/reject", s.RejectReprint)

	api.POST("/plans/group", s.GroupSubmittedOrders)
	api.PATCH("/plan-details/:detailId/status", s.UpdatePlanDetailStatus)

	api.POST("/shipment-events", s.RecordShipmentEvent)
	api.GET("/shipments/:trackingCode/events", s.GetShipmentEvents)
}

// Error is the transport shape of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrIllegalTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUID(field, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return parseUUID(name, ctx.Param(name))
}

type customerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProvinceCode string `json:"province_code"`
	DistrictCode string `json:"district_code"`
	WardCode     string `json:"ward_code"`
}

type orderItemRequest struct {
	VariantID       string  `json:"variant_id"`
	Category        string  `json:"category"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	BaseCost        float64 `json:"base_cost"`
	DesignURL       string  `json:"design_url"`
	ReferenceURL    string  `json:"reference_url"`
	ThankYouCardURL string  `json:"thank_you_card_url"`
	Note            string  `json:"note"`
}

type placeOrderRequest struct {
	Code     string             `json:"code"`
	SellerID string             `json:"seller_id"`
	Customer customerRequest    `json:"customer"`
	Items    []orderItemRequest `json:"items"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sellerID, err := parseUUID("seller_id", req.SellerID)
	if err != nil {
		return writeError(ctx, err)
	}

	customer, err := order.NewCustomer(
		req.Customer.Name,
		req.Customer.Phone,
		req.Customer.Address,
		req.Customer.ProvinceCode,
		req.Customer.DistrictCode,
		req.Customer.WardCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.OrderItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemSpec{
			VariantID: item.VariantID,
			Category:  item.Category,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			BaseCost:  item.BaseCost,
			Artifacts: order.Artifacts{
				DesignURL:       item.DesignURL,
				ReferenceURL:    item.ReferenceURL,
				ThankYouCardURL: item.ThankYouCardURL,
			},
			Note: item.Note,
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, req.Code, sellerID, customer, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

type advanceItemStatusRequest struct {
	NewStatus string `json:"new_status"`
	ActorID   string `json:"actor_id"`
}

// AdvanceItemStatus handles POST /api/v1/orders/:orderId/items/:itemId/status.
func (s *Server) AdvanceItemStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req advanceItemStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.ItemStatusFromString(req.NewStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	actorID, err := parseUUID("actor_id", req.ActorID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceItemStatusCommand(orderID, itemID, newStatus, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type requestCancellationRequest struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

// RequestCancellation handles POST /api/v1/orders/:orderId/cancellation-requests.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req requestCancellationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sellerID, err := parseUUID("seller_id", req.SellerID)
	if err != nil {
		return writeError(ctx, err)
	}

	requestID := kernel.NewUUID()

	cmd, err := commands.NewRequestCancellationCommand(requestID, orderID, sellerID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: requestID.String()})
}

type reviewRequest struct {
	StaffID         string `json:"staff_id"`
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejection_reason"`
}

// ReviewCancellation handles POST /api/v1/orders/:orderId/cancellation-review.
func (s *Server) ReviewCancellation(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req reviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := parseUUID("staff_id", req.StaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewCancellationCommand(orderID, staffID, req.Approved, req.RejectionReason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reviewCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type requestRefundRequest struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
	ProofURL string `json:"proof_url"`
}

// RequestRefund handles POST /api/v1/orders/:orderId/refund-requests.
func (s *Server) RequestRefund(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req requestRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sellerID, err := parseUUID("seller_id", req.SellerID)
	if err != nil {
		return writeError(ctx, err)
	}

	refundID := kernel.NewUUID()

	cmd, err := commands.NewRequestRefundCommand(refundID, orderID, sellerID, req.Reason, req.ProofURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.requestRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: refundID.String()})
}

// ReviewRefund handles POST /api/v1/refunds/:refundId/review.
func (s *Server) ReviewRefund(ctx echo.Context) error {
	refundID, err := parseUUIDParam(ctx, "refundId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req reviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := parseUUID("staff_id", req.StaffID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewRefundCommand(refundID, staffID, req.Approved, req.RejectionReason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reviewRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitReprintRequest struct {
	RequestedBy string `json:"requested_by"`
	Reason      string `json:"reason"`
	ProofURL    string `json:"proof_url"`
}

// SubmitReprint handles POST /api/v1/items/:itemId/reprint-requests.
func (s *Server) SubmitReprint(ctx echo.Context) error {
	itemID, err := parseUUIDParam(ctx, "itemId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req submitReprintRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestedBy, err := parseUUID("requested_by", req.RequestedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	reprintID := kernel.NewUUID()

	cmd, err := commands.NewSubmitReprintCommand(reprintID, itemID, requestedBy, req.Reason, req.ProofURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.submitReprintHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: reprintID.String()})
}

type reprintReviewRequest struct {
	ItemIDs         []string `json:"item_ids"`
	ManagerID       string   `json:"manager_id"`
	RejectionReason string   `json:"rejection_reason"`
}

func (r reprintReviewRequest) parseIDs() ([]kernel.UUID, kernel.UUID, error) {
	itemIDs := make([]kernel.UUID, 0, len(r.ItemIDs))
	for _, raw := range r.ItemIDs {
		id, err := parseUUID("item_ids", raw)
		if err != nil {
			return nil, kernel.UUID{}, err
		}
		itemIDs = append(itemIDs, id)
	}

	managerID, err := parseUUID("manager_id", r.ManagerID)
	if err != nil {
		return nil, kernel.UUID{}, err
	}

	return itemIDs, managerID, nil
}

// ApproveReprint handles POST /api/v1/reprint-requests/approve.
func (s *Server) ApproveReprint(ctx echo.Context) error {
	var req reprintReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs, managerID, err := req.parseIDs()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveReprintCommand(itemIDs, managerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.approveReprintHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectReprint handles POST /api/v1/reprint-requests/reject.
func (s *Server) RejectReprint(ctx echo.Context) error {
	var req reprintReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs, managerID, err := req.parseIDs()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectReprintCommand(itemIDs, managerID, req.RejectionReason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rejectReprintHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type groupOrdersRequest struct {
	CreatedBy string `json:"created_by"`
}

// GroupSubmittedOrders handles POST /api/v1/plans/group. The same command
// runs on a schedule; this endpoint lets operations trigger it on demand.
func (s *Server) GroupSubmittedOrders(ctx echo.Context) error {
	var req groupOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	createdBy, err := parseUUID("created_by", req.CreatedBy)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGroupSubmittedOrdersCommand(createdBy)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.groupSubmittedOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type updatePlanDetailStatusRequest struct {
	Status int `json:"status"`
}

// UpdatePlanDetailStatus handles PATCH /api/v1/plan-details/:detailId/status.
func (s *Server) UpdatePlanDetailStatus(ctx echo.Context) error {
	detailID, err := parseUUIDParam(ctx, "detailId")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updatePlanDetailStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePlanDetailStatusCommand(detailID, plan.DetailStatus(req.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updatePlanDetailHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if !updated {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Plan detail not found",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

type recordShipmentEventRequest struct {
	TrackingCode string `json:"tracking_code"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	OrderID      string `json:"order_id"`
}

// RecordShipmentEvent handles POST /api/v1/shipment-events. The order_id
// field is optional; when present, the tracking code is stamped on the order.
func (s *Server) RecordShipmentEvent(ctx echo.Context) error {
	var req recordShipmentEventRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		id, err := parseUUID("order_id", req.OrderID)
		if err != nil {
			return writeError(ctx, err)
		}
		orderID = &id
	}

	cmd, err := commands.NewRecordShipmentEventCommand(req.TrackingCode, req.Status, req.Description, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.recordShipmentEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingCancellations handles GET /api/v1/cancellation-requests/pending.
func (s *Server) GetPendingCancellations(ctx echo.Context) error {
	query := queries.NewGetPendingCancellationsQuery()

	response, err := s.getPendingCancellationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingRefunds handles GET /api/v1/refunds/pending.
func (s *Server) GetPendingRefunds(ctx echo.Context) error {
	query := queries.NewGetPendingRefundsQuery()

	response, err := s.getPendingRefundsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentEvents handles GET /api/v1/shipments/:trackingCode/events.
func (s *Server) GetShipmentEvents(ctx echo.Context) error {
	query, err := queries.NewGetShipmentEventsQuery(ctx.Param("trackingCode"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getShipmentEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
