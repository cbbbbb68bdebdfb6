package handlers

import (
	"errors"
	"log"
	"net/http"

	request "burrow/internal/adapter/http/dto/request"
	response "burrow/internal/adapter/http/dto/response"
	"burrow/internal/domain/entities"
	"burrow/internal/usecase"
	"burrow/internal/usecase/interfaces"
	"burrow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)

// RequestHandler handles HTTP requests for delivery requests: the consumer
// and operator dashboards both talk to these endpoints.
type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// ListRequests returns requests matching the optional ownerId/status query
// filters, most recent first. An empty match is a 200 with an empty array.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	filter := interfaces.RequestFilter{
		OwnerID: c.Query("ownerId"),
		Status:  c.Query("status"),
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequests(items))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(r))
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateRequestBody
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	if missing := payload.FirstMissingField(); missing != "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_FIELD", "Missing required field: "+missing, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	originalETA, err := payload.ResolveOriginalETA()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date for originalETA", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	scheduled, err := payload.ResolveScheduledDeliveryDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date for scheduledDeliveryDate", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	history, err := payload.ResolveHistory()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid timestamp in statusHistory", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		ID:                    payload.ID,
		OwnerID:               payload.OwnerID,
		OrderNumber:           payload.OrderNumber,
		Platform:              payload.Platform,
		ProductDescription:    payload.ProductDescription,
		WarehouseID:           payload.WarehouseID,
		OriginalETA:           originalETA,
		ScheduledDeliveryDate: scheduled,
		DeliveryTimeSlot:      payload.DeliveryTimeSlot,
		DestinationAddress:    payload.ResolveAddress(),
		Notes:                 payload.Notes,
		ReceiptURL:            payload.ReceiptURL,
		InitialStatus:         entities.Status(payload.Status),
		StatusHistory:         history,
		PaymentMethod:         payload.PaymentMethod,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusBody
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	history, err := payload.ResolveHistory()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid timestamp in statusHistory", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), usecase.UpdateStatusInput{
		Status:          entities.Status(payload.Status),
		Notes:           payload.Notes,
		HistoryOverride: history,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var payload request.UpdateRequestBody
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	scheduled, err := payload.ResolveScheduledDeliveryDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date for scheduledDeliveryDate", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRequest(c.Request.Context(), c.Param("id"), usecase.UpdateRequestInput{
		ScheduledDeliveryDate: scheduled,
		DeliveryTimeSlot:      payload.DeliveryTimeSlot,
		DestinationAddress:    payload.ResolveAddress(),
		Notes:                 payload.Notes,
		ReceiptURL:            payload.ReceiptURL,
		PaymentStatus:         payload.PaymentStatus,
		PaymentMethod:         payload.PaymentMethod,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(updated))
}

// ConfirmPayment charges the request total through the payment gateway and
// stamps the snapshot completed.
func (h *RequestHandler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")

	var payload request.ConfirmPaymentBody
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	log.Printf("[request][handler] confirm-payment start id=%s method=%s", id, payload.PaymentMethod)

	updated, err := h.usecase.ConfirmPayment(c.Request.Context(), id, payload.PaymentMethod)
	if err != nil {
		log.Printf("[request][handler] confirm-payment failed id=%s err=%v", id, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] confirm-payment success id=%s status=%s", id, updated.Status)

	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingStatus):
		return pkg.NewDomainErrorSimple("MISSING_STATUS", "Status is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInconsistentHistory):
		return pkg.NewDomainErrorSimple("INCONSISTENT_HISTORY", "Status history does not match the target status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWarehouse):
		return pkg.NewDomainErrorSimple("INVALID_WAREHOUSE", "Invalid warehouse selected.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyExists):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_EXISTS", "A request with this id already exists", http.StatusConflict)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("UPDATE_CONFLICT", "Concurrent update, please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
