package handlers

import (
	"errors"
	"net/http"

	response "burrow/internal/adapter/http/dto/response"
	"burrow/internal/usecase"
	"burrow/pkg"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler serves the read-only warehouse listing the request form
// and dashboards use to pick a redirect destination.
type WarehouseHandler struct {
	usecase usecase.IWarehouseUseCase
}

func NewWarehouseHandler(uc usecase.IWarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{usecase: uc}
}

func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	items, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWarehouses(items))
}

func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWarehouse(w))
}

func mapWarehouseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWarehouseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid warehouse id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWarehouseNotFound):
		return pkg.NewDomainErrorSimple("WAREHOUSE_NOT_FOUND", "Warehouse not found.", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
