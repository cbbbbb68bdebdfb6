package routes

import (
	"burrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWarehouses = "/warehouses"

func addWarehouseRoutes(rg *gin.RouterGroup, h *handlers.WarehouseHandler) {
	warehouses := rg.Group(PathWarehouses)
	{
		warehouses.GET("", h.ListWarehouses)
		warehouses.GET("/:id", h.GetWarehouse)
	}
}
