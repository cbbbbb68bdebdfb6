package routes

import (
	"burrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRequests = "/requests"

func addRequestRoutes(rg *gin.RouterGroup, h *handlers.RequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.CreateRequest)
		requests.GET("/:id", h.GetRequest)
		requests.PUT("/:id", h.UpdateRequest)
		requests.PATCH("/:id/status", h.UpdateStatus)
		requests.PATCH("/:id/payment", h.ConfirmPayment)
		requests.DELETE("/:id", h.DeleteRequest)
	}
}
