package payment

import (
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, payments *services.PaymentService) {
	h := NewHandler(payments)

	router.GET("/payments", h.List)
	router.GET("/payments-with-users", h.ListWithSplits)
	router.POST("/payments", h.Create)
	router.DELETE("/payments/:id", h.Delete)
	router.POST("/payments/:id/archive", h.Archive)
	router.POST("/payments/:id/unarchive", h.Unarchive)
}
