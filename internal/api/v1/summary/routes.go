package summary

import (
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, summaries *services.SummaryService) {
	h := NewHandler(summaries)

	router.GET("/summary", h.Get)
}
