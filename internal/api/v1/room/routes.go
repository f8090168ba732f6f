package room

import (
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, rooms *services.RoomService) {
	h := NewHandler(rooms)

	router.GET("/rooms", h.List)
	router.POST("/rooms", h.Create)
	router.DELETE("/rooms/:id", h.Delete)
}
