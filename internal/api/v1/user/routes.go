package user

import (
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, users *services.UserService) {
	h := NewHandler(users)

	router.GET("/users", h.List)
	router.POST("/users", h.Create)
	router.DELETE("/users/:id", h.Delete)
	router.POST("/users/:id/assign-room", h.AssignRoom)
	router.POST("/users/:id/unbind-room", h.UnbindRoom)
}
