package api

import (
	"net/http"

	"github.com/a3803896/rent-split/internal/api/v1/payment"
	"github.com/a3803896/rent-split/internal/api/v1/room"
	"github.com/a3803896/rent-split/internal/api/v1/summary"
	"github.com/a3803896/rent-split/internal/api/v1/user"
	"github.com/a3803896/rent-split/internal/middleware"
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the HTTP surface onto the given store handle.
func NewRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := &router.RouterGroup
	user.RegisterRoutes(root, services.NewUserService(db))
	room.RegisterRoutes(root, services.NewRoomService(db))
	payment.RegisterRoutes(root, services.NewPaymentService(db))
	summary.RegisterRoutes(root, services.NewSummaryService(db))

	return router
}
