package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-ledger/controllers"
	"hotel-ledger/middleware"
)

// SetupRouter builds the engine the desktop shell talks to.
func SetupRouter(lc *controllers.LedgerController, origins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/rooms", lc.ListRooms)
		api.GET("/menu", lc.ListMenu)

		stays := api.Group("/stays")
		{
			stays.GET("", lc.ListStays)
			stays.POST("", lc.BookRoom)
			stays.GET("/:id/bill", lc.GenerateBill)
			stays.POST("/:id/checkout", lc.Checkout)
		}

		api.POST("/orders", lc.OrderFood)
	}

	return r
}
