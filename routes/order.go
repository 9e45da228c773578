package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/order"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
)

// SetupOrderRoutes registers the user-facing order surface plus the
// admin realtime feed.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")

	// websocket feed for the admin dashboard
	orders.GET("/ws", middleware.RequireAdmin(), orderControllers.OrderWebSocketHandler)

	orders.Use(middleware.RequireUser())
	{
		orders.GET("", orderControllers.GetUserOrders(db))
		orders.GET("/:id", orderControllers.GetOrderByID(db))
		orders.PUT("/:id/cancel", orderControllers.CancelOrder(db))
		orders.PUT("/:id/status", middleware.RequireAdmin(), orderControllers.UpdateOrderStatus(db))
	}
}
