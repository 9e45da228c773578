package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/order"
	productController "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/product"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
)

// SetupAdminRoutes registers all /api/admin/* endpoints. Every route is
// behind the admin session guard.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/check-auth", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Authenticated as admin"})
		})

		products := admin.Group("/products")
		{
			products.GET("", productController.GetProducts(db))
			products.POST("", productController.CreateProduct(db))
			products.GET("/export-excel", productController.ExportProductsToExcel(db))
			products.GET("/:id", productController.GetProductByID(db))
			products.PUT("/:id", productController.UpdateProduct(db))
			products.DELETE("/:id", productController.DeleteProduct(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.GET("/:id", orderControllers.GetOrderDetails(db))
			orders.PATCH("/:id/status", orderControllers.UpdateOrderStatus(db))
		}
	}
}
