package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/payment"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
)

// SetupPaymentRoutes registers the gateway order-create / verify / fetch
// endpoints. All of them require an authenticated user.
func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB, gw paymentControllers.Gateway, keyID, keySecret string) {
	payment := api.Group("/payment")
	payment.Use(middleware.RequireUser())
	{
		payment.POST("/create-order", paymentControllers.CreateGatewayOrder(gw, keyID))
		payment.POST("/verify", paymentControllers.VerifyPayment(db, gw, keySecret))
		payment.GET("/:id", paymentControllers.GetPaymentByID(gw))
	}
}
