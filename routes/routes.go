package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/payment"
)

// SetupRoutes is the single entry point that wires every route group
// under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw paymentControllers.Gateway, razorpayKeyID, razorpayKeySecret string) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupWishlistRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupPaymentRoutes(api, db, gw, razorpayKeyID, razorpayKeySecret)
	SetupAdminRoutes(api, db)
}
