package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/user"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
)

// SetupAuthRoutes registers signup/login/session endpoints and the
// authenticated profile surface.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/signup", userControllers.Signup(db))
	api.POST("/login", userControllers.Login(db))
	api.POST("/logout", userControllers.Logout())
	api.GET("/auth-status", userControllers.AuthStatus(db))

	api.GET("/user", middleware.RequireUser(), userControllers.GetUser(db))
	api.PUT("/update-profile", middleware.RequireUser(), userControllers.UpdateProfile(db))
}
