package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/cart"
	productController "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/product"
	wishlistControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/wishlist"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
)

// SetupProductRoutes registers the public catalog reads.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productController.GetProducts(db))
		products.GET("/:category", productController.GetProductsByCategory(db))
	}
}

// SetupCartRoutes registers the authenticated cart surface, including the
// login-time reconciliation merge.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.RequireUser())
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.ReplaceCart(db))
		cart.POST("/merge", cartControllers.MergeCart(db))
		cart.POST("/item", cartControllers.AddCartItem(db))
		cart.DELETE("/item/:productId", cartControllers.RemoveCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}

// SetupWishlistRoutes registers the authenticated wishlist surface.
func SetupWishlistRoutes(api *gin.RouterGroup, db *gorm.DB) {
	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.RequireUser())
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("/add/:prodId", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/remove/:prodId", wishlistControllers.RemoveFromWishlist(db))
	}
}
