package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var items []models.WishlistItemView
		err := db.Table("wishlist_lines").
			Select("wishlist_lines.id, wishlist_lines.user_id, wishlist_lines.prod_id, wishlist_lines.added_at, products.name, products.price, products.descrp, products.images").
			Joins("JOIN products ON products.prod_id = wishlist_lines.prod_id").
			Where("wishlist_lines.user_id = ?", p.ID).
			Order("wishlist_lines.added_at DESC").
			Scan(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch wishlist"})
			return
		}
		if items == nil {
			items = []models.WishlistItemView{}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
	}
}

// POST /api/wishlist/add/:prodId
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		prodID, err := strconv.Atoi(c.Param("prodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var line models.WishlistLine
		err = db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Product{}).Where("prod_id = ?", prodID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}

			line = models.WishlistLine{UserID: p.ID, ProdID: uint(prodID)}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&line)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrDuplicatedKey
			}
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			case errors.Is(err, gorm.ErrDuplicatedKey):
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Product already in wishlist"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add product to wishlist"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product added to wishlist", "data": line})
	}
}

// DELETE /api/wishlist/remove/:prodId
//
// Absence is reported as not-found, not as an error.
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		prodID, err := strconv.Atoi(c.Param("prodId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND prod_id = ?", p.ID, prodID).Delete(&models.WishlistLine{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove product from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found in wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed from wishlist"})
	}
}
