package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

// DELETE /api/admin/products/:id
//
// Cart and wishlist references to the product go with it, in one
// transaction.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("prod_id = ?", id).Delete(&models.CartLine{}).Error; err != nil {
				return err
			}
			if err := tx.Where("prod_id = ?", id).Delete(&models.WishlistLine{}).Error; err != nil {
				return err
			}

			result := tx.Where("prod_id = ?", id).Delete(&models.Product{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
