package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

type CartPayload struct {
	Cart []CartEntry `json:"cart"`
}

type MergePayload struct {
	LocalCart []CartEntry `json:"localCart"`
}

type CartEntry struct {
	ProdID uint `json:"prod_id" binding:"required"`
}

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// loadCartView returns the user's cart lines joined with product fields.
func loadCartView(db *gorm.DB, userID uint) ([]models.CartItemView, error) {
	var items []models.CartItemView
	err := db.Table("cart_lines").
		Select("cart_lines.prod_id, products.name, products.price, products.discount, products.metal, products.krt_purt, products.images").
		Joins("JOIN products ON products.prod_id = cart_lines.prod_id").
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.cart_id ASC").
		Scan(&items).Error
	if items == nil {
		items = []models.CartItemView{}
	}
	return items, err
}

// insertLineIfAbsent is the cart's idempotence primitive: an upsert that
// does nothing when the (user, product) pair already exists, so duplicate
// concurrent submissions are skipped instead of failing the batch.
func insertLineIfAbsent(tx *gorm.DB, userID, prodID uint) error {
	line := models.CartLine{UserID: userID, ProdID: prodID}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&line).Error
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		items, err := loadCartView(db, p.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": items})
	}
}

// POST /api/cart
//
// Replaces the whole server cart: delete-all then insert-all in one
// transaction, duplicates skipped per line.
func ReplaceCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var payload CartPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", p.ID).Delete(&models.CartLine{}).Error; err != nil {
				return err
			}
			for _, entry := range payload.Cart {
				if err := insertLineIfAbsent(tx, p.ID, entry.ProdID); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "cart": payload.Cart})
	}
}

// POST /api/cart/merge
//
// Reconciles the client-local cart with the server cart at login: local
// items whose product is not already present are inserted, and the union
// comes back as the authoritative cart. Merging the same payload twice
// yields the same cart.
func MergeCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var payload MergePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var existing []uint
			if err := tx.Model(&models.CartLine{}).
				Where("user_id = ?", p.ID).
				Pluck("prod_id", &existing).Error; err != nil {
				return err
			}

			present := make(map[uint]bool, len(existing))
			for _, id := range existing {
				present[id] = true
			}

			for _, entry := range payload.LocalCart {
				if present[entry.ProdID] {
					continue
				}
				if err := insertLineIfAbsent(tx, p.ID, entry.ProdID); err != nil {
					return err
				}
				present[entry.ProdID] = true
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		items, err := loadCartView(db, p.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		log.Info().Uint("user_id", p.ID).Int("local_items", len(payload.LocalCart)).
			Int("merged_cart", len(items)).Msg("cart merged")

		c.JSON(http.StatusOK, gin.H{"message": "Carts merged successfully", "cart": items})
	}
}

// POST /api/cart/item
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "prod_id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			}
			return
		}

		var existing models.CartLine
		err := db.Where("user_id = ? AND prod_id = ?", p.ID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Item already in cart", "item": existing})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		line := models.CartLine{UserID: p.ID, ProdID: input.ProductID}
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&line)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			// Lost the race to a concurrent insert of the same pair.
			c.JSON(http.StatusConflict, gin.H{"message": "This product is already in your cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "item": line})
	}
}

// DELETE /api/cart/item/:productId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		prodID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		if err := db.Where("user_id = ? AND prod_id = ?", p.ID, prodID).
			Delete(&models.CartLine{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		if err := db.Where("user_id = ?", p.ID).Delete(&models.CartLine{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
