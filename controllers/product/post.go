package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

type ProductInput struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"required,gte=0"`
	Descrp   string   `json:"descrp"`
	Metal    string   `json:"metal"`
	KrtPurt  int      `json:"krt_purt"`
	Category string   `json:"category"`
	Gender   string   `json:"gender"`
	Images   []string `json:"images"`
	Weight   float64  `json:"weight"`
	Discount float64  `json:"discount" binding:"gte=0,lte=100"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		product := models.Product{
			Name:     input.Name,
			Price:    input.Price,
			Descrp:   input.Descrp,
			Metal:    input.Metal,
			KrtPurt:  input.KrtPurt,
			Category: input.Category,
			Gender:   input.Gender,
			Images:   input.Images,
			Weight:   input.Weight,
			Discount: input.Discount,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
