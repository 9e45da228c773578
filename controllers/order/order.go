package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// mapOrderStatus validates and normalizes a client-supplied status.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /api/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var orders []models.Order
		if err := db.Where("user_id = ?", p.ID).
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Where("order_id = ? AND user_id = ?", id, p.ID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// PUT /api/orders/:id/cancel
//
// A user may cancel their own order as long as it has not reached a
// terminal status.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Where("order_id = ? AND user_id = ?", id, p.ID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			}
			return
		}

		if order.OrderStatus.IsTerminal() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Order cannot be cancelled as it is already %s", order.OrderStatus),
			})
			return
		}

		order.OrderStatus = models.OrderStatusCancelled
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel order"})
			return
		}

		log.Info().Uint("order_id", order.OrderID).Uint("user_id", p.ID).Msg("order cancelled")
		broadcastOrderEvent(order)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order cancelled successfully", "order": order})
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.OrderWithBuyer
		err := db.Table("orders").
			Select("orders.*, users.email, users.full_name, users.contact_no").
			Joins("JOIN users ON users.id = orders.user_id").
			Order("orders.order_date DESC").
			Scan(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders", "error": err.Error()})
			return
		}
		if orders == nil {
			orders = []models.OrderWithBuyer{}
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/admin/orders/:id
func GetOrderDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		var order models.OrderWithBuyer
		result := db.Table("orders").
			Select("orders.*, users.email, users.full_name, users.contact_no").
			Joins("JOIN users ON users.id = orders.user_id").
			Where("orders.order_id = ?", id).
			Scan(&order)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order", "error": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/admin/orders/:id/status
//
// Only enum membership is validated; no transition table constrains
// admin-initiated changes beyond what the value itself allows.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "order_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			}
			return
		}

		order.OrderStatus = status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}

		broadcastOrderEvent(order)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}
