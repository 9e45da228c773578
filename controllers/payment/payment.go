package paymentControllers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	orderControllers "github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/controllers/order"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

type CreateOrderRequest struct {
	Amount    float64 `json:"amount"`
	CartItems []struct {
		ProdID int64 `json:"prod_id"`
	} `json:"cartItems"`
}

type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderDetails      *struct {
		Products []int64 `json:"products"`
	} `json:"orderDetails"`
}

// POST /api/payment/create-order
//
// Mints a gateway-side order carrying the buyer id and product ids as
// opaque metadata, so verification can recover them from the gateway
// rather than trusting the client.
func CreateGatewayOrder(gw Gateway, keyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid amount"})
			return
		}
		if len(req.CartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
			return
		}

		productIDs := make([]int64, 0, len(req.CartItems))
		for _, item := range req.CartItems {
			productIDs = append(productIDs, item.ProdID)
		}
		idsJSON, err := json.Marshal(productIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
			return
		}

		data := map[string]interface{}{
			// Gateway amounts are in the minor currency unit (paise).
			"amount":   int64(math.Round(req.Amount * 100)),
			"currency": "INR",
			"receipt":  "receipt_" + uuid.NewString(),
			"notes": map[string]interface{}{
				"userId":     strconv.FormatUint(uint64(p.ID), 10),
				"productIds": string(idsJSON),
			},
		}

		order, err := gw.CreateOrder(data)
		if err != nil {
			log.Error().Err(err).Uint("user_id", p.ID).Msg("gateway order create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "key_id": keyID})
	}
}

// POST /api/payment/verify
//
// Signature mismatch is rejected fail-closed: no order row is ever
// written for an unverified payment.
func VerifyPayment(db *gorm.DB, gw Gateway, keySecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
			return
		}

		if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, keySecret) {
			log.Warn().Str("razorpay_order_id", req.RazorpayOrderID).Uint("user_id", p.ID).
				Msg("payment signature mismatch")
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
			return
		}

		gatewayOrder, err := gw.FetchOrder(req.RazorpayOrderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification failed", "error": err.Error()})
			return
		}

		productIDs, ok := productIDsFromNotes(gatewayOrder)
		if !ok {
			// Trust-boundary fallback: client-supplied list, used only
			// when gateway metadata cannot be parsed.
			log.Warn().Str("razorpay_order_id", req.RazorpayOrderID).
				Msg("gateway notes unparsable, falling back to client order details")
			if req.OrderDetails != nil {
				productIDs = req.OrderDetails.Products
			}
		}

		amount, ok := amountFromGatewayOrder(gatewayOrder)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification failed"})
			return
		}

		order := models.Order{
			UserID:          p.ID,
			OrderAmt:        amount / 100, // paise back to rupees
			OrderStatus:     models.OrderStatusPending,
			PaymentMethod:   "Razorpay",
			PaymentID:       req.RazorpayPaymentID,
			RazorpayOrderID: req.RazorpayOrderID,
			ProductIDs:      pq.Int64Array(productIDs),
			OrderDate:       time.Now(),
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			// The purchased lines leave the cart with the same commit.
			return tx.Where("user_id = ?", p.ID).Delete(&models.CartLine{}).Error
		})
		if err != nil {
			// Known gap: the payment is captured but persistence failed;
			// nothing compensates beyond surfacing the error.
			log.Error().Err(err).Str("payment_id", req.RazorpayPaymentID).Uint("user_id", p.ID).
				Msg("order persistence failed after verified payment")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order", "error": err.Error()})
			return
		}

		log.Info().Uint("order_id", order.OrderID).Uint("user_id", p.ID).
			Float64("amount", order.OrderAmt).Msg("payment verified, order created")
		orderControllers.BroadcastOrderEvent(order)

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Payment verified and order created successfully",
			"orderId":      order.OrderID,
			"orderDetails": order,
		})
	}
}

// GET /api/payment/:id
func GetPaymentByID(gw Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		payment, err := gw.FetchPayment(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
	}
}

// productIDsFromNotes digs the product id list back out of the gateway
// order's notes metadata.
func productIDsFromNotes(gatewayOrder map[string]interface{}) ([]int64, bool) {
	notes, ok := gatewayOrder["notes"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	raw, ok := notes["productIds"].(string)
	if !ok {
		return nil, false
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// amountFromGatewayOrder normalizes the gateway's numeric amount field,
// which decodes as float64 or json.Number depending on the transport.
func amountFromGatewayOrder(gatewayOrder map[string]interface{}) (float64, bool) {
	switch v := gatewayOrder["amount"].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
