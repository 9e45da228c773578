package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

func setupOrderTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("jshop_session", store))

	r.POST("/test-login", func(c *gin.Context) {
		err := middleware.SetSessionPrincipal(c, models.Principal{ID: 1, Email: "buyer@example.com"})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})
	r.POST("/test-admin-login", func(c *gin.Context) {
		err := middleware.SetSessionPrincipal(c, models.Principal{ID: 9, Username: "root", IsAdmin: true})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	orders := r.Group("/api/orders")
	orders.Use(middleware.RequireUser())
	orders.GET("", GetUserOrders(db))
	orders.GET("/:id", GetOrderByID(db))
	orders.PUT("/:id/cancel", CancelOrder(db))

	admin := r.Group("/api/admin/orders")
	admin.Use(middleware.RequireAdmin())
	admin.GET("", GetAllOrders(db))
	admin.GET("/:id", GetOrderDetails(db))
	admin.PATCH("/:id/status", UpdateOrderStatus(db))

	return r, db
}

func sessionCookies(t *testing.T, r *gin.Engine, path string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		UserID:        userID,
		OrderAmt:      25000,
		OrderStatus:   status,
		PaymentMethod: "Razorpay",
		PaymentID:     "pay_test",
		ProductIDs:    []int64{1, 2},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestCancelOrderAllowedStatuses(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
	} {
		t.Run(string(status), func(t *testing.T) {
			r, db := setupOrderTest(t)
			cookies := sessionCookies(t, r, "/test-login")
			order := seedOrder(t, db, 1, status)

			w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", order.OrderID), nil, cookies)
			require.Equal(t, http.StatusOK, w.Code)

			var got models.Order
			require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
			assert.Equal(t, models.OrderStatusCancelled, got.OrderStatus)
		})
	}
}

func TestCancelOrderTerminalStatuses(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			r, db := setupOrderTest(t)
			cookies := sessionCookies(t, r, "/test-login")
			order := seedOrder(t, db, 1, status)

			w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", order.OrderID), nil, cookies)
			require.Equal(t, http.StatusBadRequest, w.Code)
			// The message names the current status.
			assert.Contains(t, w.Body.String(), string(status))

			var got models.Order
			require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
			assert.Equal(t, status, got.OrderStatus)
		})
	}
}

func TestCancelOrderNotOwner(t *testing.T) {
	r, db := setupOrderTest(t)
	cookies := sessionCookies(t, r, "/test-login")
	order := seedOrder(t, db, 42, models.OrderStatusPending)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", order.OrderID), nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserOrdersOnlyOwn(t *testing.T) {
	r, db := setupOrderTest(t)
	cookies := sessionCookies(t, r, "/test-login")

	seedOrder(t, db, 1, models.OrderStatusPending)
	seedOrder(t, db, 2, models.OrderStatusPending)

	w := doJSON(t, r, http.MethodGet, "/api/orders", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.EqualValues(t, 1, resp.Orders[0].UserID)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	r, db := setupOrderTest(t)
	cookies := sessionCookies(t, r, "/test-admin-login")
	order := seedOrder(t, db, 1, models.OrderStatusPending)

	path := fmt.Sprintf("/api/admin/orders/%d/status", order.OrderID)

	w := doJSON(t, r, http.MethodPatch, path, gin.H{"status": "Teleported"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, path, gin.H{"status": "Shipped"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, "order_id = ?", order.OrderID).Error)
	assert.Equal(t, models.OrderStatusShipped, got.OrderStatus)
}

func TestAdminOrderRoutesGuarded(t *testing.T) {
	r, db := setupOrderTest(t)
	seedOrder(t, db, 1, models.OrderStatusPending)

	// no session
	w := doJSON(t, r, http.MethodGet, "/api/admin/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// user session, not admin
	cookies := sessionCookies(t, r, "/test-login")
	w = doJSON(t, r, http.MethodGet, "/api/admin/orders", nil, cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
