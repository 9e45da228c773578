package wishlistControllers

import (
	"encoding/json"
	"fmt"
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

func setupWishlistTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.WishlistLine{}))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("jshop_session", store))

	r.POST("/test-login", func(c *gin.Context) {
		err := middleware.SetSessionPrincipal(c, models.Principal{ID: 1, Email: "buyer@example.com"})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	wishlist := r.Group("/api/wishlist")
	wishlist.Use(middleware.RequireUser())
	wishlist.GET("", GetWishlist(db))
	wishlist.POST("/add/:prodId", AddToWishlist(db))
	wishlist.DELETE("/remove/:prodId", RemoveFromWishlist(db))

	return r, db
}

func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test-login", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func do(t *testing.T, r *gin.Engine, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	p := models.Product{
		Name:     "Silver Pendant",
		Price:    4500,
		Metal:    "Silver",
		Category: "Pendant",
		Images:   []string{"pendant.jpg"},
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAddToWishlistDuplicateConflicts(t *testing.T) {
	r, db := setupWishlistTest(t)
	cookies := login(t, r)
	p := seedProduct(t, db)

	path := fmt.Sprintf("/api/wishlist/add/%d", p.ProdID)

	w := do(t, r, http.MethodPost, path, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, path, cookies)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already in wishlist")

	var count int64
	require.NoError(t, db.Model(&models.WishlistLine{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	r, _ := setupWishlistTest(t)
	cookies := login(t, r)

	w := do(t, r, http.MethodPost, "/api/wishlist/add/999", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromWishlist(t *testing.T) {
	r, db := setupWishlistTest(t)
	cookies := login(t, r)
	p := seedProduct(t, db)

	require.NoError(t, db.Create(&models.WishlistLine{UserID: 1, ProdID: p.ProdID}).Error)

	path := fmt.Sprintf("/api/wishlist/remove/%d", p.ProdID)

	w := do(t, r, http.MethodDelete, path, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// Absent now: reported as not-found, not an error.
	w = do(t, r, http.MethodDelete, path, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWishlistJoinsProducts(t *testing.T) {
	r, db := setupWishlistTest(t)
	cookies := login(t, r)
	p := seedProduct(t, db)

	require.NoError(t, db.Create(&models.WishlistLine{UserID: 1, ProdID: p.ProdID}).Error)

	w := do(t, r, http.MethodGet, "/api/wishlist", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Count   int                       `json:"count"`
		Data    []models.WishlistItemView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Silver Pendant", resp.Data[0].Name)
	assert.EqualValues(t, 4500, resp.Data[0].Price)
}
