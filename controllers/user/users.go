package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/middleware"
	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name" binding:"required"`
	ContactNo string `json:"contact_no" binding:"required,len=10,numeric"`
	Address   string `json:"address" binding:"required"`
}

// POST /api/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		user := models.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			FullName:     input.FullName,
			ContactNo:    input.Phone,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		principal := models.Principal{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			IsAdmin:  false,
		}
		if err := middleware.SetSessionPrincipal(c, principal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Session error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Signup successful!", "user": user})
	}
}

// POST /api/login
//
// One credential endpoint for both principal types: probe users by email
// first, fall back to admin by username. An unknown identity and a wrong
// password are indistinguishable to the caller.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		if err == nil {
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) == nil {
				principal := models.Principal{
					ID:       user.ID,
					Email:    user.Email,
					FullName: user.FullName,
					IsAdmin:  false,
				}
				if err := middleware.SetSessionPrincipal(c, principal); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Session error", "error": err.Error()})
					return
				}
				log.Info().Uint("user_id", user.ID).Msg("user login")
				c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "user": user, "isAdmin": false})
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		var admin models.Admin
		err = db.Where("username = ?", input.Email).First(&admin).Error
		if err == nil {
			if bcrypt.CompareHashAndPassword([]byte(admin.HashPassword), []byte(input.Password)) == nil {
				principal := models.Principal{
					ID:       admin.ID,
					Username: admin.Username,
					IsAdmin:  true,
				}
				if err := middleware.SetSessionPrincipal(c, principal); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Session error", "error": err.Error()})
					return
				}
				log.Info().Uint("admin_id", admin.ID).Msg("admin login")
				c.JSON(http.StatusOK, gin.H{"message": "Admin login successful!", "user": admin, "isAdmin": true})
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid credentials"})
	}
}

// GET /api/auth-status
//
// Reports the session state and re-validates that the principal's row
// still exists before vouching for it.
func AuthStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := middleware.SessionPrincipal(c)
		if ok {
			var count int64
			if p.IsAdmin {
				db.Model(&models.Admin{}).Where("id = ?", p.ID).Count(&count)
			} else {
				db.Model(&models.User{}).Where("id = ?", p.ID).Count(&count)
			}
			if count > 0 {
				c.JSON(http.StatusOK, gin.H{
					"isAuthenticated": true,
					"user":            p,
					"isAdmin":         p.IsAdmin,
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"isAuthenticated": false,
			"user":            nil,
			"isAdmin":         false,
		})
	}
}

// GET /api/user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var user models.User
		if err := db.Select("id", "email", "full_name", "contact_no", "address").
			First(&user, "id = ?", p.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// PUT /api/update-profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := middleware.CurrentPrincipal(c)

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
			return
		}

		// Changing email must not collide with another account.
		if input.Email != p.Email {
			var count int64
			if err := db.Model(&models.User{}).
				Where("email = ? AND id != ?", input.Email, p.ID).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
				return
			}
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"message": "Email already in use by another account"})
				return
			}
		}

		var user models.User
		if err := db.First(&user, "id = ?", p.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		user.FullName = input.FullName
		user.ContactNo = input.ContactNo
		user.Email = input.Email
		user.Address = input.Address
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		// Keep the session snapshot in step with the row.
		principal := models.Principal{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			IsAdmin:  p.IsAdmin,
		}
		if err := middleware.SetSessionPrincipal(c, principal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Session error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
	}
}

// POST /api/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := middleware.ClearSession(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
