package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Chinmay-Devrukhkar/Jewellery-Shop-Website/models"
)

const principalKey = "principal"

// SessionPrincipal reads the principal out of the session without
// enforcing anything. Returns false when nobody is logged in.
func SessionPrincipal(c *gin.Context) (models.Principal, bool) {
	v := sessions.Default(c).Get(principalKey)
	p, ok := v.(models.Principal)
	return p, ok
}

// SetSessionPrincipal stores the principal in the session and saves it.
func SetSessionPrincipal(c *gin.Context, p models.Principal) error {
	session := sessions.Default(c)
	session.Set(principalKey, p)
	return session.Save()
}

// ClearSession destroys the session and expires the cookie. Idempotent.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1, HttpOnly: true})
	return session.Save()
}

// RequireUser guards user-level routes: any authenticated principal
// passes, and is placed in the request context for handlers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := SessionPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin guards admin-level routes: 401 without a session, 403
// without the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := SessionPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if !p.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// CurrentPrincipal returns the principal injected by RequireUser or
// RequireAdmin.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
