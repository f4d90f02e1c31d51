package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nika-sop.backend/pkg/jwt"
)

const (
	// SessionCookieName is the HTTP-only cookie carrying the signed session token
	SessionCookieName = "session"
	// UserEmailKey is the context key for the verified session identity
	UserEmailKey = "userEmail"
)

// SessionMiddleware resolves the session cookie into an identity. The cookie
// value is a signed token, not a bare email claim: it only becomes the
// request identity after signature verification. Invalid or absent cookies
// leave the request anonymous; they never abort it.
func SessionMiddleware(sessions *jwt.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			if claims, err := sessions.ValidateToken(cookie); err == nil {
				c.Set(UserEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// RequireSession redirects anonymous requests to the login page
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserEmail(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserEmail gets the verified session identity from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
