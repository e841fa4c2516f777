package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgSession "github.com/polkiloo/loyaltyhub/internal/pkg/session"
)

const (
	// UserIDContextKey is a gin context key for the current member identifier.
	UserIDContextKey  = "userID"
	sessionCookieName = "loyaltyhub_session"
)

// SessionParser validates a session token and yields the member identifier.
type SessionParser interface {
	ParseSession(token string) (uuid.UUID, error)
}

// SessionRequired ensures a valid session before accessing the handler.
func SessionRequired(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseSession(token)
		if err != nil {
			if errors.Is(err, pkgSession.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
