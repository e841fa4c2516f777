package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/server/http/middleware"
)

// CurrentUserID extracts the session member identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}
