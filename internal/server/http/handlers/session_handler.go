package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/server/http/dto"
	"github.com/polkiloo/loyaltyhub/internal/server/http/middleware"
)

// SessionHandler opens storefront sessions.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Create handles POST /api/session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.IssueSession(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{Token: token})
}
