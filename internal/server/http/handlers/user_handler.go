package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/server/http/dto"
)

// UserHandler manages member profile endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Me handles GET /api/loyalty/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// List handles GET /api/loyalty/users.
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := h.facade.Users(c.Request.Context(), page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := dto.UsersResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Activities handles GET /api/loyalty/users/:id/activities.
func (h *UserHandler) Activities(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	activities, err := h.facade.UserActivities(c.Request.Context(), userID, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(activities) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		resp = append(resp, dto.ToActivityResponse(activity))
	}
	c.JSON(http.StatusOK, resp)
}
