package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/server/http/dto"
)

// RewardHandler manages rewards catalog endpoints.
type RewardHandler struct {
	facade RewardFacade
}

// NewRewardHandler constructs RewardHandler.
func NewRewardHandler(facade RewardFacade) *RewardHandler {
	return &RewardHandler{facade: facade}
}

// List handles GET /api/loyalty/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	rewards, err := h.facade.Rewards(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toRewardResponses(rewards))
}

// Featured handles GET /api/loyalty/rewards/featured.
func (h *RewardHandler) Featured(c *gin.Context) {
	rewards, err := h.facade.FeaturedRewards(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toRewardResponses(rewards))
}

// Get handles GET /api/loyalty/rewards/:id.
func (h *RewardHandler) Get(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reward, err := h.facade.Reward(c.Request.Context(), rewardID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrRewardNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRewardResponse(*reward))
}

// Redeem handles POST /api/loyalty/redeem.
func (h *RewardHandler) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	rewardID, err := uuid.Parse(req.RewardID)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.RedeemReward(c.Request.Context(), CurrentUserID(c), rewardID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(redemptionStatus(result), dto.RedemptionResponse{
		Success: result.Success,
		Message: result.Message,
		Reason:  result.Reason,
	})
}

func redemptionStatus(result *model.RedemptionResult) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.Reason {
	case model.ReasonNotFound:
		return http.StatusNotFound
	case model.ReasonUnavailable:
		return http.StatusConflict
	case model.ReasonInsufficientBalance:
		return http.StatusPaymentRequired
	default:
		return http.StatusBadRequest
	}
}

func toRewardResponses(rewards []model.LoyaltyReward) []dto.RewardResponse {
	resp := make([]dto.RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		resp = append(resp, dto.ToRewardResponse(reward))
	}
	return resp
}
