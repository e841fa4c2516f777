package dto

import (
	"time"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// UserResponse is the member profile served to the storefront, including the
// resolved tier perks and progress toward the next tier.
type UserResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PointsBalance       int64     `json:"points_balance"`
	Tier                string    `json:"tier"`
	TierColor           string    `json:"tier_color"`
	PointsMultiplier    float64   `json:"points_multiplier"`
	Benefits            []string  `json:"benefits"`
	JoinDate            time.Time `json:"join_date"`
	TotalPointsEarned   int64     `json:"total_points_earned"`
	TotalPointsRedeemed int64     `json:"total_points_redeemed"`
	LastActivity        time.Time `json:"last_activity"`
	Avatar              string    `json:"avatar,omitempty"`
	NextTier            *string   `json:"next_tier,omitempty"`
	PointsToNextTier    int64     `json:"points_to_next_tier"`
}

// UsersResponse is one page of the member directory.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ActivityResponse is one points ledger entry.
type ActivityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Reference   string    `json:"reference,omitempty"`
}

// RewardResponse is one rewards catalog entry.
type RewardResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PointsCost      int64     `json:"points_cost"`
	Category        string    `json:"category"`
	Image           string    `json:"image,omitempty"`
	Available       bool      `json:"available"`
	Featured        bool      `json:"featured"`
	ExpiryDays      *int      `json:"expiry_days,omitempty"`
	RedemptionCount int64     `json:"redemption_count"`
	DateAdded       time.Time `json:"date_added"`
}

// RedeemRequest identifies the reward to redeem for the current member.
type RedeemRequest struct {
	RewardID string `json:"reward_id"`
}

// RedemptionResponse reports the redemption outcome.
type RedemptionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// ToUserResponse flattens a member with their tier catalog entry.
func ToUserResponse(user *model.LoyaltyUser) UserResponse {
	details := model.TierDetails(user.Tier)
	progress := model.PointsToNextTier(user)

	resp := UserResponse{
		ID:                  user.ID.String(),
		Name:                user.Name,
		Email:               user.Email,
		PointsBalance:       user.PointsBalance,
		Tier:                string(user.Tier),
		TierColor:           details.Color,
		PointsMultiplier:    details.PointsMultiplier,
		Benefits:            details.Benefits,
		JoinDate:            user.JoinDate,
		TotalPointsEarned:   user.TotalPointsEarned,
		TotalPointsRedeemed: user.TotalPointsRedeemed,
		LastActivity:        user.LastActivity,
		Avatar:              user.Avatar,
		PointsToNextTier:    progress.PointsNeeded,
	}
	if progress.NextTier != nil {
		next := string(progress.NextTier.Tier)
		resp.NextTier = &next
	}
	return resp
}

// ToActivityResponse maps one ledger entry.
func ToActivityResponse(activity model.LoyaltyActivity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID.String(),
		Type:        string(activity.Type),
		Points:      activity.Points,
		Description: activity.Description,
		Date:        activity.Date,
		Reference:   activity.Reference,
	}
}

// ToRewardResponse maps one catalog entry.
func ToRewardResponse(reward model.LoyaltyReward) RewardResponse {
	return RewardResponse{
		ID:              reward.ID.String(),
		Name:            reward.Name,
		Description:     reward.Description,
		PointsCost:      reward.PointsCost,
		Category:        string(reward.Category),
		Image:           reward.Image,
		Available:       reward.Available,
		Featured:        reward.Featured,
		ExpiryDays:      reward.ExpiryDays,
		RedemptionCount: reward.RedemptionCount,
		DateAdded:       reward.DateAdded,
	}
}
