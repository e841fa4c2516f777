package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// SessionFacade describes session capabilities required by handlers.
type SessionFacade interface {
	IssueSession(ctx context.Context, userID uuid.UUID) (string, error)
	ParseSession(token string) (uuid.UUID, error)
}

// UserFacade exposes member profile operations via HTTP.
type UserFacade interface {
	User(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error)
	Users(ctx context.Context, page, limit int) ([]model.LoyaltyUser, int64, error)
	UserActivities(ctx context.Context, id uuid.UUID, limit int) ([]model.LoyaltyActivity, error)
}

// RewardFacade exposes the rewards catalog and redemption.
type RewardFacade interface {
	Rewards(ctx context.Context) ([]model.LoyaltyReward, error)
	FeaturedRewards(ctx context.Context) ([]model.LoyaltyReward, error)
	Reward(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error)
	RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*model.RedemptionResult, error)
}

// CartFacade exposes cart pricing and checkout.
type CartFacade interface {
	PriceCart(ctx context.Context, items []model.CartLineItem, promoCode string, priorDiscount float64) (model.PricingResult, bool, error)
	Checkout(ctx context.Context, userID uuid.UUID, items []model.CartLineItem, promoCode string, priorDiscount float64) (*model.CheckoutResult, error)
}

// StatsFacade serves program-wide statistics.
type StatsFacade interface {
	Stats(ctx context.Context) (*model.LoyaltyStats, error)
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	SessionFacade
	UserFacade
	RewardFacade
	CartFacade
	StatsFacade
}
