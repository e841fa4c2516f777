package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/usecase"
)

// LoyaltyFacade bundles the use cases behind a single application surface
// consumed by the HTTP handlers and the tier review worker.
type LoyaltyFacade struct {
	sessions *usecase.SessionUseCase
	users    *usecase.UserUseCase
	rewards  *usecase.RewardUseCase
	pricing  *usecase.PricingUseCase
	checkout *usecase.CheckoutUseCase
	stats    *usecase.StatsUseCase
}

// NewLoyaltyFacade constructs LoyaltyFacade.
func NewLoyaltyFacade(
	sessions *usecase.SessionUseCase,
	users *usecase.UserUseCase,
	rewards *usecase.RewardUseCase,
	pricing *usecase.PricingUseCase,
	checkout *usecase.CheckoutUseCase,
	stats *usecase.StatsUseCase,
) *LoyaltyFacade {
	return &LoyaltyFacade{
		sessions: sessions,
		users:    users,
		rewards:  rewards,
		pricing:  pricing,
		checkout: checkout,
		stats:    stats,
	}
}

// IssueSession creates a session token for an enrolled member.
func (f *LoyaltyFacade) IssueSession(ctx context.Context, userID uuid.UUID) (string, error) {
	return f.sessions.Issue(ctx, userID)
}

// ParseSession extracts the member identifier from a session token.
func (f *LoyaltyFacade) ParseSession(token string) (uuid.UUID, error) {
	return f.sessions.Parse(token)
}

// User fetches a member profile.
func (f *LoyaltyFacade) User(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error) {
	return f.users.Get(ctx, id)
}

// Users returns a page of members plus the total count.
func (f *LoyaltyFacade) Users(ctx context.Context, page, limit int) ([]model.LoyaltyUser, int64, error) {
	return f.users.List(ctx, page, limit)
}

// UserActivities returns a member's points ledger, newest first.
func (f *LoyaltyFacade) UserActivities(ctx context.Context, id uuid.UUID, limit int) ([]model.LoyaltyActivity, error) {
	return f.users.Activities(ctx, id, limit)
}

// Rewards returns the full rewards catalog.
func (f *LoyaltyFacade) Rewards(ctx context.Context) ([]model.LoyaltyReward, error) {
	return f.rewards.All(ctx)
}

// FeaturedRewards returns the available featured subset of the catalog.
func (f *LoyaltyFacade) FeaturedRewards(ctx context.Context) ([]model.LoyaltyReward, error) {
	return f.rewards.Featured(ctx)
}

// Reward fetches a single catalog entry.
func (f *LoyaltyFacade) Reward(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error) {
	return f.rewards.ByID(ctx, id)
}

// RedeemReward exchanges a member's points for a reward.
func (f *LoyaltyFacade) RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*model.RedemptionResult, error) {
	return f.rewards.Redeem(ctx, userID, rewardID)
}

// PriceCart computes the cart cost breakdown, resolving the promo code.
func (f *LoyaltyFacade) PriceCart(ctx context.Context, items []model.CartLineItem, promoCode string, priorDiscount float64) (model.PricingResult, bool, error) {
	return f.pricing.PriceWithPromo(ctx, items, promoCode, priorDiscount)
}

// Checkout prices the cart and credits purchase points.
func (f *LoyaltyFacade) Checkout(ctx context.Context, userID uuid.UUID, items []model.CartLineItem, promoCode string, priorDiscount float64) (*model.CheckoutResult, error) {
	return f.checkout.Checkout(ctx, userID, items, promoCode, priorDiscount)
}

// Stats returns the program dashboard snapshot.
func (f *LoyaltyFacade) Stats(ctx context.Context) (*model.LoyaltyStats, error) {
	return f.stats.Stats(ctx)
}

// UsersForTierReview claims a batch of members flagged for tier review.
func (f *LoyaltyFacade) UsersForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error) {
	return f.users.SelectBatchForTierReview(ctx, limit)
}

// ReconcileTier settles a member's tier from their lifetime earned points.
func (f *LoyaltyFacade) ReconcileTier(ctx context.Context, user model.LoyaltyUser) error {
	return f.users.ReconcileTier(ctx, user)
}
