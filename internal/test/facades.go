package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/adapter/promo"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// SessionFacadeStub provides controllable behaviour for the session endpoint.
type SessionFacadeStub struct {
	IssueFn func(context.Context, uuid.UUID) (string, error)
	ParseFn func(string) (uuid.UUID, error)
}

// IssueSession delegates to provided function or returns a fixed token.
func (s SessionFacadeStub) IssueSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, userID)
	}
	return "token-" + userID.String(), nil
}

// ParseSession delegates to provided function or accepts any token.
func (s SessionFacadeStub) ParseSession(token string) (uuid.UUID, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return uuid.Nil, nil
}

// UserFacadeStub simulates member profile operations.
type UserFacadeStub struct {
	UserFn       func(context.Context, uuid.UUID) (*model.LoyaltyUser, error)
	UsersFn      func(context.Context, int, int) ([]model.LoyaltyUser, int64, error)
	ActivitiesFn func(context.Context, uuid.UUID, int) ([]model.LoyaltyActivity, error)
}

// User returns configured member or a minimal default profile.
func (s UserFacadeStub) User(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.LoyaltyUser{ID: id, Name: "Member", Tier: model.TierBronze}, nil
}

// Users returns a configured page of members.
func (s UserFacadeStub) Users(ctx context.Context, page, limit int) ([]model.LoyaltyUser, int64, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, page, limit)
	}
	return []model.LoyaltyUser{{Name: "Member"}}, 1, nil
}

// UserActivities returns a configured ledger slice.
func (s UserFacadeStub) UserActivities(ctx context.Context, id uuid.UUID, limit int) ([]model.LoyaltyActivity, error) {
	if s.ActivitiesFn != nil {
		return s.ActivitiesFn(ctx, id, limit)
	}
	return []model.LoyaltyActivity{{UserID: id, Type: model.ActivityEarned, Points: 10, Date: time.Unix(0, 0)}}, nil
}

// RewardFacadeStub simulates rewards catalog operations.
type RewardFacadeStub struct {
	RewardsFn  func(context.Context) ([]model.LoyaltyReward, error)
	FeaturedFn func(context.Context) ([]model.LoyaltyReward, error)
	RewardFn   func(context.Context, uuid.UUID) (*model.LoyaltyReward, error)
	RedeemFn   func(context.Context, uuid.UUID, uuid.UUID) (*model.RedemptionResult, error)
}

// Rewards returns the configured catalog.
func (s RewardFacadeStub) Rewards(ctx context.Context) ([]model.LoyaltyReward, error) {
	if s.RewardsFn != nil {
		return s.RewardsFn(ctx)
	}
	return []model.LoyaltyReward{{Name: "10% Off", PointsCost: 500, Available: true}}, nil
}

// FeaturedRewards returns the configured featured subset.
func (s RewardFacadeStub) FeaturedRewards(ctx context.Context) ([]model.LoyaltyReward, error) {
	if s.FeaturedFn != nil {
		return s.FeaturedFn(ctx)
	}
	return []model.LoyaltyReward{{Name: "10% Off", PointsCost: 500, Available: true, Featured: true}}, nil
}

// Reward returns a single configured catalog entry.
func (s RewardFacadeStub) Reward(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error) {
	if s.RewardFn != nil {
		return s.RewardFn(ctx, id)
	}
	return &model.LoyaltyReward{ID: id, Name: "10% Off", PointsCost: 500, Available: true}, nil
}

// RedeemReward executes the configured redemption handler.
func (s RewardFacadeStub) RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*model.RedemptionResult, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, userID, rewardID)
	}
	return &model.RedemptionResult{Success: true, Message: "Successfully redeemed 10% Off for 500 points"}, nil
}

// CartFacadeStub simulates cart pricing and checkout.
type CartFacadeStub struct {
	PriceFn    func(context.Context, []model.CartLineItem, string, float64) (model.PricingResult, bool, error)
	CheckoutFn func(context.Context, uuid.UUID, []model.CartLineItem, string, float64) (*model.CheckoutResult, error)
}

// PriceCart returns the configured pricing breakdown.
func (s CartFacadeStub) PriceCart(ctx context.Context, items []model.CartLineItem, promoCode string, priorDiscount float64) (model.PricingResult, bool, error) {
	if s.PriceFn != nil {
		return s.PriceFn(ctx, items, promoCode, priorDiscount)
	}
	return model.PricingResult{Subtotal: 100, Shipping: 10, Tax: 7, Total: 117}, false, nil
}

// Checkout executes the configured checkout handler.
func (s CartFacadeStub) Checkout(ctx context.Context, userID uuid.UUID, items []model.CartLineItem, promoCode string, priorDiscount float64) (*model.CheckoutResult, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, items, promoCode, priorDiscount)
	}
	return &model.CheckoutResult{
		Pricing:      model.PricingResult{Subtotal: 100, Shipping: 10, Tax: 7, Total: 117},
		Reference:    "order-test",
		PointsEarned: 117,
		User:         &model.LoyaltyUser{ID: userID, Tier: model.TierBronze},
	}, nil
}

// StatsFacadeStub serves a fixed dashboard snapshot.
type StatsFacadeStub struct {
	StatsFn func(context.Context) (*model.LoyaltyStats, error)
}

// Stats returns configured program statistics.
func (s StatsFacadeStub) Stats(ctx context.Context) (*model.LoyaltyStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.LoyaltyStats{TotalUsers: 1, TierDistribution: map[model.Tier]int64{model.TierBronze: 1}}, nil
}

// TierReviewCall stores information about ReconcileTier invocations.
type TierReviewCall struct {
	UserID uuid.UUID
	Tier   model.Tier
}

// WorkerFacadeStub mimics worker interactions with the loyalty facade.
type WorkerFacadeStub struct {
	Batches        [][]model.LoyaltyUser
	BatchFn        func(context.Context, int) ([]model.LoyaltyUser, error)
	ReconcileFn    func(context.Context, model.LoyaltyUser) error
	Reviews        []TierReviewCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// UsersForTierReview returns batches from the configured queue.
func (s *WorkerFacadeStub) UsersForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ReconcileTier records review requests.
func (s *WorkerFacadeStub) ReconcileTier(ctx context.Context, user model.LoyaltyUser) error {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, user)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reviews = append(s.Reviews, TierReviewCall{UserID: user.ID, Tier: model.TierForEarnedPoints(user.TotalPointsEarned)})
	return nil
}

// PromoResolverStub returns a configurable promo quote.
type PromoResolverStub struct {
	ResolveFn func(context.Context, string) (*promo.Quote, error)
	Calls     []string
}

// Resolve records the requested code and delegates to the configured handler.
func (s *PromoResolverStub) Resolve(ctx context.Context, code string) (*promo.Quote, error) {
	s.Calls = append(s.Calls, code)
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, code)
	}
	return nil, promo.ErrUnknownCode
}
