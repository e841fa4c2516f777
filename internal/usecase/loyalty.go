package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserUseCase manages loyalty members, their ledgers, and tier review.
type UserUseCase struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, activities repository.ActivityRepository) *UserUseCase {
	return &UserUseCase{users: users, activities: activities}
}

// Get fetches a member by identifier.
func (u *UserUseCase) Get(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error) {
	return u.users.GetByID(ctx, id)
}

// List returns one 1-indexed page of members plus the total count. Pages past
// the end come back as an empty slice with the true total.
func (u *UserUseCase) List(ctx context.Context, page, limit int) ([]model.LoyaltyUser, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return u.users.List(ctx, (page-1)*limit, limit)
}

// Activities returns a member's ledger newest-first; limit <= 0 means all.
func (u *UserUseCase) Activities(ctx context.Context, userID uuid.UUID, limit int) ([]model.LoyaltyActivity, error) {
	return u.activities.ListByUser(ctx, userID, limit)
}

// SelectBatchForTierReview claims members flagged for tier review.
func (u *UserUseCase) SelectBatchForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error) {
	return u.users.SelectBatchForTierReview(ctx, limit)
}

// ReconcileTier stores the tier derived from the lifetime earned total.
// Tiers only move up here; redemption never demotes a member.
func (u *UserUseCase) ReconcileTier(ctx context.Context, user model.LoyaltyUser) error {
	target := model.TierForEarnedPoints(user.TotalPointsEarned)
	promoted := model.TierDetails(target).PointsThreshold > model.TierDetails(user.Tier).PointsThreshold
	if !promoted {
		target = user.Tier
	}
	return u.users.FinishTierReview(ctx, user.ID, target, promoted)
}
