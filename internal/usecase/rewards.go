package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

// RewardUseCase exposes the rewards catalog and redemption.
type RewardUseCase struct {
	rewards repository.RewardRepository
}

// NewRewardUseCase constructs RewardUseCase.
func NewRewardUseCase(rewards repository.RewardRepository) *RewardUseCase {
	return &RewardUseCase{rewards: rewards}
}

// All returns the full catalog.
func (u *RewardUseCase) All(ctx context.Context) ([]model.LoyaltyReward, error) {
	return u.rewards.List(ctx)
}

// Featured returns rewards flagged for prominent display that are also
// available; a featured-but-unavailable reward is excluded.
func (u *RewardUseCase) Featured(ctx context.Context) ([]model.LoyaltyReward, error) {
	all, err := u.rewards.List(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]model.LoyaltyReward, 0, len(all))
	for _, reward := range all {
		if reward.Featured && reward.Available {
			featured = append(featured, reward)
		}
	}
	return featured, nil
}

// ByID fetches a single catalog entry.
func (u *RewardUseCase) ByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error) {
	return u.rewards.GetByID(ctx, id)
}

// Redeem exchanges points for a reward. Expected business failures come back
// as an unsuccessful result with a stable reason code; only infrastructure
// trouble surfaces as an error.
func (u *RewardUseCase) Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*model.RedemptionResult, error) {
	reward, err := u.rewards.Redeem(ctx, userID, rewardID)
	if err != nil {
		if res := model.RedemptionFailure(err); res != nil {
			return res, nil
		}
		return nil, err
	}
	return model.RedemptionSuccess(reward), nil
}
