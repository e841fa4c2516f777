package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// RewardRepository describes persistence operations for the rewards catalog.
type RewardRepository interface {
	Create(ctx context.Context, reward *model.LoyaltyReward) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyReward, error)
	List(ctx context.Context) ([]model.LoyaltyReward, error)
	// Redeem exchanges points for a reward as a single transaction holding a
	// row lock on the user so concurrent attempts cannot both pass the
	// balance guard. Guard violations surface as domain errors; on success
	// the redeemed reward is returned.
	Redeem(ctx context.Context, userID, rewardID uuid.UUID) (*model.LoyaltyReward, error)
}
