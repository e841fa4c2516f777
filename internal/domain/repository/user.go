package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// UserRepository describes persistence operations for loyalty members.
type UserRepository interface {
	Create(ctx context.Context, user *model.LoyaltyUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LoyaltyUser, error)
	// List returns one page of users plus the total member count. Offsets
	// past the end yield an empty slice, never an error.
	List(ctx context.Context, offset, limit int) ([]model.LoyaltyUser, int64, error)
	// AddEarned credits points from a purchase in one transaction: balance
	// and lifetime earned grow, last activity moves, the user is flagged for
	// tier review and an "earned" ledger entry is appended.
	AddEarned(ctx context.Context, userID uuid.UUID, points int64, reference string) (*model.LoyaltyUser, error)
	// SelectBatchForTierReview claims users flagged for tier review.
	SelectBatchForTierReview(ctx context.Context, limit int) ([]model.LoyaltyUser, error)
	// FinishTierReview stores the reconciled tier and clears the review
	// flag; when promoted, an "adjusted" ledger entry is appended.
	FinishTierReview(ctx context.Context, userID uuid.UUID, tier model.Tier, promoted bool) error
}
