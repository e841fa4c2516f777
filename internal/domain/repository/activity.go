package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// ActivityRepository provides access to the append-only activity ledger.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.LoyaltyActivity) error
	// ListByUser returns entries newest-first; limit <= 0 means unlimited.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.LoyaltyActivity, error)
}
