package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies a ledger entry.
type ActivityType string

const (
	ActivityEarned   ActivityType = "earned"
	ActivityRedeemed ActivityType = "redeemed"
	ActivityExpired  ActivityType = "expired"
	ActivityAdjusted ActivityType = "adjusted"
)

// LoyaltyActivity is an append-only ledger entry; immutable once created.
type LoyaltyActivity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ActivityType
	Points      int64
	Description string
	Date        time.Time
	Reference   string
}
