package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyUser represents an enrolled member of the loyalty program.
// TotalPointsEarned - TotalPointsRedeemed == PointsBalance is the intended
// ledger relationship; Tier is a stored attribute reconciled asynchronously
// from the lifetime earned total.
type LoyaltyUser struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	PointsBalance       int64
	Tier                Tier
	JoinDate            time.Time
	TotalPointsEarned   int64
	TotalPointsRedeemed int64
	LastActivity        time.Time
	Avatar              string
	NeedsTierReview     bool
}
