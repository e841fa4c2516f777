package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardCategory groups catalog rewards for display.
type RewardCategory string

const (
	CategoryDiscount   RewardCategory = "Discount"
	CategoryProduct    RewardCategory = "Product"
	CategoryService    RewardCategory = "Service"
	CategoryExperience RewardCategory = "Experience"
	CategoryGiftCard   RewardCategory = "GiftCard"
)

// LoyaltyReward is a redeemable catalog entry. RedemptionCount grows with
// each successful redemption; Available gates redemption regardless of the
// Featured flag.
type LoyaltyReward struct {
	ID              uuid.UUID
	Name            string
	Description     string
	PointsCost      int64
	Category        RewardCategory
	Image           string
	Available       bool
	Featured        bool
	ExpiryDays      *int
	RedemptionCount int64
	DateAdded       time.Time
}
