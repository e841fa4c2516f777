package model

import (
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
)

// Stable machine-readable reason codes accompanying redemption and promo
// outcomes so UI layers never pattern-match on message strings.
const (
	ReasonNotFound            = "not_found"
	ReasonUnavailable         = "unavailable"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonInvalidPromoCode    = "invalid_promo_code"
	ReasonLookupFailed        = "lookup_failed"
)

// RedemptionResult reports the outcome of a redemption attempt.
type RedemptionResult struct {
	Success bool
	Message string
	Reason  string
}

// ValidateRedemption evaluates the redemption guards in order, returning the
// first violated one: user exists, reward exists, reward available, balance
// covers the cost.
func ValidateRedemption(user *LoyaltyUser, reward *LoyaltyReward) error {
	if user == nil {
		return domainErrors.ErrUserNotFound
	}
	if reward == nil {
		return domainErrors.ErrRewardNotFound
	}
	if !reward.Available {
		return domainErrors.ErrRewardUnavailable
	}
	if user.PointsBalance < reward.PointsCost {
		return domainErrors.ErrInsufficientBalance
	}
	return nil
}

// RedemptionSuccess builds the result for a completed redemption.
func RedemptionSuccess(reward *LoyaltyReward) *RedemptionResult {
	return &RedemptionResult{
		Success: true,
		Message: fmt.Sprintf("Successfully redeemed %s for %d points", reward.Name, reward.PointsCost),
	}
}

// RedemptionFailure maps a guard error to its user-facing result, or nil when
// the error is not an expected business outcome.
func RedemptionFailure(err error) *RedemptionResult {
	switch {
	case errors.Is(err, domainErrors.ErrUserNotFound):
		return &RedemptionResult{Message: "User not found", Reason: ReasonNotFound}
	case errors.Is(err, domainErrors.ErrRewardNotFound):
		return &RedemptionResult{Message: "Reward not found", Reason: ReasonNotFound}
	case errors.Is(err, domainErrors.ErrRewardUnavailable):
		return &RedemptionResult{Message: "This reward is currently unavailable", Reason: ReasonUnavailable}
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return &RedemptionResult{Message: "Insufficient points balance", Reason: ReasonInsufficientBalance}
	default:
		return nil
	}
}
