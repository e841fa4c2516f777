package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRewardUnavailable   = errors.New("reward unavailable")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrInvalidPromoCode    = errors.New("invalid promo code")
	ErrPromoLookupFailed   = errors.New("promo lookup failed")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidSession      = errors.New("invalid session")
)
