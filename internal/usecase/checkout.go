package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	"github.com/polkiloo/loyaltyhub/internal/domain/repository"
)

// CheckoutUseCase turns a priced cart into earned loyalty points.
type CheckoutUseCase struct {
	users   repository.UserRepository
	pricing *PricingUseCase
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(users repository.UserRepository, pricing *PricingUseCase) *CheckoutUseCase {
	return &CheckoutUseCase{users: users, pricing: pricing}
}

// Checkout prices the cart and credits purchase points at the member's stored
// tier multiplier. A rejected promo code does not block the order; it falls
// back to the previously applied discount. Resolver outages do.
func (u *CheckoutUseCase) Checkout(ctx context.Context, userID uuid.UUID, items []model.CartLineItem, promoCode string, priorDiscount float64) (*model.CheckoutResult, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pricing, applied, err := u.pricing.PriceWithPromo(ctx, items, promoCode, priorDiscount)
	if err != nil && !errors.Is(err, domainErrors.ErrInvalidPromoCode) {
		return nil, err
	}

	result := &model.CheckoutResult{
		Pricing:      pricing,
		PromoApplied: applied,
		Reference:    fmt.Sprintf("order-%s", uuid.New()),
		User:         user,
	}

	points := model.PointsForPurchase(pricing.Total, user.Tier)
	if points <= 0 {
		return result, nil
	}

	updated, err := u.users.AddEarned(ctx, userID, points, result.Reference)
	if err != nil {
		return nil, err
	}
	result.PointsEarned = points
	result.User = updated
	return result, nil
}
