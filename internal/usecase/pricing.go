package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/polkiloo/loyaltyhub/internal/adapter/promo"
	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
)

// PricingRules captures the storefront checkout constants: flat-rate shipping
// waived above a subtotal threshold and a single flat tax rate.
type PricingRules struct {
	FreeShippingThreshold float64
	FlatShippingFee       float64
	TaxRate               float64
}

// DefaultPricingRules returns the production rule set.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		FreeShippingThreshold: 100,
		FlatShippingFee:       10,
		TaxRate:               0.07,
	}
}

// PricingUseCase computes cart cost breakdowns and resolves promo codes.
type PricingUseCase struct {
	resolver promo.Resolver
	rules    PricingRules
}

// NewPricingUseCase constructs PricingUseCase with default rules.
func NewPricingUseCase(resolver promo.Resolver) *PricingUseCase {
	return &PricingUseCase{resolver: resolver, rules: DefaultPricingRules()}
}

// Price computes the breakdown for a cart snapshot with an already-settled
// discount. Pure: no I/O, safe for any caller.
func (u *PricingUseCase) Price(items []model.CartLineItem, discount float64) model.PricingResult {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(model.ClampQuantity(item.Quantity))
	}
	subtotal = round2(subtotal)

	shipping := u.rules.FlatShippingFee
	if subtotal > u.rules.FreeShippingThreshold {
		shipping = 0
	}

	tax := round2(subtotal * u.rules.TaxRate)
	discount = round2(discount)

	return model.PricingResult{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    round2(subtotal + shipping + tax - discount),
	}
}

// PriceWithPromo resolves the promo code and prices the cart. A rejected code
// keeps the previously applied discount and reports ErrInvalidPromoCode; a
// resolver outage reports ErrPromoLookupFailed so callers can distinguish
// "no such code" from "could not ask".
func (u *PricingUseCase) PriceWithPromo(ctx context.Context, items []model.CartLineItem, code string, priorDiscount float64) (model.PricingResult, bool, error) {
	if strings.TrimSpace(code) == "" {
		return u.Price(items, priorDiscount), false, nil
	}

	quote, err := u.resolver.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, promo.ErrUnknownCode) {
			return u.Price(items, priorDiscount), false, domainErrors.ErrInvalidPromoCode
		}
		return model.PricingResult{}, false, fmt.Errorf("%w: %s", domainErrors.ErrPromoLookupFailed, err)
	}

	base := u.Price(items, 0)
	discount := round2(base.Subtotal * quote.PercentOff)
	return u.Price(items, discount), true, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
