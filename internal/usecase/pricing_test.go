package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/polkiloo/loyaltyhub/internal/adapter/promo"
	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/domain/model"
	testhelpers "github.com/polkiloo/loyaltyhub/internal/test"
)

func cartWorth(subtotal float64) []model.CartLineItem {
	return []model.CartLineItem{{ProductID: "p1", Name: "Jacket", Price: subtotal, Quantity: 1}}
}

func TestPricingShippingThreshold(t *testing.T) {
	uc := NewPricingUseCase(&testhelpers.PromoResolverStub{})

	cases := []struct {
		name     string
		subtotal float64
		shipping float64
	}{
		{"below threshold pays flat fee", 80, 10},
		{"at threshold pays flat fee", 100, 10},
		{"above threshold ships free", 120, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uc.Price(cartWorth(tc.subtotal), 0)
			if got.Shipping != tc.shipping {
				t.Fatalf("shipping for subtotal %.2f: got %.2f want %.2f", tc.subtotal, got.Shipping, tc.shipping)
			}
		})
	}
}

func TestPricingBreakdown(t *testing.T) {
	uc := NewPricingUseCase(&testhelpers.PromoResolverStub{})

	items := []model.CartLineItem{
		{ProductID: "p1", Price: 40, Quantity: 2},
		{ProductID: "p2", Price: 20, Quantity: 1},
	}
	got := uc.Price(items, 0)
	if got.Subtotal != 100 {
		t.Fatalf("subtotal: got %.2f want 100", got.Subtotal)
	}
	if got.Tax != 7 {
		t.Fatalf("tax: got %.2f want 7.00", got.Tax)
	}
	if got.Total != 117 {
		t.Fatalf("total: got %.2f want 117", got.Total)
	}
}

func TestPricingClampsQuantity(t *testing.T) {
	uc := NewPricingUseCase(&testhelpers.PromoResolverStub{})

	got := uc.Price([]model.CartLineItem{{ProductID: "p1", Price: 25, Quantity: 0}}, 0)
	if got.Subtotal != 25 {
		t.Fatalf("zero quantity should price as one item: got %.2f", got.Subtotal)
	}
}

func TestPriceWithPromoAppliesPercentOff(t *testing.T) {
	resolver := &testhelpers.PromoResolverStub{ResolveFn: func(_ context.Context, code string) (*promo.Quote, error) {
		return &promo.Quote{Code: "DISCOUNT20", PercentOff: 0.20}, nil
	}}
	uc := NewPricingUseCase(resolver)

	got, applied, err := uc.PriceWithPromo(context.Background(), cartWorth(200), "discount20", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatal("expected promo to apply")
	}
	if got.Discount != 40 {
		t.Fatalf("discount: got %.2f want 40", got.Discount)
	}
	if got.Total != 174 {
		t.Fatalf("total: got %.2f want 174 (200 + 0 shipping + 14 tax - 40)", got.Total)
	}
}

func TestPriceWithPromoUnknownCodeKeepsPriorDiscount(t *testing.T) {
	uc := NewPricingUseCase(&testhelpers.PromoResolverStub{})

	got, applied, err := uc.PriceWithPromo(context.Background(), cartWorth(200), "NOPE", 15)
	if !errors.Is(err, domainErrors.ErrInvalidPromoCode) {
		t.Fatalf("expected invalid promo code error, got %v", err)
	}
	if applied {
		t.Fatal("rejected code must not be marked applied")
	}
	if got.Discount != 15 {
		t.Fatalf("prior discount must survive: got %.2f want 15", got.Discount)
	}
}

func TestPriceWithPromoEmptyCodeSkipsLookup(t *testing.T) {
	resolver := &testhelpers.PromoResolverStub{}
	uc := NewPricingUseCase(resolver)

	got, applied, err := uc.PriceWithPromo(context.Background(), cartWorth(50), "  ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("blank code must not apply")
	}
	if len(resolver.Calls) != 0 {
		t.Fatalf("blank code must not hit the resolver, got %d calls", len(resolver.Calls))
	}
	if got.Discount != 5 {
		t.Fatalf("prior discount: got %.2f want 5", got.Discount)
	}
}

func TestPriceWithPromoLookupFailure(t *testing.T) {
	resolver := &testhelpers.PromoResolverStub{ResolveFn: func(context.Context, string) (*promo.Quote, error) {
		return nil, errors.New("connection refused")
	}}
	uc := NewPricingUseCase(resolver)

	_, _, err := uc.PriceWithPromo(context.Background(), cartWorth(50), "DISCOUNT20", 0)
	if !errors.Is(err, domainErrors.ErrPromoLookupFailed) {
		t.Fatalf("expected lookup failure error, got %v", err)
	}
}

func TestPricingRoundsTax(t *testing.T) {
	uc := NewPricingUseCase(&testhelpers.PromoResolverStub{})

	got := uc.Price([]model.CartLineItem{{Price: 33.33, Quantity: 1}}, 0)
	if got.Tax != 2.33 {
		t.Fatalf("tax must round to cents: got %v", got.Tax)
	}
	if got.Total != 45.66 {
		t.Fatalf("total must round to cents: got %v", got.Total)
	}
}
